// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import "strconv"

// Kind represents each possible kind of JSON value.
// The zero Kind is KindNull.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String prints the kind in a humanly readable fashion.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a node in a JSON value tree, which may be one of the following:
//   - a JSON null
//   - a JSON boolean
//   - a JSON number (e.g., 123.456), held as its literal text
//   - a JSON string (e.g., "hello, world!"), held as its unescaped content
//   - a JSON array (e.g., [1,2,3]), held as an ordered list of values
//   - a JSON object (e.g., {"fizz":"buzz"}), held as an ordered list of members
//
// The zero Value is a JSON null.
//
// A Value is never mutated by this package except through [Value.Push]
// and [Value.PushKV]. It is safe to serialize the same tree from
// multiple goroutines concurrently, provided that nobody mutates it.
type Value struct {
	// NOTE: This is an opaque type that functionally represents a union type.
	// Only the fields relevant to kind are populated.
	kind Kind
	str  string   // payload for KindBool ("1" or "0"), KindNumber, and KindString
	arr  []Value  // elements for KindArray
	obj  []Member // members for KindObject
}

// Member is a JSON object member.
//
// An object is an ordered sequence of members. Names need not be unique;
// duplicates are preserved and serialized in order.
type Member struct {
	Name  string
	Value Value
}

// Null constructs a Value representing a JSON null.
// It is equivalent to the zero Value.
func Null() Value { return Value{} }

// Bool constructs a Value representing a JSON boolean.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, str: "1"}
	}
	return Value{kind: KindBool, str: "0"}
}

// String constructs a Value representing a JSON string.
// The content is treated as an opaque sequence of bytes;
// it is not validated as UTF-8.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array constructs a Value representing a JSON array of the provided elements.
// The Value retains the provided slice.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// Object constructs a Value representing a JSON object of the provided members.
// The Value retains the provided slice.
func Object(members ...Member) Value {
	return Value{kind: KindObject, obj: members}
}

// Kind returns the value kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is a JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the value for a JSON boolean.
// For other JSON kinds, this returns false.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.str == "1"
}

// Number returns the literal text of a JSON number.
// For other JSON kinds, this returns the empty string.
func (v Value) Number() string {
	if v.kind != KindNumber {
		return ""
	}
	return v.str
}

// String returns the unescaped string value for a JSON string.
// For other JSON kinds, this returns the compact JSON representation.
func (v Value) String() string {
	if v.kind == KindString {
		return v.str
	}
	return string(AppendValue(nil, v, 0, 0))
}

// Len reports the number of elements in a JSON array
// or the number of members in a JSON object.
// For other JSON kinds, this returns 0.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Index returns the i-th element of a JSON array.
// It panics if v is not an array or if i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindArray {
		panic(&InvalidKindError{Op: "Index", Kind: v.kind})
	}
	return v.arr[i]
}

// Elems returns the elements of a JSON array.
// The returned slice aliases the array and must not be mutated.
// For other JSON kinds, this returns nil.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Members returns the members of a JSON object in order.
// The returned slice aliases the object and must not be mutated.
// For other JSON kinds, this returns nil.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Get returns the value of the first member in a JSON object with the given name.
// It reports false if v is not an object or there is no such member.
func (v Value) Get(name string) (Value, bool) {
	if v.kind == KindObject {
		for i := range v.obj {
			if v.obj[i].Name == name {
				return v.obj[i].Value, true
			}
		}
	}
	return Value{}, false
}

// Push appends elements to a JSON array.
// It panics with an [InvalidKindError] if v is not an array.
func (v *Value) Push(elems ...Value) {
	if v.kind != KindArray {
		panic(&InvalidKindError{Op: "Push", Kind: v.kind})
	}
	v.arr = append(v.arr, elems...)
}

// PushKV appends a member to a JSON object.
// It does not check whether a member of the same name already exists.
// It panics with an [InvalidKindError] if v is not an object.
func (v *Value) PushKV(name string, val Value) {
	if v.kind != KindObject {
		panic(&InvalidKindError{Op: "PushKV", Kind: v.kind})
	}
	v.obj = append(v.obj, Member{Name: name, Value: val})
}

// Equal reports whether v and w are structurally identical:
// they have the same kind and payload, and the same elements or members
// in the same order. Number literals are compared textually,
// so 1.0 and 1 are not equal.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(w.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Name != w.obj[i].Name || !v.obj[i].Value.Equal(w.obj[i].Value) {
				return false
			}
		}
		return true
	default:
		return v.str == w.str
	}
}
