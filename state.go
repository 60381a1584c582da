// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

// writeStack is a stack where each entry represents a JSON object or array
// whose elements or members are in the middle of being written.
// It takes the place of the call stack, so that the nesting depth
// of a Value tree is bounded only by memory.
//
// The zero value is an empty stack ready for use.
type writeStack []writeFrame

// writeFrame records the progress of writing a single JSON object or array.
type writeFrame struct {
	v     Value // the array or object being written
	level int   // effective indent level of the elements or members
	next  int   // index of the next element or member to write
}

// depth is the current nested depth of JSON objects and arrays.
func (s writeStack) depth() int {
	return len(s)
}

// last returns a pointer to the last entry.
// The pointer is invalidated by the next push.
func (s writeStack) last() *writeFrame {
	return &s[len(s)-1]
}

// push starts writing the JSON object or array v at the given indent level.
func (s *writeStack) push(v Value, level int) {
	*s = append(*s, writeFrame{v: v, level: level})
}

// pop finishes writing the last JSON object or array.
func (s *writeStack) pop() {
	(*s)[len(*s)-1] = writeFrame{} // allow GC to reclaim the tree
	*s = (*s)[:len(*s)-1]
}

// isObject reports whether this is a JSON object.
func (f *writeFrame) isObject() bool {
	return f.v.kind == KindObject
}

// length reports the number of elements or members in the JSON object or array.
func (f *writeFrame) length() int {
	return f.v.Len()
}

// done reports whether every element or member has been written.
func (f *writeFrame) done() bool {
	return f.next == f.length()
}

// parseStack is a stack where each entry represents a JSON object or array
// whose elements or members are in the middle of being parsed.
// Like writeStack, it takes the place of the call stack.
type parseStack []parseFrame

// parseFrame records the progress of parsing a single JSON object or array.
type parseFrame struct {
	v    Value  // the array or object being built
	name string // name of the member whose value is being parsed
}

func (s parseStack) depth() int {
	return len(s)
}

// last returns a pointer to the last entry.
// The pointer is invalidated by the next push.
func (s parseStack) last() *parseFrame {
	return &s[len(s)-1]
}

// push starts parsing the elements or members of the JSON object or array v.
func (s *parseStack) push(v Value) {
	*s = append(*s, parseFrame{v: v})
}

// pop finishes parsing the last JSON object or array and returns it.
func (s *parseStack) pop() Value {
	v := (*s)[len(*s)-1].v
	(*s)[len(*s)-1] = parseFrame{}
	*s = (*s)[:len(*s)-1]
	return v
}

func (f *parseFrame) isObject() bool {
	return f.v.kind == KindObject
}

// add appends v as the next element, or as the value of the next member.
func (f *parseFrame) add(v Value) {
	if f.isObject() {
		f.v.obj = append(f.v.obj, Member{Name: f.name, Value: v})
		f.name = ""
		return
	}
	f.v.arr = append(f.v.arr, v)
}
