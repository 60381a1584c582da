// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsontree implements serialization of an in-memory tree
// of JSON values into JSON text as specified in RFC 8259.
//
// A tree is built from [Value] nodes using the constructors
// [Null], [Bool], [Number], [Int], [Uint], [Float], [String],
// [Array], and [Object], or obtained by parsing JSON text with [Parse].
// It is serialized with [Write], [AppendValue], or an [Encoder].
//
// # Output form
//
// Output is either compact, with no insignificant whitespace at all,
// or pretty-printed with a caller-chosen number of spaces per level:
//
//	Write(v, 0) // {"a":[1,true]}
//	Write(v, 2) // {
//	            //   "a": [
//	            //     1,
//	            //     true
//	            //   ]
//	            // }
//
// The output is deterministic: the same tree and indent always produce
// the same bytes. Object members are written in insertion order and
// duplicate names are written as they appear. Number literals are
// written exactly as stored.
//
// Strings are escaped minimally. Only the quotation mark, the reverse solidus,
// and control characters below U+0020 are escaped. All other bytes,
// including non-ASCII and invalid UTF-8, pass through untouched.
//
// An empty array or object is written as [] or {} when compact.
// When pretty-printed it still spans two lines, with the closing bracket
// indented to the level of the container itself.
//
// # Errors
//
// Serialization cannot fail for a well-formed tree. Programming errors,
// such as pushing an element onto a non-array, panic with an [*InvalidKindError].
// Errors produced by parsing or streaming satisfy errors.Is(err, [Error]).
package jsontree
