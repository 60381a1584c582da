// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"strconv"

	"github.com/go-json-experiment/jsontree/internal/jsonwire"
)

// initialCapacity is the number of bytes reserved up front
// for the output of Write and for pooled buffers.
const initialCapacity = 1024

// Write returns the JSON text for v.
//
// If prettyIndent is zero, the output is compact with no whitespace at all.
// Otherwise, every element of an array and every member of an object
// is placed on its own line and indented by prettyIndent spaces per level
// of nesting, and a single space follows each colon.
// No trailing newline is emitted.
//
// It panics if prettyIndent is negative or if the tree contains
// a Value whose kind is not one of the defined kinds.
func Write(v Value, prettyIndent int) []byte {
	return AppendValue(make([]byte, 0, initialCapacity), v, prettyIndent, 0)
}

// AppendValue appends the JSON text for v to dst and returns the extended buffer.
//
// The indentLevel specifies the nesting level that v is written at,
// which is useful when v is embedded within surrounding output.
// Levels 0 and 1 produce identical output: a pretty-printed container
// places its children at least one indent in and its closing bracket
// at least at the left margin. Every other parameter is as for [Write].
//
// Nesting depth is limited only by available memory.
func AppendValue(dst []byte, v Value, prettyIndent, indentLevel int) []byte {
	if prettyIndent < 0 {
		panic(errorPrefix + "negative indent " + strconv.Itoa(prettyIndent))
	}
	if indentLevel < 0 {
		panic(errorPrefix + "negative indent level " + strconv.Itoa(indentLevel))
	}
	switch v.kind {
	case KindArray, KindObject:
		w := getWriter(prettyIndent)
		defer putWriter(w)
		return w.appendValue(dst, v, indentLevel)
	default:
		return appendScalar(dst, v)
	}
}

// MarshalJSON returns the compact JSON text for v.
func (v Value) MarshalJSON() ([]byte, error) {
	return AppendValue(nil, v, 0, 0), nil
}

// writer holds the state for writing a single tree.
type writer struct {
	indent int // number of spaces per indent level; zero means compact
	stack  writeStack
}

func (w *writer) pretty() bool { return w.indent > 0 }

// appendValue writes v at the given indent level,
// together with every element and member nested within it.
func (w *writer) appendValue(dst []byte, v Value, level int) []byte {
	for {
		switch v.kind {
		case KindArray, KindObject:
			dst = append(dst, openBracket(v.kind))
			if w.pretty() {
				dst = append(dst, '\n')
			}
			w.stack.push(v, max(level, 1))
		default:
			dst = appendScalar(dst, v)
		}

		// Close every finished container until one has another child to write.
	advance:
		for {
			if w.stack.depth() == 0 {
				return dst
			}
			f := w.stack.last()
			if f.next > 0 {
				if !f.done() {
					dst = append(dst, ',')
				}
				if w.pretty() {
					dst = append(dst, '\n')
				}
			}
			if f.done() {
				if w.pretty() {
					dst = appendIndent(dst, (f.level-1)*w.indent)
				}
				dst = append(dst, closeBracket(f.v.kind))
				w.stack.pop()
				continue
			}

			if w.pretty() {
				dst = appendIndent(dst, f.level*w.indent)
			}
			if f.isObject() {
				m := &f.v.obj[f.next]
				dst = jsonwire.AppendQuote(dst, m.Name)
				dst = append(dst, ':')
				if w.pretty() {
					dst = append(dst, ' ')
				}
				v = m.Value
			} else {
				v = f.v.arr[f.next]
			}
			level = f.level + 1
			f.next++
			break advance
		}
	}
}

// appendScalar appends a JSON null, boolean, number, or string.
func appendScalar(dst []byte, v Value) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if v.str == "1" {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindNumber:
		return append(dst, v.str...)
	case KindString:
		return jsonwire.AppendQuote(dst, v.str)
	default:
		panic(&InvalidKindError{Op: "Write", Kind: v.kind})
	}
}

func openBracket(k Kind) byte {
	if k == KindObject {
		return '{'
	}
	return '['
}

func closeBracket(k Kind) byte {
	if k == KindObject {
		return '}'
	}
	return ']'
}

const spaces = "                                                                "

// appendIndent appends n spaces.
func appendIndent(dst []byte, n int) []byte {
	for n > len(spaces) {
		dst = append(dst, spaces...)
		n -= len(spaces)
	}
	return append(dst, spaces[:n]...)
}
