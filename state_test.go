// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import "testing"

func TestWriteStack(t *testing.T) {
	// To test the stack, we pass an ordered sequence of operations and
	// check whether the current state is as expected.
	type (
		push struct {
			v     Value
			level int
		}
		pop     struct{}
		advance struct{} // write one child of the last entry

		// check verifies the accessors of the last entry.
		check struct {
			depth    int
			isObject bool
			length   int
			next     int
			level    int
			done     bool
		}
	)
	ops := []any{
		check{depth: 0},
		push{Array(Null(), Null()), 1},
		check{depth: 1, length: 2, level: 1},
		advance{},
		check{depth: 1, length: 2, next: 1, level: 1},
		push{Object(), 2},
		check{depth: 2, isObject: true, level: 2, done: true},
		pop{},
		advance{},
		check{depth: 1, length: 2, next: 2, level: 1, done: true},
		push{Object(Member{"k", Null()}), 5},
		check{depth: 2, isObject: true, length: 1, level: 5},
		pop{},
		pop{},
		check{depth: 0},
	}

	var s writeStack
	for i, op := range ops {
		switch op := op.(type) {
		case push:
			s.push(op.v, op.level)
		case pop:
			s.pop()
		case advance:
			s.last().next++
		case check:
			if got := s.depth(); got != op.depth {
				t.Fatalf("%d: depth() = %d, want %d", i, got, op.depth)
			}
			if op.depth == 0 {
				continue
			}
			f := s.last()
			if f.isObject() != op.isObject || f.length() != op.length ||
				f.next != op.next || f.level != op.level || f.done() != op.done {
				t.Fatalf("%d: last() = {isObject:%v length:%d next:%d level:%d done:%v}, want %+v",
					i, f.isObject(), f.length(), f.next, f.level, f.done(), op)
			}
		}
	}
}

func TestWriterPoolReuse(t *testing.T) {
	// A writer returned to the pool mid-write (via panic) must not
	// leak frames into the next use.
	func() {
		defer func() { recover() }()
		Write(Array(Array(Value{kind: 99})), 2)
	}()
	if got, want := string(Write(Array(Int(1)), 0)), `[1]`; got != want {
		t.Errorf("Write after recovered panic = %s, want %s", got, want)
	}

	w := getWriter(3)
	w.stack.push(Array(), 1)
	putWriter(w)
	w = getWriter(0)
	if w.indent != 0 || w.stack.depth() != 0 {
		t.Errorf("getWriter returned dirty writer: indent=%d depth=%d", w.indent, w.stack.depth())
	}
	putWriter(w)

	// Frames left behind by an aborted write must not keep its tree alive.
	w = getWriter(2)
	w.stack.push(Array(String("x")), 1)
	w.stack.push(Object(Member{"k", Null()}), 2)
	frames := w.stack[:cap(w.stack)]
	putWriter(w)
	for i, f := range frames {
		if f.v.kind != 0 || f.v.arr != nil || f.v.obj != nil || f.level != 0 || f.next != 0 {
			t.Errorf("putWriter retained frame %d: %+v", i, f)
		}
	}
}

func TestParseStack(t *testing.T) {
	var s parseStack
	s.push(Object())
	s.last().name = "a"
	s.push(Array())
	s.last().add(Int(1))
	s.last().add(Int(2))
	inner := s.pop()
	s.last().add(inner)
	if got := s.depth(); got != 1 {
		t.Fatalf("depth() = %d, want 1", got)
	}
	if name := s.last().name; name != "" {
		t.Errorf("name after add = %q, want empty", name)
	}
	frames := s[:cap(s)]
	got := s.pop()
	want := Object(Member{"a", Array(Int(1), Int(2))})
	if !got.Equal(want) {
		t.Errorf("pop() = %v, want %v", got, want)
	}
	for i, f := range frames {
		if f.v.arr != nil || f.v.obj != nil || f.name != "" {
			t.Errorf("pop retained frame %d: %+v", i, f)
		}
	}
}
