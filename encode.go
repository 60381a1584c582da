// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"io"
	"strconv"
)

// Encoder writes a stream of JSON values to an output stream,
// each followed by a newline.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	wr     io.Writer
	indent int
}

// NewEncoder constructs a new encoder writing to w.
// The prettyIndent is as for [Write].
// It panics if prettyIndent is negative.
func NewEncoder(w io.Writer, prettyIndent int) *Encoder {
	if prettyIndent < 0 {
		panic(errorPrefix + "negative indent " + strconv.Itoa(prettyIndent))
	}
	return &Encoder{wr: w, indent: prettyIndent}
}

// Encode writes the JSON text for v followed by a newline.
// The entire value is buffered and written with a single call to Write
// on the underlying writer.
func (e *Encoder) Encode(v Value) error {
	b := getBuffer()
	defer putBuffer(b)
	b.buf = AppendValue(b.buf, v, e.indent, 0)
	b.buf = append(b.buf, '\n')
	if n, err := e.wr.Write(b.buf); err != nil {
		return &wrapError{"write error", err}
	} else if n < len(b.buf) {
		return &wrapError{"write error", io.ErrShortWrite}
	}
	return nil
}
