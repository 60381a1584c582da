// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import "github.com/go-json-experiment/jsontree/internal/jsonwire"

// AppendQuote appends a double-quoted JSON string literal representing src
// to dst and returns the extended buffer.
//
// Only the quotation mark, reverse solidus, and control characters
// below U+0020 are escaped; the short forms \b, \t, \n, \f, and \r are
// used where they exist and \u00XX with lowercase hex otherwise.
// Every other byte, including DEL and invalid UTF-8, is copied unchanged.
// This is the same form that [Write] uses for strings and object names.
func AppendQuote[Bytes ~[]byte | ~string](dst []byte, src Bytes) []byte {
	return jsonwire.AppendQuote(dst, src)
}
