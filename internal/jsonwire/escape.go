// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements stateless functionality for handling JSON text.
package jsonwire

// escapes maps every byte to the text that replaces it within a JSON string,
// where the empty string means that the byte is copied verbatim.
// Only the characters required by RFC 8259, section 7 are escaped.
//
// Validity of this checked in TestEscapeTable.
var escapes = [256]string{
	0x00: `\u0000`, 0x01: `\u0001`, 0x02: `\u0002`, 0x03: `\u0003`,
	0x04: `\u0004`, 0x05: `\u0005`, 0x06: `\u0006`, 0x07: `\u0007`,
	0x08: `\b`, 0x09: `\t`, 0x0a: `\n`, 0x0b: `\u000b`,
	0x0c: `\f`, 0x0d: `\r`, 0x0e: `\u000e`, 0x0f: `\u000f`,
	0x10: `\u0010`, 0x11: `\u0011`, 0x12: `\u0012`, 0x13: `\u0013`,
	0x14: `\u0014`, 0x15: `\u0015`, 0x16: `\u0016`, 0x17: `\u0017`,
	0x18: `\u0018`, 0x19: `\u0019`, 0x1a: `\u001a`, 0x1b: `\u001b`,
	0x1c: `\u001c`, 0x1d: `\u001d`, 0x1e: `\u001e`, 0x1f: `\u001f`,

	'"':  `\"`,
	'\\': `\\`,
}

func makeEscapesSlow() (e [256]string) {
	for c := 0; c < len(e); c++ {
		// Escape characters that are required by JSON.
		if c < ' ' || c == '"' || c == '\\' {
			e[c] = string(appendEscapedASCII(nil, byte(c)))
		}
	}
	return e
}

// Lookup reports the replacement text for c within a JSON string.
// It reports false if c is copied verbatim.
func Lookup(c byte) (string, bool) {
	s := escapes[c]
	return s, s != ""
}
