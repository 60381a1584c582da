// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"cmp"
	"reflect"
	"testing"
)

func TestEscapeTable(t *testing.T) {
	if want := makeEscapesSlow(); !reflect.DeepEqual(escapes, want) {
		for c := range escapes {
			if escapes[c] != want[c] {
				t.Errorf("escapes[%#02x] = %q, want %q", c, escapes[c], want[c])
			}
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		in      byte
		want    string
		wantEsc bool
	}{
		{0x00, `\u0000`, true},
		{0x07, `\u0007`, true},
		{'\b', `\b`, true},
		{'\t', `\t`, true},
		{'\n', `\n`, true},
		{0x0b, `\u000b`, true},
		{'\f', `\f`, true},
		{'\r', `\r`, true},
		{0x1f, `\u001f`, true},
		{'"', `\"`, true},
		{'\\', `\\`, true},
		{' ', "", false},
		{'/', "", false},
		{'a', "", false},
		{0x7f, "", false},
		{0x80, "", false},
		{0xff, "", false},
	}
	for _, tt := range tests {
		got, gotEsc := Lookup(tt.in)
		if got != tt.want || gotEsc != tt.wantEsc {
			t.Errorf("Lookup(%#02x) = (%q, %v), want (%q, %v)", tt.in, got, gotEsc, tt.want, tt.wantEsc)
		}
		quoted := string(AppendQuote(nil, []byte{tt.in}))
		if want := `"` + cmp.Or(tt.want, string([]byte{tt.in})) + `"`; quoted != want {
			t.Errorf("AppendQuote(nil, %#02x) = %q, want %q", tt.in, quoted, want)
		}
	}

	// Every byte at or above the space character other than '"' and '\\'
	// must be copied verbatim.
	for c := 0x20; c < 0x100; c++ {
		if c == '"' || c == '\\' {
			continue
		}
		if _, ok := Lookup(byte(c)); ok {
			t.Errorf("Lookup(%#02x) reports escape, want verbatim", c)
		}
	}
}
