// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in         string
		wantOffset int64
		wantErr    error
	}{
		{in: "0"},
		{in: "-0"},
		{in: "123"},
		{in: "-1.5"},
		{in: "1e10"},
		{in: "1E+10"},
		{in: "1.0e-10"},
		{in: "123456789012345678901234567890"},

		{in: "", wantErr: io.ErrUnexpectedEOF},
		{in: "-", wantOffset: 1, wantErr: io.ErrUnexpectedEOF},
		{in: "1.", wantOffset: 2, wantErr: io.ErrUnexpectedEOF},
		{in: "1e", wantOffset: 2, wantErr: io.ErrUnexpectedEOF},
		{in: "01", wantOffset: 1, wantErr: Error},
		{in: "+1", wantErr: Error},
		{in: ".5", wantErr: Error},
		{in: "1 ", wantOffset: 1, wantErr: Error},
		{in: " 1", wantErr: Error},
		{in: "NaN", wantErr: Error},
		{in: "0x10", wantOffset: 1, wantErr: Error},
	}
	for _, tt := range tests {
		v, err := ParseNumber(tt.in)
		if tt.wantErr == nil {
			if err != nil {
				t.Errorf("ParseNumber(%q) error: %v", tt.in, err)
			} else if v.Kind() != KindNumber || v.Number() != tt.in {
				t.Errorf("ParseNumber(%q) = %v, want verbatim number", tt.in, v)
			}
			continue
		}
		var serr *SyntacticError
		switch {
		case !errors.As(err, &serr):
			t.Errorf("ParseNumber(%q) error = %v, want *SyntacticError", tt.in, err)
		case !errors.Is(err, tt.wantErr) || !errors.Is(err, Error):
			t.Errorf("ParseNumber(%q) error = %v, want %v", tt.in, err, tt.wantErr)
		case serr.ByteOffset != tt.wantOffset:
			t.Errorf("ParseNumber(%q) offset = %d, want %d", tt.in, serr.ByteOffset, tt.wantOffset)
		}
	}
}

func TestNumberPanics(t *testing.T) {
	for _, call := range []func(){
		func() { Number("1.") },
		func() { Float(math.NaN()) },
		func() { Float(math.Inf(-1)) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("call did not panic")
				}
			}()
			call()
		}()
	}
}
