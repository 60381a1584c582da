// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"errors"
	"io"
	"testing"
)

const (
	someGlobalError  = jsonError("some global error")
	otherGlobalError = jsonError("other global error alt")
)

var (
	someWrapError         = &wrapError{str: "some wrap error", err: io.ErrShortWrite}
	otherWrapError        = &wrapError{str: "other wrap error", err: io.ErrShortWrite}
	someSyntacticError    = &SyntacticError{str: "some syntactic error"}
	otherSyntacticError   = &SyntacticError{str: "other syntactic error"}
	someInvalidKindError  = &InvalidKindError{Op: "Push", Kind: KindObject}
	otherInvalidKindError = &InvalidKindError{Op: "Push", Kind: KindObject}
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		err    error
		target error
		want   bool
	}{
		// Top-level Error should match itself (identity).
		{Error, Error, true},

		// All sub-error values should match the top-level Error value.
		{someGlobalError, Error, true},
		{someWrapError, Error, true},
		{someSyntacticError, Error, true},
		{someInvalidKindError, Error, true},

		// Top-level Error should not match any other sub-error value.
		{Error, someGlobalError, false},
		{Error, someWrapError, false},
		{Error, someSyntacticError, false},
		{Error, someInvalidKindError, false},

		// Sub-error values should match itself (identity).
		{someGlobalError, someGlobalError, true},
		{someWrapError, someWrapError, true},
		{someSyntacticError, someSyntacticError, true},
		{someInvalidKindError, someInvalidKindError, true},

		// Sub-error values should not match each other.
		{someGlobalError, someWrapError, false},
		{someWrapError, someSyntacticError, false},
		{someSyntacticError, someInvalidKindError, false},
		{someInvalidKindError, someGlobalError, false},

		// Sub-error values should not match other error values of same type.
		{someGlobalError, otherGlobalError, false},
		{someWrapError, otherWrapError, false},
		{someSyntacticError, otherSyntacticError, false},
		{someInvalidKindError, otherInvalidKindError, false},

		// Wrapped errors should match what they wrap.
		{someWrapError, io.ErrShortWrite, true},

		// Error should not match any other random error.
		{Error, nil, false},
		{nil, Error, false},
		{io.ErrShortWrite, Error, false},
		{Error, io.ErrShortWrite, false},
	}

	for _, tt := range tests {
		got := errors.Is(tt.err, tt.target)
		if got != tt.want {
			t.Errorf("errors.Is(%#v, %#v) = %v, want %v", tt.err, tt.target, got, tt.want)
		}
		// If the type supports the Is method,
		// it should behave the same way if called directly.
		if iserr, ok := tt.err.(interface{ Is(error) bool }); ok && tt.target != io.ErrShortWrite {
			got := iserr.Is(tt.target)
			if got != tt.want {
				t.Errorf("%#v.Is(%#v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		}
	}
}

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{someWrapError, "jsontree: some wrap error: short write"},
		{&SyntacticError{ByteOffset: 5, str: "invalid JSON", err: io.ErrUnexpectedEOF}, "jsontree: invalid JSON after offset 5: unexpected EOF"},
		{&SyntacticError{str: "invalid JSON"}, "jsontree: invalid JSON"},
		{&InvalidKindError{Op: "PushKV", Kind: KindArray}, "jsontree: invalid PushKV on array value"},
		{&InvalidKindError{Op: "Write", Kind: 9}, "jsontree: invalid Write on Kind(9) value"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
