// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import "strconv"

const errorPrefix = "jsontree: "

// Error matches errors returned by this package according to errors.Is.
const Error = jsonError("jsontree error")

type jsonError string

func (e jsonError) Error() string        { return string(e) }
func (e jsonError) Is(target error) bool { return e == target || target == Error }

type wrapError struct {
	str string
	err error
}

func (e *wrapError) Error() string        { return errorPrefix + e.str + ": " + e.err.Error() }
func (e *wrapError) Unwrap() error        { return e.err }
func (e *wrapError) Is(target error) bool { return e == target || target == Error }

// SyntacticError is a description of a syntactic error that occurred when
// parsing JSON text or validating a JSON number literal.
//
// The contents of this error as produced by this package may change over time.
type SyntacticError struct {
	// ByteOffset indicates that an error occurred after
	// consuming ByteOffset bytes of input.
	ByteOffset int64

	str string
	err error // may be nil
}

func (e *SyntacticError) Error() string {
	s := errorPrefix + e.str
	if e.ByteOffset > 0 {
		s += " after offset " + strconv.FormatInt(e.ByteOffset, 10)
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}
func (e *SyntacticError) Unwrap() error        { return e.err }
func (e *SyntacticError) Is(target error) bool { return e == target || target == Error }

func newSyntacticError(offset int, str string, err error) *SyntacticError {
	return &SyntacticError{ByteOffset: int64(offset), str: str, err: err}
}

// InvalidKindError reports an operation applied to a [Value] of the wrong kind,
// or a Value whose kind is outside the closed set of kinds.
// It indicates a programming error and is always delivered by panic.
type InvalidKindError struct {
	Op   string // the operation that was attempted (e.g., "PushKV")
	Kind Kind   // the kind of the Value the operation was applied to
}

func (e *InvalidKindError) Error() string {
	return errorPrefix + "invalid " + e.Op + " on " + e.Kind.String() + " value"
}
func (e *InvalidKindError) Is(target error) bool { return e == target || target == Error }
