// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// ConsumeWhitespace consumes leading JSON whitespace per RFC 8259, section 2.
func ConsumeWhitespace[Bytes ~[]byte | ~string](b Bytes) (n int) {
	for len(b) > n && (b[n] == ' ' || b[n] == '\t' || b[n] == '\r' || b[n] == '\n') {
		n++
	}
	return n
}

// ConsumeNumber consumes the next JSON number per RFC 8259, section 6.
// It reports the number of bytes consumed if it is a valid number,
// otherwise it reports the offset of the invalid character with an error.
// It returns [io.ErrUnexpectedEOF] if the input ends within the number.
func ConsumeNumber[Bytes ~[]byte | ~string](b Bytes) (n int, err error) {
	// Optional minus sign.
	if len(b) > 0 && b[0] == '-' {
		n++
	}

	// Integer part, which has no leading zeros.
	switch {
	case len(b) == n:
		return n, io.ErrUnexpectedEOF
	case b[n] == '0':
		n++
	case '1' <= b[n] && b[n] <= '9':
		n++
		n += consumeDigits(b[n:])
	default:
		return n, NewInvalidCharacterError(b[n:], "within number (expecting digit)")
	}

	// Optional fraction.
	if len(b) > n && b[n] == '.' {
		n++
		switch {
		case len(b) == n:
			return n, io.ErrUnexpectedEOF
		case '0' <= b[n] && b[n] <= '9':
			n++
			n += consumeDigits(b[n:])
		default:
			return n, NewInvalidCharacterError(b[n:], "within number (expecting digit)")
		}
	}

	// Optional exponent.
	if len(b) > n && (b[n] == 'e' || b[n] == 'E') {
		n++
		if len(b) > n && (b[n] == '-' || b[n] == '+') {
			n++
		}
		switch {
		case len(b) == n:
			return n, io.ErrUnexpectedEOF
		case '0' <= b[n] && b[n] <= '9':
			n++
			n += consumeDigits(b[n:])
		default:
			return n, NewInvalidCharacterError(b[n:], "within number (expecting digit)")
		}
	}
	return n, nil
}

func consumeDigits[Bytes ~[]byte | ~string](b Bytes) (n int) {
	for len(b) > n && ('0' <= b[n] && b[n] <= '9') {
		n++
	}
	return n
}

// NewInvalidCharacterError returns an error describing the first character
// of prefix as invalid, where the where string describes the context.
func NewInvalidCharacterError[Bytes ~[]byte | ~string](prefix Bytes, where string) error {
	return errors.New("invalid character " + QuoteRune(prefix) + " " + where)
}

// QuoteRune quotes the first rune in the input.
func QuoteRune[Bytes ~[]byte | ~string](b Bytes) string {
	if len(b) == 0 {
		return "EOF"
	}
	r, n := utf8.DecodeRuneInString(string(truncateMaxUTF8(b)))
	if r == utf8.RuneError && n == 1 {
		return fmt.Sprintf(`'\x%02x'`, b[0])
	}
	return strconv.QuoteRune(r)
}

// truncateMaxUTF8 truncates b such it contains at least one rune.
//
// The utf8 package currently lacks generic variants, which complicates
// generic functions that operates on either []byte or string.
// As a hack, we always call the utf8 function operating on strings,
// but always truncate the input such that the result is identical.
//
// Example usage:
//
//	utf8.DecodeRuneInString(string(truncateMaxUTF8(b)))
//
// Converting a []byte to a string is stack allocated since
// truncateMaxUTF8 guarantees that the []byte is short.
func truncateMaxUTF8[Bytes ~[]byte | ~string](b Bytes) Bytes {
	// TODO(https://go.dev/issue/56948): Remove this function and
	// instead directly call generic utf8 functions wherever used.
	if len(b) > utf8.UTFMax {
		return b[:utf8.UTFMax]
	}
	return b
}
