// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"math"
	"strconv"

	"github.com/go-json-experiment/jsontree/internal/jsonwire"
)

// Number constructs a Value representing a JSON number
// from its literal text (e.g., "-12.5e3").
// The literal is kept verbatim and never reformatted.
// It panics if s is not a valid JSON number per RFC 8259, section 6;
// use [ParseNumber] for untrusted input.
func Number(s string) Value {
	v, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseNumber constructs a Value representing a JSON number
// from its literal text. It reports a [SyntacticError] if s is not
// exactly one valid JSON number without surrounding whitespace.
func ParseNumber(s string) (Value, error) {
	switch n, err := jsonwire.ConsumeNumber(s); {
	case err != nil:
		return Value{}, newSyntacticError(n, "invalid number "+strconv.Quote(s), err)
	case n < len(s):
		err = jsonwire.NewInvalidCharacterError(s[n:], "after number")
		return Value{}, newSyntacticError(n, "invalid number "+strconv.Quote(s), err)
	}
	return Value{kind: KindNumber, str: s}, nil
}

// Int constructs a Value representing a JSON number from an int64.
func Int(n int64) Value {
	return Value{kind: KindNumber, str: strconv.FormatInt(n, 10)}
}

// Uint constructs a Value representing a JSON number from a uint64.
func Uint(n uint64) Value {
	return Value{kind: KindNumber, str: strconv.FormatUint(n, 10)}
}

// Float constructs a Value representing a JSON number from a float64.
// It is formatted similar to the ES6 number-to-string conversion.
// It panics if n is NaN or ±Inf, which have no JSON representation.
func Float(n float64) Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		panic(errorPrefix + "unsupported float " + strconv.FormatFloat(n, 'g', -1, 64))
	}
	return Value{kind: KindNumber, str: string(jsonwire.AppendFloat(nil, n, 64))}
}
