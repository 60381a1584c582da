// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"io"

	"github.com/buger/jsonparser"

	"github.com/go-json-experiment/jsontree/internal/jsonwire"
)

// Parse parses exactly one JSON value from b, which may be surrounded
// by whitespace, and returns it as a tree.
//
// Object members are kept in input order and duplicate names are preserved.
// Number literals are kept verbatim. String content is unescaped but
// is otherwise treated as opaque bytes.
//
// Parse reports a [*SyntacticError] for malformed input.
// The returned tree does not alias b.
// The time taken is linear in len(b) regardless of nesting depth.
func Parse(b []byte) (Value, error) {
	var p parser
	v, n, err := p.parseValue(b, 0)
	if err != nil {
		return Value{}, err
	}
	if m := n + jsonwire.ConsumeWhitespace(b[n:]); m < len(b) {
		err = jsonwire.NewInvalidCharacterError(b[m:], "after top-level value")
		return Value{}, newSyntacticError(m, "invalid JSON", err)
	}
	return v, nil
}

// UnmarshalJSON parses b into v, replacing its previous contents.
func (v *Value) UnmarshalJSON(b []byte) error {
	w, err := Parse(b)
	if err != nil {
		return err
	}
	*v = w
	return nil
}

// parser builds a tree from JSON text in a single pass.
// Objects and arrays are tracked on an explicit stack,
// while scalar tokens are delimited and decoded by jsonparser.
type parser struct {
	stack parseStack
	names *nameCache // allocated on the first object
}

// parseValue parses the JSON value that starts at or after offset n in b.
// It reports the offset just past the end of the value.
func (p *parser) parseValue(b []byte, n int) (v Value, _ int, err error) {
next:
	for {
		n += jsonwire.ConsumeWhitespace(b[n:])
		if n == len(b) {
			return Value{}, n, newSyntacticError(n, "invalid JSON", io.ErrUnexpectedEOF)
		}
		switch c := b[n]; c {
		case '[', '{':
			start := Array()
			if c == '{' {
				start = Object()
			}
			n++
			n += jsonwire.ConsumeWhitespace(b[n:])
			if n < len(b) && b[n] == closingDelim(start.kind) {
				n++
				v = start
				break
			}
			p.stack.push(start)
			if c == '{' {
				if n, err = p.parseName(b, n); err != nil {
					return Value{}, n, err
				}
			}
			continue next
		default:
			if v, n, err = parseScalar(b, n); err != nil {
				return Value{}, n, err
			}
		}

		// Add the completed value to its parent, which may in turn complete.
		for p.stack.depth() > 0 {
			f := p.stack.last()
			f.add(v)
			n += jsonwire.ConsumeWhitespace(b[n:])
			if n == len(b) {
				return Value{}, n, newSyntacticError(n, "invalid JSON", io.ErrUnexpectedEOF)
			}
			switch b[n] {
			case ',':
				n++
				if f.isObject() {
					if n, err = p.parseName(b, n); err != nil {
						return Value{}, n, err
					}
				}
				continue next
			case closingDelim(f.v.kind):
				n++
				v = p.stack.pop()
			default:
				if f.isObject() {
					err = jsonwire.NewInvalidCharacterError(b[n:], "after object value (expecting ',' or '}')")
					return Value{}, n, newSyntacticError(n, "invalid object", err)
				}
				err = jsonwire.NewInvalidCharacterError(b[n:], "after array element (expecting ',' or ']')")
				return Value{}, n, newSyntacticError(n, "invalid array", err)
			}
		}
		return v, n, nil
	}
}

// parseName parses an object name and the colon after it,
// which start at or after offset n in b.
// The name is recorded on the innermost object being parsed.
func (p *parser) parseName(b []byte, n int) (int, error) {
	n += jsonwire.ConsumeWhitespace(b[n:])
	switch {
	case n == len(b):
		return n, newSyntacticError(n, "invalid object", io.ErrUnexpectedEOF)
	case b[n] != '"':
		err := jsonwire.NewInvalidCharacterError(b[n:], `at start of object name (expecting '"')`)
		return n, newSyntacticError(n, "invalid object", err)
	}
	raw, end, err := parseString(b, n)
	if err != nil {
		return n, err
	}
	var buf [64]byte
	name, err := jsonparser.Unescape(raw, buf[:])
	if err != nil {
		return n, newSyntacticError(n, "invalid object name", err)
	}
	if p.names == nil {
		p.names = new(nameCache)
	}
	p.stack.last().name = p.names.make(name)

	n = end + jsonwire.ConsumeWhitespace(b[end:])
	switch {
	case n == len(b):
		return n, newSyntacticError(n, "invalid object", io.ErrUnexpectedEOF)
	case b[n] != ':':
		err := jsonwire.NewInvalidCharacterError(b[n:], "after object name (expecting ':')")
		return n, newSyntacticError(n, "invalid object", err)
	}
	return n + 1, nil
}

// parseScalar parses the string, number, or literal at offset n in b.
// It reports the offset just past the end of the value.
func parseScalar(b []byte, n int) (Value, int, error) {
	switch b[n] {
	case '"':
		raw, end, err := parseString(b, n)
		if err != nil {
			return Value{}, n, err
		}
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Value{}, n, newSyntacticError(n, "invalid string", err)
		}
		return String(s), end, nil
	case 'n', 't', 'f', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
	default:
		err := jsonwire.NewInvalidCharacterError(b[n:], "at start of value")
		return Value{}, n, newSyntacticError(n, "invalid JSON", err)
	}

	raw, typ, end, err := jsonparser.Get(b[n:])
	if err != nil {
		return Value{}, n, newSyntacticError(n, "invalid JSON", err)
	}
	switch typ {
	case jsonparser.Null:
		return Null(), n + end, nil
	case jsonparser.Boolean:
		v, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, n, newSyntacticError(n, "invalid boolean", err)
		}
		return Bool(v), n + end, nil
	case jsonparser.Number:
		v, err := ParseNumber(string(raw))
		if err != nil {
			err.(*SyntacticError).ByteOffset += int64(n)
			return Value{}, n, err
		}
		return v, n + end, nil
	default:
		return Value{}, n, newSyntacticError(n, "invalid JSON", jsonparser.UnknownValueTypeError)
	}
}

// parseString delimits the JSON string that starts with a quote at offset n
// in b and returns its escaped content and the offset just past it.
// Raw control characters are rejected since jsonparser permits them.
func parseString(b []byte, n int) ([]byte, int, error) {
	raw, _, end, err := jsonparser.Get(b[n:])
	if err != nil {
		return nil, n, newSyntacticError(n, "invalid string", err)
	}
	for i, c := range raw {
		if c < ' ' {
			err := jsonwire.NewInvalidCharacterError(raw[i:], "within string (expecting non-control character)")
			return nil, n, newSyntacticError(n+1+i, "invalid string", err)
		}
	}
	return raw, n + end, nil
}

// closingDelim returns the delimiter that ends a JSON object or array.
func closingDelim(k Kind) byte {
	if k == KindObject {
		return '}'
	}
	return ']'
}
