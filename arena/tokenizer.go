// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

// lexKind classifies the lexeme currently being accumulated, remembered
// across suspensions so a resume never has to re-derive it from input
// already consumed.
type lexKind uint8

const (
	lexNone lexKind = iota
	lexString
	lexLiteral
	lexNumber
)

// Tokenizer is the continuation buffer: it accumulates the current
// lexeme across arbitrarily small input chunks and reports when a lexeme
// is complete.
type Tokenizer struct {
	kind    lexKind
	buf     []byte
	escaped bool // only meaningful mid-string: previous byte was an unescaped backslash
}

// Start begins a new lexeme. kind must not be lexNone.
func (t *Tokenizer) Start(kind lexKind) {
	t.kind = kind
	t.buf = t.buf[:0]
	t.escaped = false
}

// Incomplete reports whether the tokenizer is mid-lexeme, awaiting more
// input before Feed can return a complete value.
func (t *Tokenizer) Incomplete() bool { return t.kind != lexNone }

// Kind exposes the in-progress lexeme kind, used to resume after a
// suspension without re-deriving it from input already consumed.
func (t *Tokenizer) Kind() lexKind { return t.kind }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNumberChar(c byte) bool {
	switch c {
	case '+', '-', '.', 'e', 'E':
		return true
	}
	return isDigit(c)
}

// Feed consumes from input, returning the unconsumed remainder. done is
// true once a terminator was found (for literals/numbers, the first byte
// that cannot continue the lexeme); lexeme is then the accumulated bytes (for
// strings, with the closing quote stripped and excluding the opening
// quote, which the parser already consumed before calling Start).
//
// When done is false the tokenizer has consumed all of input without
// finding a terminator; the caller must request more bytes and call Feed
// again; Incomplete remains true across that gap.
func (t *Tokenizer) Feed(input []byte) (remaining []byte, lexeme []byte, done bool) {
	i := 0
	switch t.kind {
	case lexLiteral:
		for i < len(input) && isAlpha(input[i]) {
			t.buf = append(t.buf, input[i])
			i++
		}
		if i == len(input) {
			return nil, nil, false
		}
		t.kind = lexNone
		return input[i:], t.buf, true

	case lexNumber:
		for i < len(input) && isNumberChar(input[i]) {
			t.buf = append(t.buf, input[i])
			i++
		}
		if i == len(input) {
			return nil, nil, false
		}
		t.kind = lexNone
		return input[i:], t.buf, true

	case lexString:
		for i < len(input) {
			c := input[i]
			i++
			if t.escaped {
				t.buf = append(t.buf, c)
				t.escaped = false
				continue
			}
			if c == '\\' {
				t.buf = append(t.buf, c)
				t.escaped = true
				continue
			}
			if c == '"' {
				t.kind = lexNone
				return input[i:], t.buf, true
			}
			t.buf = append(t.buf, c)
		}
		return nil, nil, false

	default:
		return input, nil, true
	}
}
