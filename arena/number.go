// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

import (
	"bytes"
	"strconv"
)

// numberKind selects integer vs float conversion for a number lexeme.
type numberKind uint8

const (
	numberInteger numberKind = iota
	numberFloat
)

// classifyNumber rejects leading zeros (01, -01; 0, 0.x, -0.x remain
// legal) and bare-dot forms (".5", "1.", "1.e5"), then chooses integer vs
// float conversion. The dot checks are explicit because strconv accepts
// those forms; everything past this pre-check is left to strconv.
func classifyNumber(lexeme []byte) (numberKind, *Error) {
	if len(lexeme) == 0 {
		return 0, newSeqErr(SeqBadNumber)
	}

	digits := lexeme
	if digits[0] == '-' {
		digits = digits[1:]
		if len(digits) == 0 {
			return 0, newSeqErr(SeqBadNumber)
		}
	}
	if digits[0] == '.' {
		return 0, newSeqErr(SeqBadNumber)
	}
	if digits[0] == '0' && len(digits) > 1 && isDigit(digits[1]) {
		return 0, newSeqErr(SeqBadNumber)
	}
	if i := bytes.IndexByte(lexeme, '.'); i >= 0 {
		if i+1 >= len(lexeme) || !isDigit(lexeme[i+1]) {
			return 0, newSeqErr(SeqBadNumber)
		}
	}
	if len(lexeme) == 2 && lexeme[0] == '-' && lexeme[1] == '0' {
		// "-0" with no fraction/exponent is rejected; "-0.0"/"-0e1" are not.
		return 0, newSeqErr(SeqBadNumber)
	}

	if bytes.ContainsAny(lexeme, ".eE") {
		return numberFloat, nil
	}
	return numberInteger, nil
}

// ConvertNumber turns a validated number lexeme into either an int64 or a
// float64, reporting which kind was produced.
func ConvertNumber(lexeme []byte) (asInt int64, asFloat float64, kind numberKind, err *Error) {
	kind, cerr := classifyNumber(lexeme)
	if cerr != nil {
		return 0, 0, 0, cerr
	}

	s := string(lexeme)
	if kind == numberInteger {
		v, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil {
			return 0, 0, 0, newSeqErr(SeqBadNumber)
		}
		return v, 0, numberInteger, nil
	}

	v, perr := strconv.ParseFloat(s, 64)
	if perr != nil {
		return 0, 0, 0, newSeqErr(SeqBadNumber)
	}
	return 0, v, numberFloat, nil
}

// ConvertLiteral compares a literal lexeme case-insensitively against
// null/true/false.
func ConvertLiteral(lexeme []byte) (isNull bool, boolVal bool, ok bool) {
	switch {
	case asciiEqualFold(lexeme, "null"):
		return true, false, true
	case asciiEqualFold(lexeme, "true"):
		return false, true, true
	case asciiEqualFold(lexeme, "false"):
		return false, false, true
	default:
		return false, false, false
	}
}

// asciiEqualFold avoids pulling in golang.org/x/text for a plain ASCII
// case-insensitive compare of a closed three-word set.
func asciiEqualFold(b []byte, word string) bool {
	if len(b) != len(word) {
		return false
	}
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return false
		}
	}
	return true
}
