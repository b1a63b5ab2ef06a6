// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

import "fmt"

// ErrorKind classifies an engine-level failure. It is a closed set.
type ErrorKind uint8

const (
	ErrInvalidArg ErrorKind = iota
	ErrInvalidSequence
	ErrNeedMore
	ErrOutOfMemory
	ErrNotFound
	ErrBadPath
	ErrPathTooLong
	ErrWrongType
	ErrWrongParent
	ErrBadType
	ErrNoHash
)

// Error lets a bare ErrorKind be used as an errors.Is target without
// wrapping it in *Error first.
func (k ErrorKind) Error() string { return k.String() }

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidArg:
		return "invalid-arg"
	case ErrInvalidSequence:
		return "invalid-sequence"
	case ErrNeedMore:
		return "need-more"
	case ErrOutOfMemory:
		return "out-of-memory"
	case ErrNotFound:
		return "not-found"
	case ErrBadPath:
		return "bad-path"
	case ErrPathTooLong:
		return "path-too-long"
	case ErrWrongType:
		return "wrong-type"
	case ErrWrongParent:
		return "wrong-parent"
	case ErrBadType:
		return "bad-type"
	case ErrNoHash:
		return "no-hash"
	default:
		return "unknown-error"
	}
}

// SequenceError is the closed enumeration of 20 human-readable sequence
// descriptors a parse can set.
type SequenceError uint8

const (
	SeqNoError SequenceError = iota
	SeqMustStartWithObjectOrArray
	SeqUnexpectedString
	SeqBadEscape
	SeqUnexpectedNumber
	SeqObjectEntryHasNoName
	SeqBadNumber
	SeqUnexpectedNonStringText
	SeqBadLiteral
	SeqDiscontinued
	SeqMissingColon
	SeqLeadingComma
	SeqUnexpectedContainer
	SeqMismatchedObjectClose
	SeqMismatchedArrayClose
	SeqEmptyAtClose
	SeqUnexpectedColon
	SeqRandomText
	SeqInternalBug
	SeqInvalidTree
)

var sequenceErrorText = [...]string{
	SeqNoError:                     "no error",
	SeqMustStartWithObjectOrArray:  "tree must start with object or array",
	SeqUnexpectedString:            "unexpected string",
	SeqBadEscape:                   "bad escape sequence",
	SeqUnexpectedNumber:            "unexpected number",
	SeqObjectEntryHasNoName:        "object entry has no name",
	SeqBadNumber:                   "bad number",
	SeqUnexpectedNonStringText:     "unexpected non-string text",
	SeqBadLiteral:                  "bad literal",
	SeqDiscontinued:                "discontinued",
	SeqMissingColon:                "missing colon",
	SeqLeadingComma:                "leading comma",
	SeqUnexpectedContainer:         "unexpected object or array",
	SeqMismatchedObjectClose:       "mismatched object close",
	SeqMismatchedArrayClose:        "mismatched array close",
	SeqEmptyAtClose:                "empty value at closure",
	SeqUnexpectedColon:             "unexpected colon",
	SeqRandomText:                  "random unquoted text",
	SeqInternalBug:                 "internal bug",
	SeqInvalidTree:                 "invalid tree handle",
}

func (s SequenceError) String() string {
	if int(s) < len(sequenceErrorText) {
		return sequenceErrorText[s]
	}
	return "unrecognized sequence error"
}

// Error is the single exported error type the engine returns. Mutation and
// query operations never set Seq; only a parse in progress annotates it,
// and it survives until the context's next recycle.
type Error struct {
	Kind ErrorKind
	Seq  SequenceError
}

func (e *Error) Error() string {
	if e.Kind == ErrInvalidSequence {
		return fmt.Sprintf("%s: %s", e.Kind, e.Seq)
	}
	return e.Kind.String()
}

// Is supports errors.Is against a bare ErrorKind sentinel.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && e.Kind == k
}

func newErr(kind ErrorKind) *Error { return &Error{Kind: kind} }

func newSeqErr(seq SequenceError) *Error {
	return &Error{Kind: ErrInvalidSequence, Seq: seq}
}
