// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

// skipWS advances past JSON insignificant whitespace (space, tab, CR, LF).
func skipWS(data []byte) []byte {
	i := 0
	for i < len(data) {
		switch data[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return data[i:]
		}
	}
	return data[i:]
}

// countNonWS counts the bytes of data that are not JSON whitespace.
func countNonWS(data []byte) int {
	n := 0
	for _, c := range data {
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			n++
		}
	}
	return n
}

func isCloser(b byte) bool { return b == '}' || b == ']' }

// feed runs the grammar driver over data, resuming from whatever
// cursor/tokenizer state the context already carries. It returns as soon as
// data is exhausted mid-lexeme or between lexemes (needMore), the root
// closes (trailing reports leftover non-whitespace bytes), or a grammar
// violation is found.
func (ctx *Context) feed(data []byte) (needMore bool, trailing int, err *Error) {
	for {
		if ctx.incomplete {
			kind := ctx.tokKind
			rem, lexeme, done := ctx.tok.Feed(data)
			if !done {
				return true, 0, nil
			}
			data = rem
			ctx.incomplete = false
			if perr := ctx.placeLexeme(kind, lexeme); perr != nil {
				ctx.lastSeq = perr.Seq
				return false, 0, perr
			}
			if ctx.closed {
				return false, countNonWS(data), nil
			}
			continue
		}

		data = skipWS(data)
		if len(data) == 0 {
			return true, 0, nil
		}

		cur := ctx.nodeAt(ctx.cursor)
		if cur.ntype.IsContainer() && cur.isOpen() && cur.child == NilIndex && !isCloser(data[0]) {
			containerRef := ctx.cursor
			idx := ctx.nodes.Alloc()
			ctx.nodeAt(containerRef).child = idx
			ctx.nodes.Node(idx).anc = containerRef
			ctx.cursor = idx
			continue
		}

		cur = ctx.nodeAt(ctx.cursor)
		if cur.expectColon() {
			if data[0] != ':' {
				return ctx.fail(SeqMissingColon)
			}
			data = skipWS(data[1:])
			cur.clearExpectColon()
			if len(data) == 0 {
				return true, 0, nil
			}
		}

		b := data[0]
		switch {
		case b == ':':
			return ctx.fail(SeqUnexpectedColon)

		case b == ',':
			cur = ctx.nodeAt(ctx.cursor)
			if cur.ntype == TypeEmpty {
				return ctx.fail(SeqLeadingComma)
			}
			containerRef := cur.anc
			if containerRef == NilIndex {
				return ctx.fail(SeqInternalBug)
			}
			idx := ctx.nodes.Alloc()
			ctx.nodeAt(ctx.cursor).next = idx
			ctx.nodes.Node(idx).anc = containerRef
			ctx.cursor = idx
			data = data[1:]

		case b == '{' || b == '[':
			cur = ctx.nodeAt(ctx.cursor)
			if cur.ntype != TypeEmpty {
				return ctx.fail(SeqUnexpectedContainer)
			}
			if ctx.cursor != RootRef {
				anc := ctx.nodeAt(cur.anc)
				if anc.ntype == TypeObject && !cur.HasName() {
					return ctx.fail(SeqObjectEntryHasNoName)
				}
			}
			if b == '{' {
				cur.setOpen(TypeObject)
			} else {
				cur.setOpen(TypeArray)
			}
			data = data[1:]

		case isCloser(b):
			cur = ctx.nodeAt(ctx.cursor)
			if cur.ntype == TypeEmpty {
				return ctx.fail(SeqEmptyAtClose)
			}
			containerRef := ctx.cursor
			if !cur.isOpen() {
				containerRef = cur.anc
			}
			containerNode := ctx.nodeAt(containerRef)
			want, seq := TypeObject, SeqMismatchedObjectClose
			if b == ']' {
				want, seq = TypeArray, SeqMismatchedArrayClose
			}
			if containerNode.ntype != want || !containerNode.isOpen() {
				return ctx.fail(seq)
			}
			containerNode.clearOpen()
			ctx.cursor = containerRef
			data = data[1:]
			if containerRef == RootRef {
				ctx.closed = true
				return false, countNonWS(data), nil
			}

		case b == '"':
			if ctx.cursor == RootRef {
				return ctx.fail(SeqMustStartWithObjectOrArray)
			}
			if ctx.nodeAt(ctx.cursor).ntype != TypeEmpty {
				return ctx.fail(SeqUnexpectedString)
			}
			ctx.tok.Start(lexString)
			ctx.tokKind = lexString
			rem, lexeme, done := ctx.tok.Feed(data[1:])
			if !done {
				ctx.incomplete = true
				return true, 0, nil
			}
			data = rem
			if perr := ctx.placeLexeme(lexString, lexeme); perr != nil {
				ctx.lastSeq = perr.Seq
				return false, 0, perr
			}

		case b == '-' || isDigit(b):
			if ctx.cursor == RootRef {
				return ctx.fail(SeqMustStartWithObjectOrArray)
			}
			if ctx.nodeAt(ctx.cursor).ntype != TypeEmpty {
				return ctx.fail(SeqUnexpectedNumber)
			}
			ctx.tok.Start(lexNumber)
			ctx.tokKind = lexNumber
			rem, lexeme, done := ctx.tok.Feed(data)
			if !done {
				ctx.incomplete = true
				return true, 0, nil
			}
			data = rem
			if perr := ctx.placeLexeme(lexNumber, lexeme); perr != nil {
				ctx.lastSeq = perr.Seq
				return false, 0, perr
			}

		case isAlpha(b):
			if ctx.cursor == RootRef {
				return ctx.fail(SeqMustStartWithObjectOrArray)
			}
			if ctx.nodeAt(ctx.cursor).ntype != TypeEmpty {
				return ctx.fail(SeqUnexpectedNonStringText)
			}
			ctx.tok.Start(lexLiteral)
			ctx.tokKind = lexLiteral
			rem, lexeme, done := ctx.tok.Feed(data)
			if !done {
				ctx.incomplete = true
				return true, 0, nil
			}
			data = rem
			if perr := ctx.placeLexeme(lexLiteral, lexeme); perr != nil {
				ctx.lastSeq = perr.Seq
				return false, 0, perr
			}

		default:
			return ctx.fail(SeqRandomText)
		}

		if ctx.closed {
			return false, countNonWS(data), nil
		}
	}
}

func (ctx *Context) fail(seq SequenceError) (bool, int, *Error) {
	ctx.lastSeq = seq
	return false, 0, newSeqErr(seq)
}

// placeLexeme applies the placement rules for a completed lexeme:
// strings become either an object-member name or a scalar value depending
// on context, numbers/literals are always values.
func (ctx *Context) placeLexeme(kind lexKind, lexeme []byte) *Error {
	cur := ctx.nodeAt(ctx.cursor)

	switch kind {
	case lexString:
		decoded, uerr := Unescape(lexeme)
		if uerr != nil {
			return uerr
		}
		anc := ctx.nodeAt(cur.anc)
		isValue := anc.ntype == TypeArray || cur.HasName()
		if isValue {
			cur.SetStringHandle(ctx.sstore.Add(decoded))
			return nil
		}
		var h Handle
		if ctx.hash != nil {
			h = ctx.hash.Insert(decoded)
		} else {
			h = ctx.sstore.Add(decoded)
		}
		cur.name = h
		cur.setExpectColon()
		return nil

	case lexNumber:
		anc := ctx.nodeAt(cur.anc)
		if anc.ntype == TypeObject && !cur.HasName() {
			return newSeqErr(SeqObjectEntryHasNoName)
		}
		asInt, asFloat, nk, cerr := ConvertNumber(lexeme)
		if cerr != nil {
			return cerr
		}
		if nk == numberInteger {
			cur.SetInt(asInt)
		} else {
			cur.SetFloat(asFloat)
		}
		return nil

	case lexLiteral:
		anc := ctx.nodeAt(cur.anc)
		if anc.ntype == TypeObject && !cur.HasName() {
			return newSeqErr(SeqObjectEntryHasNoName)
		}
		isNull, boolVal, ok := ConvertLiteral(lexeme)
		if !ok {
			return newSeqErr(SeqBadLiteral)
		}
		if isNull {
			cur.SetNull()
		} else {
			cur.SetBool(boolVal)
		}
		return nil
	}

	return newSeqErr(SeqInternalBug)
}
