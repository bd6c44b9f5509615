package convert

const maxPositionHistory = 100

// positionUpdateKind tags how one readNext call changed offsetPos, so
// markUnconsumed can exactly reverse it.
type positionUpdateKind uint8

const (
	updateColumn positionUpdateKind = iota
	updateNewline
	updateIgnore
)

type positionUpdate struct {
	kind      positionUpdateKind
	oldColumn int // only meaningful for updateNewline
}

// futureToken records a token kind already determined to occur at a given
// rune offset, produced ahead of time by findFormattingPair.
type futureToken struct {
	kind   TokenKind
	offset int
}

// tokenizer turns one block's source into a flat stream of inline Tokens.
// It is grounded on the reference implementation's tokenizer: a
// single-pass, pull-based scanner that occasionally looks ahead and
// rewinds by exactly one rune, using a bounded history of position deltas
// to make that rewind exact even across line boundaries.
type tokenizer struct {
	runes []rune
	start Position // position of the first rune of the block

	offset    int // index of the last rune consumed by readNext, -1 before the first read
	offsetPos Position

	history []positionUpdate

	inCodeEmphasis   bool
	nextEndsCodeSpan bool
	futureClosing    []futureToken

	errored bool // set once a TokenError has been produced; the stream ends there
}

func newTokenizer(src string, span Span) *tokenizer {
	return &tokenizer{
		runes:     []rune(src),
		start:     span.Start,
		offset:    -1,
		offsetPos: span.Start,
	}
}

func (tz *tokenizer) readAt(offset int) (rune, bool) {
	if offset < 0 || offset >= len(tz.runes) {
		return 0, false
	}
	return tz.runes[offset], true
}

func (tz *tokenizer) pushHistory(u positionUpdate) {
	tz.history = append(tz.history, u)
	if len(tz.history) > maxPositionHistory {
		tz.history = tz.history[1:]
	}
}

// readNext consumes and returns the next rune, advancing offset and
// offsetPos. \r is silently dropped, matching the splitter's own rule.
func (tz *tokenizer) readNext() (rune, bool) {
	tz.offset++
	r, ok := tz.readAt(tz.offset)
	if !ok {
		return 0, false
	}

	if r == '\r' {
		tz.pushHistory(positionUpdate{kind: updateIgnore})
		return tz.readNext()
	}

	if r == '\n' {
		tz.pushHistory(positionUpdate{kind: updateNewline, oldColumn: tz.offsetPos.Column})
		tz.offsetPos.Line++
		tz.offsetPos.Column = 1
	} else {
		tz.pushHistory(positionUpdate{kind: updateColumn})
		tz.offsetPos.Column++
	}

	return r, true
}

// markUnconsumed undoes exactly one prior readNext call.
func (tz *tokenizer) markUnconsumed() {
	tz.offset--
	if len(tz.history) == 0 {
		panic("convert: tokenizer rewind with no history")
	}
	last := tz.history[len(tz.history)-1]
	tz.history = tz.history[:len(tz.history)-1]

	switch last.kind {
	case updateNewline:
		tz.offsetPos.Line--
		tz.offsetPos.Column = last.oldColumn
	case updateColumn:
		tz.offsetPos.Column--
	case updateIgnore:
	}
}

func (tz *tokenizer) ignoreNextChars(count int) {
	for range count {
		tz.readNext()
	}
}

// lookAhead peeks `count` runes past the last consumed one, without
// consuming anything.
func (tz *tokenizer) lookAhead(count int) (rune, bool) {
	return tz.readAt(tz.offset + count)
}

// findNextCharMatching scans forward from startAt (relative to the
// current offset) for c, returning the count at which lookAhead(count+1)
// is c if found.
func (tz *tokenizer) findNextCharMatching(c rune, startAt int) (int, bool) {
	count := startAt
	for {
		next, ok := tz.lookAhead(count + 1)
		if !ok {
			return 0, false
		}
		if next == c {
			return count, true
		}
		count++
	}
}

type formatPrecedence uint8

const (
	precedenceNone formatPrecedence = iota
	precedenceBold
	precedenceItalic
)

// findFormattingPair decides, from the current '*' position, the complete
// set of start/end tokens for one outer bold/italic/bold-italic span,
// including any nested pair discovered along the way. It performs no
// consuming reads; the scan is driven by lookahead counts relative to
// tz.offset, and the returned tokens carry absolute rune offsets.
// Returns ok=false when no closing run exists, meaning the '*' collapses
// to literal text.
func (tz *tokenizer) findFormattingPair() ([]futureToken, bool) {
	next1, ok1 := tz.lookAhead(1)
	next2, ok2 := tz.lookAhead(2)
	if !ok1 || !ok2 {
		return nil, false
	}

	isItalic := true
	isBold := false
	if next1 == '*' {
		isBold = true
		if next2 != '*' {
			isItalic = false
		}
	}

	var result []futureToken
	var precedence formatPrecedence
	switch {
	case isBold && isItalic:
		precedence = precedenceNone
	case isBold:
		result = append(result, futureToken{kind: TokenBoldStart, offset: tz.offset})
		precedence = precedenceBold
	case isItalic:
		result = append(result, futureToken{kind: TokenItalicStart, offset: tz.offset})
		precedence = precedenceItalic
	}

	inCodeEmphasis := false
	ignoreNextStar := false
	// Start scanning at the first rune after the opening run of one, two
	// or three stars.
	count := 0
	switch {
	case isBold && isItalic:
		count = 2
	case isBold:
		count = 1
	}
	for {
		next, ok := tz.lookAhead(count + 1)
		if !ok {
			return nil, false
		}

		if inCodeEmphasis {
			if next == '`' {
				inCodeEmphasis = false
			}
			count++
			continue
		}

		switch next {
		case '\\':
			ignoreNextStar = true
		case '`':
			if _, found := tz.findNextCharMatching('`', count+1); found {
				inCodeEmphasis = true
			}
		case '*':
			if ignoreNextStar {
				ignoreNextStar = false
				count++
				continue
			}

			switch {
			case isItalic && isBold:
				done, newCount := tz.resolveAmbiguousClose(&result, &precedence, &isBold, &isItalic, count)
				count = newCount
				if done {
					return result, true
				}
			case isItalic:
				charAfter, hasAfter := tz.lookAhead(count + 2)
				if hasAfter && charAfter == '*' {
					isBold = true
					count++
					result = append(result, futureToken{kind: TokenBoldStart, offset: tz.offset + count + 1})
				} else {
					result = append(result, futureToken{kind: TokenItalicEnd, offset: tz.offset + count + 1})
					return result, true
				}
			case isBold:
				charAfter, hasAfter := tz.lookAhead(count + 2)
				isItalicOpening := !hasAfter || charAfter != '*'
				if isItalicOpening {
					isItalic = true
					result = append(result, futureToken{kind: TokenItalicStart, offset: tz.offset + count + 1})
				} else {
					result = append(result, futureToken{kind: TokenBoldEnd, offset: tz.offset + count + 1})
					return result, true
				}
			}
		default:
			ignoreNextStar = false
		}

		count++
	}
}

// resolveAmbiguousClose handles the "***" case: both bold and italic are
// open and the next star run must be a close of one or both. It mutates
// result/precedence/isBold in place and reports whether the outer pair is
// now fully resolved (in which case the caller should return immediately).
func (tz *tokenizer) resolveAmbiguousClose(
	result *[]futureToken,
	precedence *formatPrecedence,
	isBold *bool,
	isItalic *bool,
	count int,
) (done bool, nextCount int) {
	next1, _ := tz.lookAhead(count + 2)
	next2, hasNext2 := tz.lookAhead(count + 3)

	if next1 != '*' {
		*isItalic = false
		*result = append(*result, futureToken{kind: TokenItalicEnd, offset: tz.offset + count + 1})
		if *precedence == precedenceNone {
			*result = append([]futureToken{{kind: TokenBoldStart, offset: tz.offset}}, *result...)
			*result = insertAt(*result, 1, futureToken{kind: TokenItalicStart, offset: tz.offset + 2})
			*precedence = precedenceBold
		}
		return false, count
	}

	*isBold = false
	count++ // the extra star just seen belongs to this close run

	if hasNext2 && next2 == '*' {
		switch *precedence {
		case precedenceBold:
			*result = append(*result,
				futureToken{kind: TokenItalicEnd, offset: tz.offset + count},
				futureToken{kind: TokenBoldEnd, offset: tz.offset + count + 1},
			)
		case precedenceItalic:
			*result = append(*result,
				futureToken{kind: TokenBoldEnd, offset: tz.offset + count + 1},
				futureToken{kind: TokenItalicEnd, offset: tz.offset + count + 2},
			)
		case precedenceNone:
			*result = append(*result, futureToken{kind: TokenBoldEnd, offset: tz.offset + count + 1})
			*result = append([]futureToken{{kind: TokenItalicStart, offset: tz.offset}}, *result...)
			*result = append(*result, futureToken{kind: TokenItalicEnd, offset: tz.offset + count + 2})
		}
		return true, count
	}

	*result = append(*result, futureToken{kind: TokenBoldEnd, offset: tz.offset + count})
	if *precedence == precedenceNone {
		*result = append([]futureToken{{kind: TokenItalicStart, offset: tz.offset}}, *result...)
		*result = insertAt(*result, 1, futureToken{kind: TokenBoldStart, offset: tz.offset + 2})
		*precedence = precedenceItalic
	}
	return false, count
}

func insertAt(s []futureToken, idx int, v futureToken) []futureToken {
	s = append(s, futureToken{})
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

// next produces the next inline Token, or ok=false at end of input.
func (tz *tokenizer) next() (Token, bool) {
	if tz.errored {
		return Token{}, false
	}
	startPos := tz.offsetPos
	var buf []rune
	treatNextAsText := false

	for {
		r, ok := tz.readNext()
		if !ok {
			if len(buf) == 0 {
				return Token{}, false
			}
			return Token{Kind: TokenText, Text: string(buf), Span: Span{Start: startPos, End: tz.offsetPos}}, true
		}

		if treatNextAsText {
			treatNextAsText = false
			buf = append(buf, r)
			continue
		}

		if tz.inCodeEmphasis {
			if tok, done := tz.nextInCodeEmphasis(r, startPos, &buf); done {
				return tok, true
			}
			continue
		}

		switch r {
		case '\\':
			treatNextAsText = true
		case ' ', '\t':
			if len(buf) == 0 || buf[len(buf)-1] != ' ' {
				buf = append(buf, ' ')
			}
		case '\n':
			if len(buf) == 0 || buf[len(buf)-1] != ' ' {
				buf = append(buf, ' ')
			}
		case '#':
			if tok, handled := tz.lexFunction(startPos, buf); handled {
				return tok, true
			}
			buf = append(buf, r)
		case '!':
			if tok, handled := tz.lexImage(startPos, &buf); handled {
				return tok, true
			}
		case '[':
			if tok, handled := tz.lexLink(startPos, &buf); handled {
				return tok, true
			}
		case '*':
			if tok, handled := tz.lexStar(startPos, &buf); handled {
				return tok, true
			}
		case '`':
			if tok, handled := tz.lexBacktick(startPos, &buf); handled {
				return tok, true
			}
		default:
			buf = append(buf, r)
		}
	}
}

func (tz *tokenizer) nextInCodeEmphasis(r rune, startPos Position, buf *[]rune) (Token, bool) {
	if tz.nextEndsCodeSpan {
		tz.nextEndsCodeSpan = false
		tz.inCodeEmphasis = false
		return Token{Kind: TokenCodeEnd, Span: Span{Start: startPos, End: tz.offsetPos}}, true
	}

	if r == '`' {
		tz.nextEndsCodeSpan = true
		tz.markUnconsumed()
		return Token{Kind: TokenText, Text: string(*buf), Span: Span{Start: startPos, End: tz.offsetPos}}, true
	}

	*buf = append(*buf, r)
	return Token{}, false
}

// lexFunction handles '#name(...)'. The bool return reports whether a
// token was produced (either flushed Text or the Function itself); the
// caller always returns immediately when handled is true.
func (tz *tokenizer) lexFunction(startPos Position, buf []rune) (Token, bool) {
	count := 1
	var name []rune
	for {
		r, ok := tz.lookAhead(count)
		if !ok || r == '(' {
			break
		}
		if isSpaceRune(r) || r == '#' {
			return Token{}, false
		}
		name = append(name, r)
		count++
	}
	if len(name) == 0 {
		return Token{}, false
	}
	nextR, nextOK := tz.lookAhead(count)
	if !nextOK || nextR != '(' {
		return Token{}, false
	}

	count++
	params, count := tz.lexParams(count)

	if len(buf) > 0 {
		tz.markUnconsumed()
		return Token{Kind: TokenText, Text: string(buf), Span: Span{Start: startPos, End: tz.offsetPos}}, true
	}

	tz.ignoreNextChars(count)
	return Token{
		Kind:   TokenFunction,
		Name:   string(name),
		Params: params,
		Span:   Span{Start: startPos, End: tz.offsetPos},
	}, true
}

// lexParams scans "key: value, key: value, ..." up to and including the
// closing ')', starting at the given lookahead offset. Returns the parsed
// map and the lookahead offset of the closing ')'.
func (tz *tokenizer) lexParams(start int) (map[string]string, int) {
	params := map[string]string{}
	var name, value []rune
	inName := true
	count := start

	flushOnClose := func() {
		n := trimRunes(name)
		if len(n) > 0 {
			params[string(n)] = string(trimRunes(value))
		}
	}
	flushOnComma := func() {
		v := trimRunes(value)
		if len(v) > 0 {
			params[string(trimRunes(name))] = string(v)
		}
	}

	for {
		r, ok := tz.lookAhead(count)
		if !ok {
			break
		}
		switch r {
		case ')':
			flushOnClose()
			return params, count
		case ',':
			flushOnComma()
			name = nil
			value = nil
			inName = true
		case ':':
			if inName {
				inName = false
			} else {
				value = append(value, r)
			}
		default:
			if inName {
				name = append(name, r)
			} else {
				value = append(value, r)
			}
		}
		count++
	}
	return params, count
}

func trimRunes(rs []rune) []rune {
	start := 0
	for start < len(rs) && isSpaceRune(rs[start]) {
		start++
	}
	end := len(rs)
	for end > start && isSpaceRune(rs[end-1]) {
		end--
	}
	return rs[start:end]
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// lexImage handles '![label](src)'.
func (tz *tokenizer) lexImage(startPos Position, buf *[]rune) (Token, bool) {
	next, ok := tz.lookAhead(1)
	if !ok || next != '[' {
		*buf = append(*buf, '!')
		return Token{}, false
	}

	count := 2
	var label []rune
	for {
		r, ok := tz.lookAhead(count)
		if !ok || r == ']' {
			break
		}
		label = append(label, r)
		count++
	}
	if len(label) == 0 {
		*buf = append(*buf, '!')
		return Token{}, false
	}

	open, hasOpen := tz.lookAhead(count + 1)
	if !hasOpen || open != '(' {
		*buf = append(*buf, '!')
		return Token{}, false
	}
	count += 2

	var src []rune
	for {
		r, ok := tz.lookAhead(count)
		if !ok || r == ')' {
			break
		}
		src = append(src, r)
		count++
	}
	if len(src) == 0 {
		*buf = append(*buf, '!')
		return Token{}, false
	}

	if len(*buf) > 0 {
		tz.markUnconsumed()
		return Token{Kind: TokenText, Text: string(*buf), Span: Span{Start: startPos, End: tz.offsetPos}}, true
	}

	tz.ignoreNextChars(count)
	return Token{
		Kind: TokenImage,
		Text: string(label),
		Src:  string(src),
		Span: Span{Start: startPos, End: tz.offsetPos},
	}, true
}

// lexLink handles '[label](target)'.
func (tz *tokenizer) lexLink(startPos Position, buf *[]rune) (Token, bool) {
	count := 1
	var label []rune
	for {
		r, ok := tz.lookAhead(count)
		if !ok || r == ']' {
			break
		}
		label = append(label, r)
		count++
	}
	if len(label) == 0 {
		*buf = append(*buf, '[')
		return Token{}, false
	}

	open, hasOpen := tz.lookAhead(count + 1)
	if !hasOpen || open != '(' {
		*buf = append(*buf, '[')
		return Token{}, false
	}
	count += 2

	var target []rune
	for {
		r, ok := tz.lookAhead(count)
		if !ok || r == ')' {
			break
		}
		target = append(target, r)
		count++
	}
	if len(target) == 0 {
		*buf = append(*buf, '[')
		return Token{}, false
	}

	if len(*buf) > 0 {
		tz.markUnconsumed()
		return Token{Kind: TokenText, Text: string(*buf), Span: Span{Start: startPos, End: tz.offsetPos}}, true
	}

	tz.ignoreNextChars(count)
	return Token{
		Kind:   TokenLink,
		Text:   string(label),
		Target: string(target),
		Span:   Span{Start: startPos, End: tz.offsetPos},
	}, true
}

// lexStar handles a single '*' encountered outside a code emphasis run,
// dispatching to the formatting-pair resolver or a previously scheduled
// future token.
func (tz *tokenizer) lexStar(startPos Position, buf *[]rune) (Token, bool) {
	offset := tz.offset
	for i, ft := range tz.futureClosing {
		if ft.offset != offset {
			continue
		}

		if len(*buf) > 0 {
			tz.markUnconsumed()
			return Token{Kind: TokenText, Text: string(*buf), Span: Span{Start: startPos, End: tz.offsetPos}}, true
		}

		tz.futureClosing = append(tz.futureClosing[:i], tz.futureClosing[i+1:]...)
		if ft.kind == TokenBoldEnd {
			tz.ignoreNextChars(1)
		}
		return Token{Kind: ft.kind, Span: Span{Start: startPos, End: tz.offsetPos}}, true
	}

	future, ok := tz.findFormattingPair()
	if !ok {
		*buf = append(*buf, '*')
		return Token{}, false
	}

	if len(*buf) > 0 {
		tz.markUnconsumed()
		return Token{Kind: TokenText, Text: string(*buf), Span: Span{Start: startPos, End: tz.offsetPos}}, true
	}

	isBold := future[0].kind == TokenBoldStart
	tz.futureClosing = append(tz.futureClosing, future[1:]...)

	if isBold {
		tz.ignoreNextChars(1)
		return Token{Kind: TokenBoldStart, Span: Span{Start: startPos, End: tz.offsetPos}}, true
	}
	return Token{Kind: TokenItalicStart, Span: Span{Start: startPos, End: tz.offsetPos}}, true
}

// lexBacktick handles the opening backtick of a code span.
func (tz *tokenizer) lexBacktick(startPos Position, buf *[]rune) (Token, bool) {
	if len(*buf) > 0 {
		tz.markUnconsumed()
		return Token{Kind: TokenText, Text: string(*buf), Span: Span{Start: startPos, End: tz.offsetPos}}, true
	}

	if _, found := tz.findNextCharMatching('`', 0); !found {
		tz.errored = true
		return Token{
			Kind:    TokenError,
			Message: "could not find closing backtick",
			Span:    Span{Start: startPos, End: tz.offsetPos},
		}, true
	}
	tz.inCodeEmphasis = true
	return Token{Kind: TokenCodeStart, Span: Span{Start: startPos, End: tz.offsetPos}}, true
}
