package convert

import (
	"bufio"
	"io"
	"strings"
)

// blockSplitter splits a reader's contents into RawBlocks separated by one
// or more blank lines, treating lines inside a fenced code block (delimited
// by a line of three backticks) as never blank for that purpose.
type blockSplitter struct {
	reader *bufio.Reader
	unread *rune

	lastPos Position
	nextPos Position
}

func newBlockSplitter(r io.Reader) *blockSplitter {
	return &blockSplitter{
		reader:  bufio.NewReader(r),
		lastPos: zeroPosition(),
		nextPos: zeroPosition(),
	}
}

func (s *blockSplitter) pushUnread(r rune) {
	s.unread = &r
}

// readNextChar returns the next rune, dropping \r and tracking source
// positions the same way the tokenizer does.
func (s *blockSplitter) readNextChar() (rune, bool) {
	if s.unread != nil {
		r := *s.unread
		s.unread = nil
		if r == '\r' {
			return s.readNextChar()
		}
		return r, true
	}

	r, _, err := s.reader.ReadRune()
	if err != nil {
		return 0, false
	}

	if r == '\r' {
		return s.readNextChar()
	}

	s.lastPos = s.nextPos
	if r == '\n' {
		s.nextPos.Line++
		s.nextPos.Column = 1
	} else {
		s.nextPos.Column++
	}

	return r, true
}

// next returns the next RawBlock, or ok=false once the source is exhausted.
func (s *blockSplitter) next() (RawBlock, bool) {
	startPos := s.lastPos
	endPos := s.nextPos

	var buf strings.Builder
	newlineCount := 0
	consecutiveBackticks := 0
	inCodeBlock := false

	for {
		r, ok := s.readNextChar()
		if !ok {
			if buf.Len() == 0 {
				return RawBlock{}, false
			}
			return RawBlock{Src: buf.String(), Span: Span{Start: startPos, End: endPos}}, true
		}

		switch {
		case r == '\n':
			newlineCount++
			buf.WriteRune(r)
		case r == ' ' || r == '\t':
			buf.WriteRune(r)
		default:
			if newlineCount >= 2 && !inCodeBlock {
				s.pushUnread(r)
				return RawBlock{Src: strings.TrimSpace(buf.String()), Span: Span{Start: startPos, End: endPos}}, true
			}

			if r == '`' {
				if buf.Len() == 0 || consecutiveBackticks > 0 || inCodeBlock {
					consecutiveBackticks++
					if consecutiveBackticks == 3 {
						inCodeBlock = !inCodeBlock
						consecutiveBackticks = 0
					}
				}
			} else {
				consecutiveBackticks = 0
			}

			newlineCount = 0
			endPos = s.nextPos
			buf.WriteRune(r)
		}
	}
}

// splitBlocks reads every RawBlock out of r.
func splitBlocks(r io.Reader) []RawBlock {
	s := newBlockSplitter(r)
	var blocks []RawBlock
	for {
		b, ok := s.next()
		if !ok {
			return blocks
		}
		blocks = append(blocks, b)
	}
}
