package convert

import "strings"

type indentedQuoteLine struct {
	line       string
	lineNumber int
	indent     int
	offset     int
}

// parseQuoteBlock parses a block already categorized as a quote into a
// QuoteTree. Quote depth is the count of '>' characters seen before the
// first non-marker, non-whitespace character on a line; runs of same-depth
// lines are joined with a single space before being handed to the text
// parser. Depth increases push exactly one new nesting level regardless of
// how large the jump is; depth decreases pop back to the matching level.
func parseQuoteBlock(src string, span Span) (*QuoteTree, error) {
	lines, err := findIndentedQuoteLines(src, span)
	if err != nil {
		return nil, err
	}

	tree := newQuoteTree()
	parentIDs := []NodeID{tree.Root()}
	var indents []int

	var buffer strings.Builder
	var startLine, startOffset int

	consume := func(parent NodeID, line indentedQuoteLine) error {
		if buffer.Len() == 0 {
			return nil
		}
		textSpan := Span{
			Start: Position{Line: startLine, Column: startOffset + 1},
			End:   Position{Line: line.lineNumber, Column: line.offset + 1 + len([]rune(line.line))},
		}
		textTree, err := parseTextTree(buffer.String(), textSpan)
		if err != nil {
			return err
		}
		leaf := tree.registerLeaf(textTree, textSpan)
		tree.appendChild(parent, leaf)
		buffer.Reset()
		return nil
	}

	for i, line := range lines {
		if len(indents) == 0 {
			indents = append(indents, line.indent)
			startLine = line.lineNumber
			startOffset = line.offset
		}

		currentParent := parentIDs[len(parentIDs)-1]
		currentIndent := indents[len(indents)-1]

		switch {
		case currentIndent == line.indent:
			if buffer.Len() > 0 {
				buffer.WriteByte(' ')
			}
			buffer.WriteString(line.line)
		case currentIndent < line.indent:
			if err := consume(currentParent, line); err != nil {
				return nil, err
			}
			newParent := tree.registerParent(span)
			tree.appendChild(currentParent, newParent)
			parentIDs = append(parentIDs, newParent)
			indents = append(indents, line.indent)
			currentParent = newParent

			buffer.WriteString(line.line)
			startLine = line.lineNumber
			startOffset = line.offset
		default:
			if err := consume(currentParent, line); err != nil {
				return nil, err
			}
			for len(indents) > 0 && indents[len(indents)-1] > line.indent {
				indents = indents[:len(indents)-1]
				parentIDs = parentIDs[:len(parentIDs)-1]
			}
			currentParent = parentIDs[len(parentIDs)-1]

			buffer.WriteString(line.line)
			startLine = line.lineNumber
			startOffset = line.offset
		}

		if i == len(lines)-1 {
			if err := consume(currentParent, line); err != nil {
				return nil, err
			}
		}
	}

	return tree, nil
}

func findIndentedQuoteLines(src string, span Span) ([]indentedQuoteLine, error) {
	var result []indentedQuoteLine
	lineNumber := span.Start.Line

	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) == "" {
			lineNumber++
			continue
		}
		runes := []rune(line)
		indent := 0
		offset := 0

		for _, c := range runes {
			switch c {
			case '\t', ' ':
			case '>':
				indent++
			default:
				if indent == 0 {
					return nil, parseError(
						"no quote line start character '>' found",
						Position{Line: lineNumber, Column: offset + 1})
				}
				goto done
			}
			offset++
		}
	done:

		result = append(result, indentedQuoteLine{
			line:       string(runes[offset:]),
			lineNumber: lineNumber,
			indent:     indent,
			offset:     offset,
		})
		lineNumber++
	}

	return result, nil
}
