package convert

import "strings"

type indentKind uint8

const (
	indentZero indentKind = iota
	indentTab
	indentSpace
)

type listIndent struct {
	kind  indentKind
	count int
}

func (i listIndent) equal(o listIndent) bool { return i.kind == o.kind && i.count == o.count }

type listItemSrc struct {
	indent    listIndent
	isOrdered bool
	content   string
	span      Span
}

// parseListBlock parses a block already categorized as a list into a
// ListTree, following the reference implementation's line-by-line item
// detection with indent tracked separately for tabs and spaces (mixing the
// two within one item's indentation is an error).
func parseListBlock(src string, span Span) (*ListTree, error) {
	items, err := findListItems(src, span)
	if err != nil {
		return nil, err
	}

	tree := newListTree()
	parentStack := []NodeID{tree.Root()}
	requiredIndents := []listIndent{{kind: indentZero}}

	for _, item := range items {
		parentID := parentStack[len(parentStack)-1]
		requiredForLevel := requiredIndents[len(parentStack)-1]

		style := Unordered
		if item.isOrdered {
			style = Ordered
		}

		textTree, err := parseTextTree(item.content, item.span)
		if err != nil {
			return nil, err
		}

		switch {
		case item.indent.equal(requiredForLevel):
			leaf := tree.registerLeaf(style, textTree, item.span)
			tree.appendChild(parentID, leaf)
		case item.indent.count > requiredForLevel.count:
			newParent := tree.registerParent(style, item.span)
			tree.appendChild(parentID, newParent)
			parentStack = append(parentStack, newParent)
			requiredIndents = append(requiredIndents, item.indent)

			leaf := tree.registerLeaf(style, textTree, item.span)
			tree.appendChild(newParent, leaf)
		default:
			for len(parentStack) > 1 && requiredIndents[len(requiredIndents)-1].count > item.indent.count {
				requiredIndents = requiredIndents[:len(requiredIndents)-1]
				parentStack = parentStack[:len(parentStack)-1]
			}
			newParent := parentStack[len(parentStack)-1]

			leaf := tree.registerLeaf(style, textTree, item.span)
			tree.appendChild(newParent, leaf)
		}
	}

	return tree, nil
}

func findListItems(src string, span Span) ([]listItemSrc, error) {
	var items []listItemSrc
	lines := strings.Split(src, "\n")

	for index, line := range lines {
		lineNumber := span.Start.Line + index

		isNew, indent, symbolLen, isOrdered, err := isStartOfNewListItem(line, lineNumber)
		if err != nil {
			return nil, err
		}

		if isNew {
			runes := []rune(line)
			content := string(runes[min(indent.count+symbolLen+1, len(runes)):])
			items = append(items, listItemSrc{
				indent:    indent,
				isOrdered: isOrdered,
				content:   content,
				span: Span{
					Start: Position{Line: lineNumber, Column: 1},
					End:   Position{Line: lineNumber, Column: len(runes) + 1},
				},
			})
			continue
		}

		if len(items) == 0 {
			continue
		}
		last := &items[len(items)-1]
		if strings.TrimSpace(line) != "" {
			last.content += " " + line
		}
		last.span.End = Position{Line: lineNumber, Column: len([]rune(line)) + 1}
	}

	return items, nil
}

// isStartOfNewListItem scans one line's leading indentation and marker,
// reporting whether it begins a new list item.
func isStartOfNewListItem(line string, lineNumber int) (isNew bool, indent listIndent, symbolLen int, isOrdered bool, err error) {
	runes := []rune(line)
	indent = listIndent{kind: indentZero}

	for i, c := range runes {
		switch c {
		case '\t':
			switch indent.kind {
			case indentZero:
				indent = listIndent{kind: indentTab, count: 1}
			case indentTab:
				indent.count++
			case indentSpace:
				return false, indent, 0, false, parseError(
					"mixed tab and space in list item indentation", Position{Line: lineNumber, Column: 1})
			}
		case ' ':
			switch indent.kind {
			case indentZero:
				indent = listIndent{kind: indentSpace, count: 1}
			case indentSpace:
				indent.count++
			case indentTab:
				return false, indent, 0, false, parseError(
					"mixed tab and space in list item indentation", Position{Line: lineNumber, Column: 1})
			}
		default:
			isUnordered := c == '-' || c == '*' || c == '+'
			isDigitMarker := c >= '0' && c <= '9' && i+1 < len(runes) && runes[i+1] == '.'

			var symbol string
			switch {
			case isUnordered:
				symbol = string(c)
			case isDigitMarker:
				symbol = string(runes[i : i+2])
			}

			if symbol == "" {
				return false, indent, 0, false, nil
			}

			followedBySpace := i+len([]rune(symbol)) < len(runes) && runes[i+len([]rune(symbol))] == ' '
			return followedBySpace, indent, len([]rune(symbol)), isDigitMarker, nil
		}
	}

	return false, indent, 0, false, nil
}
