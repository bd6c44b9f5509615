package convert

import "strings"

type tableRowKind uint8

const (
	rowHeader tableRowKind = iota
	rowHeaderSeparator
	rowBody
)

func tableRowKindForIndex(rowIndex int) tableRowKind {
	switch rowIndex {
	case 0:
		return rowHeader
	case 1:
		return rowHeaderSeparator
	default:
		return rowBody
	}
}

// parseTableBlock parses a pipe-delimited table block. The first line is
// the header row, the second is the separator (discarded), and every
// subsequent line is a body row.
func parseTableBlock(src string, span Span) (*TableBlock, error) {
	table := &TableBlock{}

	for rowIndex, line := range strings.Split(src, "\n") {
		lineNumber := span.Start.Line + rowIndex

		startedRow := false
		offset := 1
		var cellBuf []rune

		for _, c := range line {
			switch c {
			case '|':
				if startedRow {
					if err := consumeTableCell(table, &cellBuf, lineNumber, offset, rowIndex); err != nil {
						return nil, err
					}
				} else {
					startedRow = true
				}
			default:
				cellBuf = append(cellBuf, c)
			}
			offset++
		}
	}

	return table, nil
}

func consumeTableCell(table *TableBlock, cellBuf *[]rune, lineNumber, offset, rowIndex int) error {
	kind := tableRowKindForIndex(rowIndex)
	if kind == rowHeaderSeparator {
		*cellBuf = nil
		return nil
	}

	cell, err := createTableCell(*cellBuf, lineNumber, offset)
	if err != nil {
		return err
	}

	switch kind {
	case rowHeader:
		table.Header = append(table.Header, cell)
	case rowBody:
		internalRowIndex := rowIndex - 2
		for len(table.Rows) <= internalRowIndex {
			table.Rows = append(table.Rows, nil)
		}
		table.Rows[internalRowIndex] = append(table.Rows[internalRowIndex], cell)
	}

	*cellBuf = nil
	return nil
}

func createTableCell(value []rune, lineNumber, offset int) (*TextTree, error) {
	trimmed := strings.TrimSpace(string(value))
	cellSpan := Span{
		Start: Position{Line: lineNumber, Column: offset - len(value)},
		End:   Position{Line: lineNumber, Column: offset - (len(value) - len([]rune(trimmed)))},
	}
	return parseTextTree(trimmed, cellSpan)
}
