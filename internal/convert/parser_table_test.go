package convert

import "testing"

func textTreeLiteral(t *testing.T, tree *TextTree) string {
	t.Helper()
	children := rootChildren(tree)
	if len(children) != 1 || children[0].Kind != TextLiteral {
		t.Fatalf("expected single literal child, got %+v", children)
	}
	return children[0].Literal
}

func TestParseTableSimple(t *testing.T) {
	src := "| Column A | Column B |\n| -------- | -------- |\n| 1        | 2        |\n| 3        | 4        |"
	table, err := parseTableBlock(src, zeroSpan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(table.Header) != 2 {
		t.Fatalf("got %d header cells, want 2", len(table.Header))
	}
	if got := textTreeLiteral(t, table.Header[0]); got != "Column A" {
		t.Fatalf("got header[0] %q", got)
	}
	if got := textTreeLiteral(t, table.Header[1]); got != "Column B" {
		t.Fatalf("got header[1] %q", got)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if got := textTreeLiteral(t, table.Rows[0][0]); got != "1" {
		t.Fatalf("got row1[0] %q", got)
	}
	if got := textTreeLiteral(t, table.Rows[0][1]); got != "2" {
		t.Fatalf("got row1[1] %q", got)
	}
	if got := textTreeLiteral(t, table.Rows[1][0]); got != "3" {
		t.Fatalf("got row2[0] %q", got)
	}
	if got := textTreeLiteral(t, table.Rows[1][1]); got != "4" {
		t.Fatalf("got row2[1] %q", got)
	}
}

func TestParseTableWithFormatting(t *testing.T) {
	src := "| Column *A* | Column *B* |\n| --- | --- |\n| 1        | Some **bold** text |\n| 3        | 4        |"
	table, err := parseTableBlock(src, zeroSpan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	header0 := rootChildren(table.Header[0])
	if len(header0) != 2 || header0[0].Literal != "Column " || header0[1].Kind != TextItalic {
		t.Fatalf("unexpected header0: %+v", header0)
	}

	cell := rootChildren(table.Rows[0][1])
	if len(cell) != 3 || cell[0].Literal != "Some " || cell[1].Kind != TextBold || cell[2].Literal != " text" {
		t.Fatalf("unexpected formatted cell: %+v", cell)
	}
}
