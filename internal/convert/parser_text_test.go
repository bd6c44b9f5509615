package convert

import "testing"

func mustParseTextTree(t *testing.T, src string) *TextTree {
	t.Helper()
	tree, err := parseTextTree(src, zeroSpan())
	if err != nil {
		t.Fatalf("parseTextTree(%q): %v", src, err)
	}
	return tree
}

func rootChildren(tree *TextTree) []*TextNode {
	root := tree.Node(tree.Root())
	out := make([]*TextNode, len(root.Children))
	for i, id := range root.Children {
		out[i] = tree.Node(id)
	}
	return out
}

func TestParseTextTreeTrivial(t *testing.T) {
	tree := mustParseTextTree(t, "This is a paragraph.")
	children := rootChildren(tree)
	if len(children) != 1 {
		t.Fatalf("got %d children, want 1", len(children))
	}
	if children[0].Kind != TextLiteral || children[0].Literal != "This is a paragraph." {
		t.Fatalf("unexpected child: %+v", children[0])
	}
}

func TestParseTextTreeBoldAndItalic(t *testing.T) {
	tree := mustParseTextTree(t, "This is a **crazy** [heading](https://example.com)\nwith `multiple` *lines*!!!")
	children := rootChildren(tree)

	want := []TextNodeKind{
		TextLiteral, TextBold, TextLiteral, TextLink,
		TextLiteral, TextCode, TextLiteral, TextItalic, TextLiteral,
	}
	if len(children) != len(want) {
		t.Fatalf("got %d children, want %d: %+v", len(children), len(want), children)
	}
	for i, k := range want {
		if children[i].Kind != k {
			t.Fatalf("child %d: got kind %v, want %v", i, children[i].Kind, k)
		}
	}

	if children[0].Literal != "This is a " {
		t.Fatalf("got literal %q", children[0].Literal)
	}

	boldChildren := []*TextNode{}
	for _, id := range children[1].Children {
		boldChildren = append(boldChildren, tree.Node(id))
	}
	if len(boldChildren) != 1 || boldChildren[0].Literal != "crazy" {
		t.Fatalf("unexpected bold children: %+v", boldChildren)
	}

	link := children[3]
	if link.Target != "https://example.com" {
		t.Fatalf("got link target %q", link.Target)
	}
	linkLabel := tree.Node(link.Children[0])
	if linkLabel.Literal != "heading" {
		t.Fatalf("got link label %q", linkLabel.Literal)
	}

	code := children[5]
	codeText := tree.Node(code.Children[0])
	if codeText.Literal != "multiple" {
		t.Fatalf("got code text %q", codeText.Literal)
	}
}

func TestParseTextTreeFunction(t *testing.T) {
	tree := mustParseTextTree(t, "Hello #note(kind: warning) world")
	children := rootChildren(tree)
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3: %+v", len(children), children)
	}
	if children[1].Kind != TextFunction || children[1].Name != "note" {
		t.Fatalf("unexpected function node: %+v", children[1])
	}
	if children[1].Params["kind"] != "warning" {
		t.Fatalf("unexpected params: %v", children[1].Params)
	}
	if len(children[1].Children) != 0 {
		t.Fatalf("function node should have no children, got %v", children[1].Children)
	}
}

func TestParseTextTreeImage(t *testing.T) {
	tree := mustParseTextTree(t, "![alt text](src.png)")
	children := rootChildren(tree)
	if len(children) != 1 || children[0].Kind != TextImage {
		t.Fatalf("unexpected children: %+v", children)
	}
	if children[0].Src != "src.png" {
		t.Fatalf("got src %q", children[0].Src)
	}
	label := tree.Node(children[0].Children[0])
	if label.Literal != "alt text" {
		t.Fatalf("got label %q", label.Literal)
	}
}

func TestParseTextTreeUnmatchedStarFallsBackToLiteral(t *testing.T) {
	tree := mustParseTextTree(t, "*never closed")
	children := rootChildren(tree)
	if len(children) != 1 || children[0].Kind != TextLiteral {
		t.Fatalf("unexpected children: %+v", children)
	}
	if children[0].Literal != "*never closed" {
		t.Fatalf("got literal %q", children[0].Literal)
	}
}
