package convert

// TextNodeKind enumerates the kinds of node that can appear in a Text Tree.
type TextNodeKind uint8

const (
	// TextRoot is the single root node of every Text Tree.
	TextRoot TextNodeKind = iota
	// TextLiteral holds literal text content.
	TextLiteral
	// TextBold wraps a bold span.
	TextBold
	// TextItalic wraps an italic span.
	TextItalic
	// TextCode wraps a code span.
	TextCode
	// TextLink is a [label](target) construct; its children are the label.
	TextLink
	// TextImage is a ![label](src) construct; its children are the label.
	TextImage
	// TextFunction is a #name(...) construct; it never has children.
	TextFunction
)

// TextNode is a single node in a Text Tree arena.
type TextNode struct {
	ID       NodeID
	Kind     TextNodeKind
	Span     Span
	Literal  string            // TextLiteral content
	Target   string            // TextLink destination
	Src      string            // TextImage source
	Name     string            // TextFunction name
	Params   map[string]string // TextFunction parameters
	Children []NodeID
}

// TextTree is an arena of TextNodes rooted at a single TextRoot node.
// Node ids are issued monotonically and never recycled; the tree is meant
// to be built once by a single parser and then moved to the transformer.
type TextTree struct {
	nodes  []*TextNode
	rootID NodeID
	gen    idGenerator
}

// newTextTree creates an empty tree consisting of only its root node.
func newTextTree() *TextTree {
	t := &TextTree{}
	t.rootID = t.register(TextRoot, zeroSpan())
	return t
}

// Root returns the id of the tree's root node.
func (t *TextTree) Root() NodeID { return t.rootID }

// Node looks up a node by id. It panics if the id is not known to this
// tree, since that would indicate a pipeline bug (ids never cross trees).
func (t *TextTree) Node(id NodeID) *TextNode {
	return t.nodes[id]
}

// IsEmpty reports whether the tree's root has no children at all.
func (t *TextTree) IsEmpty() bool {
	return len(t.nodes[t.rootID].Children) == 0
}

func (t *TextTree) register(kind TextNodeKind, span Span) NodeID {
	id := t.gen.nextID()
	t.nodes = append(t.nodes, &TextNode{ID: id, Kind: kind, Span: span})
	return id
}

// registerChild creates a new node of the given kind as the last child of
// parent and returns its id.
func (t *TextTree) registerChild(parent NodeID, kind TextNodeKind, span Span) NodeID {
	id := t.register(kind, span)
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

// appendLiteral appends a TextLiteral child under parent.
func (t *TextTree) appendLiteral(parent NodeID, literal string, span Span) NodeID {
	id := t.registerChild(parent, TextLiteral, span)
	t.nodes[id].Literal = literal
	return id
}
