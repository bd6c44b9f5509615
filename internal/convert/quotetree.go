package convert

// QuoteNodeKind distinguishes a nesting container from a leaf of text.
type QuoteNodeKind uint8

const (
	// QuoteParent is a container: the quote root or a nested sub-quote.
	QuoteParent QuoteNodeKind = iota
	// QuoteLeaf carries one accumulated run of same-depth text.
	QuoteLeaf
)

// QuoteNode is a single node in a Quote Tree arena.
type QuoteNode struct {
	ID       NodeID
	Kind     QuoteNodeKind
	Span     Span
	Text     *TextTree // populated for QuoteLeaf
	Children []NodeID  // populated for QuoteParent
}

// QuoteTree is an arena of QuoteNodes rooted at a QuoteParent.
type QuoteTree struct {
	nodes  []*QuoteNode
	rootID NodeID
	gen    idGenerator
}

func newQuoteTree() *QuoteTree {
	t := &QuoteTree{}
	t.rootID = t.registerParent(zeroSpan())
	return t
}

// Root returns the id of the tree's root node.
func (t *QuoteTree) Root() NodeID { return t.rootID }

// Node looks up a node by id.
func (t *QuoteTree) Node(id NodeID) *QuoteNode { return t.nodes[id] }

func (t *QuoteTree) registerParent(span Span) NodeID {
	id := t.gen.nextID()
	t.nodes = append(t.nodes, &QuoteNode{ID: id, Kind: QuoteParent, Span: span})
	return id
}

func (t *QuoteTree) registerLeaf(text *TextTree, span Span) NodeID {
	id := t.gen.nextID()
	t.nodes = append(t.nodes, &QuoteNode{ID: id, Kind: QuoteLeaf, Text: text, Span: span})
	return id
}

func (t *QuoteTree) appendChild(parent, child NodeID) {
	t.nodes[parent].Children = append(t.nodes[parent].Children, child)
}
