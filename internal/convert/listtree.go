package convert

// ListStyle distinguishes ordered from unordered list markers.
type ListStyle uint8

const (
	// Unordered is the style for -, + and * bullets.
	Unordered ListStyle = iota
	// Ordered is the style for "1." style markers.
	Ordered
)

// ListNodeKind distinguishes container nodes from item nodes in a List Tree.
type ListNodeKind uint8

const (
	// ListParent is a container: the list root or a nested sub-list.
	ListParent ListNodeKind = iota
	// ListLeaf is a single item, carrying its own Text Tree.
	ListLeaf
)

// ListNode is a single node in a List Tree arena.
type ListNode struct {
	ID       NodeID
	Kind     ListNodeKind
	Style    ListStyle
	Span     Span
	Text     *TextTree // populated for ListLeaf
	Children []NodeID  // populated for ListParent
}

// ListTree is an arena of ListNodes. The root is always a ListParent with
// Unordered style; real top-level style is carried by the items beneath it.
type ListTree struct {
	nodes  []*ListNode
	rootID NodeID
	gen    idGenerator
}

func newListTree() *ListTree {
	t := &ListTree{}
	t.rootID = t.registerParent(Unordered, zeroSpan())
	return t
}

// Root returns the id of the tree's root node.
func (t *ListTree) Root() NodeID { return t.rootID }

// Node looks up a node by id.
func (t *ListTree) Node(id NodeID) *ListNode { return t.nodes[id] }

func (t *ListTree) registerParent(style ListStyle, span Span) NodeID {
	id := t.gen.nextID()
	t.nodes = append(t.nodes, &ListNode{ID: id, Kind: ListParent, Style: style, Span: span})
	return id
}

func (t *ListTree) registerLeaf(style ListStyle, text *TextTree, span Span) NodeID {
	id := t.gen.nextID()
	t.nodes = append(t.nodes, &ListNode{ID: id, Kind: ListLeaf, Style: style, Text: text, Span: span})
	return id
}

func (t *ListTree) appendChild(parent, child NodeID) {
	t.nodes[parent].Children = append(t.nodes[parent].Children, child)
}
