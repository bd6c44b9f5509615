package convert

// ScriptNodeKind enumerates every node kind that can appear in the final
// Script Tree, the converter's output document model.
type ScriptNodeKind uint8

const (
	// ScriptRoot is the single root of the Script Tree.
	ScriptRoot ScriptNodeKind = iota
	// ScriptText is literal text content.
	ScriptText
	// ScriptHeading is a heading element; Level holds its original level.
	ScriptHeading
	// ScriptParagraph wraps a text block.
	ScriptParagraph
	// ScriptSection wraps the content nested under a heading.
	ScriptSection
	// ScriptImage is an image element; Src holds its source.
	ScriptImage
	// ScriptQuote is a block quote element, possibly nested.
	ScriptQuote
	// ScriptList is a list element; Ordered distinguishes its style.
	ScriptList
	// ScriptListItem is a single list item.
	ScriptListItem
	// ScriptHorizontalRule is a void element with no children.
	ScriptHorizontalRule
	// ScriptLink is a hyperlink; Target holds its destination.
	ScriptLink
	// ScriptBold wraps a bold span.
	ScriptBold
	// ScriptItalic wraps an italic span.
	ScriptItalic
	// ScriptCode is a code span or block; Language may be empty.
	ScriptCode
	// ScriptTable wraps a header row and zero or more body rows.
	ScriptTable
	// ScriptTableHeaderRow is the first row of a table.
	ScriptTableHeaderRow
	// ScriptTableRow is a body row of a table.
	ScriptTableRow
	// ScriptTableCell is a single cell of a row.
	ScriptTableCell
	// ScriptFunction is a #name(...) construct; Name becomes its tag.
	ScriptFunction
)

// ScriptNode is a single node in the Script Tree arena.
type ScriptNode struct {
	ID       NodeID
	Kind     ScriptNodeKind
	Span     Span
	Literal  string            // ScriptText content
	Level    int               // ScriptHeading level
	Src      string            // ScriptImage source
	Target   string            // ScriptLink destination
	Ordered  bool              // ScriptList style
	Language string            // ScriptCode language, empty if absent
	HasLang  bool              // ScriptCode: whether Language was set
	Name     string            // ScriptFunction name (and output tag)
	Params   map[string]string // ScriptFunction parameters
	Children []NodeID
}

// ScriptTree is the arena backing the converter's final document model.
type ScriptTree struct {
	nodes  []*ScriptNode
	rootID NodeID
	gen    idGenerator
}

func newScriptTree() *ScriptTree {
	t := &ScriptTree{}
	t.rootID = t.register(ScriptRoot, zeroSpan())
	return t
}

// Root returns the id of the tree's root node.
func (t *ScriptTree) Root() NodeID { return t.rootID }

// Node looks up a node by id.
func (t *ScriptTree) Node(id NodeID) *ScriptNode { return t.nodes[id] }

func (t *ScriptTree) register(kind ScriptNodeKind, span Span) NodeID {
	id := t.gen.nextID()
	t.nodes = append(t.nodes, &ScriptNode{ID: id, Kind: kind, Span: span})
	return id
}

func (t *ScriptTree) registerChild(parent NodeID, kind ScriptNodeKind, span Span) NodeID {
	id := t.register(kind, span)
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

func (t *ScriptTree) appendLiteral(parent NodeID, literal string, span Span) NodeID {
	id := t.registerChild(parent, ScriptText, span)
	t.nodes[id].Literal = literal
	return id
}
