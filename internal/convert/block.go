package convert

// RawBlock is a single chunk of source text produced by the block splitter,
// delimited by one or more blank lines (unless inside a fenced code block).
type RawBlock struct {
	Src  string
	Span Span
}

// BlockKind identifies which parser a CategorizedBlock must be routed to.
type BlockKind uint8

const (
	// BlockTextKind is the fallback: a plain paragraph of inline text.
	BlockTextKind BlockKind = iota
	BlockHeadingKind
	BlockListKind
	BlockTableKind
	BlockImageKind
	BlockQuoteKind
	BlockCodeKind
	BlockFunctionKind
	BlockHorizontalRuleKind
)

// CategorizedBlock pairs a RawBlock with the kind its leading syntax
// identifies it as, deferring actual parsing to the matching block parser.
type CategorizedBlock struct {
	Kind  BlockKind
	Block RawBlock
}

// ParsedBlock is the output of a block parser: the kind-specific parsed
// payload (a Text, List or Quote tree, a table, a code body, ...) together
// with the span it was parsed from. The transformer turns it into Script
// Tree nodes.
type ParsedBlock struct {
	Kind    BlockKind
	Span    Span
	Heading *HeadingBlock
	Text    *TextTree
	List    *ListTree
	Table   *TableBlock
	Image   *ImageBlock
	Quote   *QuoteTree
	Code    *CodeBlock
	Func    *FunctionBlock
}

// HeadingBlock carries a heading's level and its inline content.
type HeadingBlock struct {
	Level   int
	Content *TextTree
}

// CodeBlock carries a fenced code block's language tag, if any, and its
// verbatim body.
type CodeBlock struct {
	Language string
	HasLang  bool
	Body     string
}

// ImageBlock carries a standalone block-level image's label and source.
type ImageBlock struct {
	Label *TextTree
	Src   string
}

// FunctionBlock carries a block-level #name(...) construct's name and
// parameters.
type FunctionBlock struct {
	Name   string
	Params map[string]string
}

// TableBlock carries a parsed table's header and body rows, each row a
// slice of per-cell Text Trees.
type TableBlock struct {
	Header []*TextTree
	Rows   [][]*TextTree
}
