package convert

// transform folds a sequence of ParsedBlocks into a single ScriptTree,
// tracking a stack of currently-open parent node ids the same way the
// block parsers track nesting. Headings open or close Section levels to
// match their own level against the number of Sections already open on
// the stack; a level jump greater than one inserts the skipped Sections.
func transform(blocks []ParsedBlock) (*ScriptTree, error) {
	tree := newScriptTree()
	stack := []NodeID{tree.Root()}

	for _, block := range blocks {
		if err := transformBlock(tree, &stack, block); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

func transformBlock(tree *ScriptTree, stack *[]NodeID, block ParsedBlock) error {
	switch block.Kind {
	case BlockTextKind:
		return transformTextBlock(tree, stack, block)
	case BlockHeadingKind:
		return transformHeadingBlock(tree, stack, block)
	case BlockListKind:
		return transformListBlock(tree, stack, block)
	case BlockTableKind:
		return transformTableBlock(tree, stack, block)
	case BlockImageKind:
		return transformImageBlock(tree, stack, block)
	case BlockQuoteKind:
		return transformQuoteBlock(tree, stack, block)
	case BlockCodeKind:
		return transformCodeBlock(tree, stack, block)
	case BlockFunctionKind:
		return transformFunctionBlock(tree, stack, block)
	case BlockHorizontalRuleKind:
		parent := top(*stack)
		tree.registerChild(parent, ScriptHorizontalRule, block.Span)
		return nil
	}
	return nil
}

func top(stack []NodeID) NodeID { return stack[len(stack)-1] }

func transformTextBlock(tree *ScriptTree, stack *[]NodeID, block ParsedBlock) error {
	paragraph := tree.registerChild(top(*stack), ScriptParagraph, block.Span)
	*stack = append(*stack, paragraph)
	transformTextTree(tree, stack, block.Text)
	*stack = (*stack)[:len(*stack)-1]
	return nil
}

func transformHeadingBlock(tree *ScriptTree, stack *[]NodeID, block ParsedBlock) error {
	currentLevel := 1
	for _, id := range *stack {
		if tree.Node(id).Kind == ScriptSection {
			currentLevel++
		}
	}

	level := block.Heading.Level
	switch {
	case level > currentLevel:
		for range level - currentLevel {
			section := tree.registerChild(top(*stack), ScriptSection, block.Span)
			*stack = append(*stack, section)
		}
	case level < currentLevel:
		for range currentLevel - level {
			*stack = (*stack)[:len(*stack)-1]
		}
	}

	heading := tree.registerChild(top(*stack), ScriptHeading, block.Span)
	heading2 := tree.Node(heading)
	heading2.Level = level
	*stack = append(*stack, heading)
	transformTextTree(tree, stack, block.Heading.Content)
	*stack = (*stack)[:len(*stack)-1]
	return nil
}

func transformListBlock(tree *ScriptTree, stack *[]NodeID, block ParsedBlock) error {
	return transformListNode(tree, stack, block.List, block.List.Root(), block.Span)
}

func transformListNode(tree *ScriptTree, stack *[]NodeID, listTree *ListTree, id NodeID, span Span) error {
	node := listTree.Node(id)
	switch node.Kind {
	case ListParent:
		listNode := tree.registerChild(top(*stack), ScriptList, span)
		tree.Node(listNode).Ordered = node.Style == Ordered
		*stack = append(*stack, listNode)
		for _, child := range node.Children {
			if err := transformListNode(tree, stack, listTree, child, span); err != nil {
				return err
			}
		}
		*stack = (*stack)[:len(*stack)-1]
	case ListLeaf:
		item := tree.registerChild(top(*stack), ScriptListItem, span)
		*stack = append(*stack, item)
		transformTextTree(tree, stack, node.Text)
		*stack = (*stack)[:len(*stack)-1]
	}
	return nil
}

func transformTableBlock(tree *ScriptTree, stack *[]NodeID, block ParsedBlock) error {
	table := tree.registerChild(top(*stack), ScriptTable, block.Span)
	*stack = append(*stack, table)

	headerRow := tree.registerChild(table, ScriptTableHeaderRow, block.Span)
	*stack = append(*stack, headerRow)
	for _, cell := range block.Table.Header {
		transformTableCell(tree, stack, cell, block.Span)
	}
	*stack = (*stack)[:len(*stack)-1]

	for _, row := range block.Table.Rows {
		rowID := tree.registerChild(table, ScriptTableRow, block.Span)
		*stack = append(*stack, rowID)
		for _, cell := range row {
			transformTableCell(tree, stack, cell, block.Span)
		}
		*stack = (*stack)[:len(*stack)-1]
	}

	*stack = (*stack)[:len(*stack)-1]
	return nil
}

func transformTableCell(tree *ScriptTree, stack *[]NodeID, cell *TextTree, span Span) {
	cellID := tree.registerChild(top(*stack), ScriptTableCell, span)
	*stack = append(*stack, cellID)
	transformTextTree(tree, stack, cell)
	*stack = (*stack)[:len(*stack)-1]
}

func transformImageBlock(tree *ScriptTree, stack *[]NodeID, block ParsedBlock) error {
	id := tree.registerChild(top(*stack), ScriptImage, block.Span)
	tree.Node(id).Src = block.Image.Src
	*stack = append(*stack, id)
	transformTextTree(tree, stack, block.Image.Label)
	*stack = (*stack)[:len(*stack)-1]
	return nil
}

func transformQuoteBlock(tree *ScriptTree, stack *[]NodeID, block ParsedBlock) error {
	return transformQuoteNode(tree, stack, block.Quote, block.Quote.Root(), block.Span)
}

func transformQuoteNode(tree *ScriptTree, stack *[]NodeID, quoteTree *QuoteTree, id NodeID, span Span) error {
	node := quoteTree.Node(id)
	switch node.Kind {
	case QuoteParent:
		quoteID := tree.registerChild(top(*stack), ScriptQuote, span)
		*stack = append(*stack, quoteID)
		for _, child := range node.Children {
			if err := transformQuoteNode(tree, stack, quoteTree, child, span); err != nil {
				return err
			}
		}
		*stack = (*stack)[:len(*stack)-1]
	case QuoteLeaf:
		transformTextTree(tree, stack, node.Text)
	}
	return nil
}

func transformCodeBlock(tree *ScriptTree, stack *[]NodeID, block ParsedBlock) error {
	id := tree.registerChild(top(*stack), ScriptCode, block.Span)
	node := tree.Node(id)
	node.Language = block.Code.Language
	node.HasLang = block.Code.HasLang
	tree.appendLiteral(id, block.Code.Body, block.Span)
	return nil
}

func transformFunctionBlock(tree *ScriptTree, stack *[]NodeID, block ParsedBlock) error {
	id := tree.registerChild(top(*stack), ScriptFunction, block.Span)
	node := tree.Node(id)
	node.Name = block.Func.Name
	node.Params = block.Func.Params
	return nil
}

func transformTextTree(tree *ScriptTree, stack *[]NodeID, textTree *TextTree) {
	root := textTree.Node(textTree.Root())
	for _, child := range root.Children {
		transformTextNode(tree, stack, textTree, child)
	}
}

func transformTextNode(tree *ScriptTree, stack *[]NodeID, textTree *TextTree, id NodeID) {
	node := textTree.Node(id)
	parent := top(*stack)

	var kind ScriptNodeKind
	switch node.Kind {
	case TextLiteral:
		tree.appendLiteral(parent, node.Literal, node.Span)
		return
	case TextBold:
		kind = ScriptBold
	case TextItalic:
		kind = ScriptItalic
	case TextCode:
		kind = ScriptCode
	case TextLink:
		kind = ScriptLink
	case TextImage:
		kind = ScriptImage
	case TextFunction:
		kind = ScriptFunction
	}

	newID := tree.registerChild(parent, kind, node.Span)
	scriptNode := tree.Node(newID)
	switch node.Kind {
	case TextLink:
		scriptNode.Target = node.Target
	case TextImage:
		scriptNode.Src = node.Src
	case TextFunction:
		scriptNode.Name = node.Name
		scriptNode.Params = node.Params
	}

	*stack = append(*stack, newID)
	for _, child := range node.Children {
		transformTextNode(tree, stack, textTree, child)
	}
	*stack = (*stack)[:len(*stack)-1]
}
