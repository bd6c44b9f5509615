package convert

// parseTextTree tokenizes src and folds the resulting token stream into a
// Text Tree. Start/End token pairs push and pop a stack of open parent
// node ids, mirroring the way the transformer folds blocks into the
// Script Tree with its own node_stack.
//
// The reference implementation never finished this fold (its TextParser
// is a stub); the algorithm here is new, calibrated against the golden
// end-to-end strings the transformer's own tests expect.
func parseTextTree(src string, span Span) (*TextTree, error) {
	tree := newTextTree()
	stack := []NodeID{tree.Root()}
	top := func() NodeID { return stack[len(stack)-1] }

	tz := newTokenizer(src, span)
	for {
		tok, ok := tz.next()
		if !ok {
			break
		}

		switch tok.Kind {
		case TokenText:
			tree.appendLiteral(top(), tok.Text, tok.Span)

		case TokenBoldStart:
			id := tree.registerChild(top(), TextBold, tok.Span)
			stack = append(stack, id)
		case TokenBoldEnd:
			if err := popTextStack(tree, &stack, TextBold, tok.Span); err != nil {
				return nil, err
			}
		case TokenItalicStart:
			id := tree.registerChild(top(), TextItalic, tok.Span)
			stack = append(stack, id)
		case TokenItalicEnd:
			if err := popTextStack(tree, &stack, TextItalic, tok.Span); err != nil {
				return nil, err
			}
		case TokenCodeStart:
			id := tree.registerChild(top(), TextCode, tok.Span)
			stack = append(stack, id)
		case TokenCodeEnd:
			if err := popTextStack(tree, &stack, TextCode, tok.Span); err != nil {
				return nil, err
			}

		case TokenLink:
			id := tree.registerChild(top(), TextLink, tok.Span)
			node := tree.Node(id)
			node.Target = tok.Target
			tree.appendLiteral(id, tok.Text, tok.Span)

		case TokenImage:
			id := tree.registerChild(top(), TextImage, tok.Span)
			node := tree.Node(id)
			node.Src = tok.Src
			tree.appendLiteral(id, tok.Text, tok.Span)

		case TokenFunction:
			id := tree.registerChild(top(), TextFunction, tok.Span)
			node := tree.Node(id)
			node.Name = tok.Name
			node.Params = tok.Params

		case TokenError:
			return nil, tokenizeError(tok.Message, tok.Span.Start)
		}
	}

	if len(stack) != 1 {
		return nil, tokenizeError("unclosed formatting span", span.End)
	}

	return tree, nil
}

func popTextStack(tree *TextTree, stack *[]NodeID, want TextNodeKind, pos Span) error {
	s := *stack
	if len(s) <= 1 {
		return tokenizeError("formatting span closed without a matching open", pos.Start)
	}
	if tree.Node(s[len(s)-1]).Kind != want {
		return tokenizeError("mismatched formatting close", pos.Start)
	}
	*stack = s[:len(s)-1]
	return nil
}
