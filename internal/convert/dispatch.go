package convert

import "github.com/connerohnesorge/md2letter/internal/config"

// parseBlock routes a CategorizedBlock to its dedicated parser. Categorization
// is only a hint: when the dedicated parser fails to make sense of the
// block, parseBlock falls back to treating it as plain text, so a wrong
// guess by the categorizer does not by itself abort the conversion; an
// error from that text parse is still returned. cfg may be nil, in which
// case code fence languages are left as written.
func parseBlock(cb CategorizedBlock, cfg *config.Config) (ParsedBlock, error) {
	switch cb.Kind {
	case BlockHeadingKind:
		if pb, err := parseHeadingBlock(cb.Block); err == nil {
			return pb, nil
		}
	case BlockListKind:
		if tree, err := parseListBlock(cb.Block.Src, cb.Block.Span); err == nil {
			return ParsedBlock{Kind: BlockListKind, Span: cb.Block.Span, List: tree}, nil
		}
	case BlockTableKind:
		if table, err := parseTableBlock(cb.Block.Src, cb.Block.Span); err == nil {
			return ParsedBlock{Kind: BlockTableKind, Span: cb.Block.Span, Table: table}, nil
		}
	case BlockImageKind:
		if img, err := parseImageBlock(cb.Block.Src, cb.Block.Span); err == nil {
			return ParsedBlock{Kind: BlockImageKind, Span: cb.Block.Span, Image: img}, nil
		}
	case BlockQuoteKind:
		if tree, err := parseQuoteBlock(cb.Block.Src, cb.Block.Span); err == nil {
			return ParsedBlock{Kind: BlockQuoteKind, Span: cb.Block.Span, Quote: tree}, nil
		}
	case BlockCodeKind:
		if code, err := parseCodeBlock(cb.Block.Src, cb.Block.Span); err == nil {
			if cfg != nil && code.HasLang {
				code.Language = cfg.Normalize(code.Language)
			}
			return ParsedBlock{Kind: BlockCodeKind, Span: cb.Block.Span, Code: code}, nil
		}
	case BlockFunctionKind:
		if fn, err := parseFunctionBlock(cb.Block.Src, cb.Block.Span); err == nil {
			return ParsedBlock{Kind: BlockFunctionKind, Span: cb.Block.Span, Func: fn}, nil
		}
	case BlockHorizontalRuleKind:
		return ParsedBlock{Kind: BlockHorizontalRuleKind, Span: cb.Block.Span}, nil
	}

	return parseTextBlock(cb.Block)
}

func parseHeadingBlock(b RawBlock) (ParsedBlock, error) {
	runes := []rune(b.Src)
	level := 0
	for _, c := range runes {
		if c != '#' {
			break
		}
		level++
	}

	rest := string(runes[min(level+1, len(runes)):])
	textTree, err := parseTextTree(rest, b.Span)
	if err != nil {
		return ParsedBlock{}, err
	}

	return ParsedBlock{
		Kind:    BlockHeadingKind,
		Span:    b.Span,
		Heading: &HeadingBlock{Level: level, Content: textTree},
	}, nil
}

func parseTextBlock(b RawBlock) (ParsedBlock, error) {
	textTree, err := parseTextTree(b.Src, b.Span)
	if err != nil {
		return ParsedBlock{}, err
	}
	return ParsedBlock{Kind: BlockTextKind, Span: b.Span, Text: textTree}, nil
}
