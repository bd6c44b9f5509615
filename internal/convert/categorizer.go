package convert

// categorize determines which parser a RawBlock belongs to by inspecting
// only its leading syntax. Categorization is a performance optimization,
// not a correctness guarantee: any block whose designated parser later
// fails to make sense of it is expected to fall back to the text parser.
func categorize(block RawBlock) CategorizedBlock {
	src := block.Src
	runes := []rune(src)
	if len(runes) == 0 {
		return CategorizedBlock{Kind: BlockTextKind, Block: block}
	}

	var kind BlockKind
	switch runes[0] {
	case '#':
		switch {
		case isHeading(runes):
			kind = BlockHeadingKind
		case isFunctionBlock(runes):
			kind = BlockFunctionKind
		default:
			kind = BlockTextKind
		}
	case '!':
		if isImage(runes) {
			kind = BlockImageKind
		} else {
			kind = BlockTextKind
		}
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if isOrderedList(runes) {
			kind = BlockListKind
		} else {
			kind = BlockTextKind
		}
	case '-', '+', '*':
		switch {
		case isHorizontalRule(runes, runes[0]):
			kind = BlockHorizontalRuleKind
		case isUnorderedList(runes):
			kind = BlockListKind
		default:
			kind = BlockTextKind
		}
	case '_':
		if isHorizontalRule(runes, runes[0]) {
			kind = BlockHorizontalRuleKind
		} else {
			kind = BlockTextKind
		}
	case '>':
		kind = BlockQuoteKind
	case '|':
		kind = BlockTableKind
	case '`':
		if isCodeBlock(runes) {
			kind = BlockCodeKind
		} else {
			kind = BlockTextKind
		}
	default:
		kind = BlockTextKind
	}

	return CategorizedBlock{Kind: kind, Block: block}
}

func isCodeBlock(runes []rune) bool {
	counter := 0
	for _, c := range runes {
		if c != '`' {
			break
		}
		counter++
	}
	return counter >= 3
}

func isOrderedList(runes []rune) bool {
	if len(runes) < 2 || runes[1] != '.' {
		return false
	}
	return len(runes) >= 3 && runes[2] == ' '
}

func isUnorderedList(runes []rune) bool {
	return len(runes) >= 2 && runes[1] == ' '
}

func isHorizontalRule(runes []rune, marker rune) bool {
	counter := 0
	for _, c := range runes {
		if c != marker {
			break
		}
		counter++
	}
	if counter < 3 {
		return false
	}
	for _, c := range runes[counter:] {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

func isImage(runes []rune) bool {
	if len(runes) < 2 || runes[1] != '[' {
		return false
	}

	count := 2
	for count < len(runes) {
		c := runes[count]
		count++
		if c == ']' {
			break
		}
	}

	for count < len(runes) {
		c := runes[count]
		count++
		if c == '(' {
			break
		}
	}

	mayBeImage := false
	for count < len(runes) {
		c := runes[count]
		count++
		if c == ')' {
			mayBeImage = true
			break
		}
	}

	for _, c := range runes[count:] {
		if c != ' ' && c != '\t' && c != '\n' {
			return false
		}
	}

	return mayBeImage
}

func isFunctionBlock(runes []rune) bool {
	count := 1
	hasName := false
	anticipateParams := false

loop:
	for count < len(runes) {
		c := runes[count]
		count++

		switch c {
		case '(':
			if !hasName {
				return false
			}
			anticipateParams = true
			break loop
		case '\t', '#':
			return false
		case ' ':
			if !hasName {
				return false
			}
			break loop
		default:
			hasName = true
		}
	}

	paramsAreValid := !anticipateParams
	if anticipateParams {
		for count < len(runes) {
			c := runes[count]
			count++
			if c == ')' {
				paramsAreValid = true
				break
			}
		}
	}

	if !paramsAreValid {
		return false
	}

	for _, c := range runes[count:] {
		if c != ' ' && c != '\t' && c != '\n' {
			return false
		}
	}

	return true
}

func isHeading(runes []rune) bool {
	for _, c := range runes[1:] {
		switch c {
		case ' ':
			return true
		case '#':
			continue
		default:
			return false
		}
	}
	return false
}
