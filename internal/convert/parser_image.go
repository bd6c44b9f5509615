package convert

import "strings"

// parseImageBlock parses a block-level '![label](src)' construct. The
// label supports nested, non-escaped square brackets (counted so a label
// like "[a [nested] label]" still finds the real closing bracket).
func parseImageBlock(src string, span Span) (*ImageBlock, error) {
	trimmed := strings.TrimSpace(src)
	runes := []rune(trimmed)[2:] // drop leading "!["

	closingBracket := 0
	ignoreNext := 0
	for i, c := range runes {
		switch c {
		case '[':
			ignoreNext++
		case ']':
			if ignoreNext > 0 {
				ignoreNext--
				continue
			}
			closingBracket = i
		default:
			continue
		}
		if c == ']' {
			break
		}
	}

	labelSrc := strings.TrimSpace(string(runes[:closingBracket]))
	labelTree, err := parseTextTree(labelSrc, span)
	if err != nil {
		return nil, err
	}

	rest := runes[closingBracket+2:]
	var imgSrc []rune
	for _, c := range rest {
		if c == ')' {
			break
		}
		imgSrc = append(imgSrc, c)
	}

	return &ImageBlock{Label: labelTree, Src: string(imgSrc)}, nil
}
