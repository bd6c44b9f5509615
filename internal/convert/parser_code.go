package convert

import "strings"

// parseCodeBlock parses a fenced code block delimited by "```", an
// optional language identifier directly after the opening fence, and a
// matching closing fence. The body between header and footer is kept
// verbatim except for one leading and one trailing newline, which are
// dropped.
func parseCodeBlock(src string, span Span) (*CodeBlock, error) {
	headerOffset, language, hasLang, err := findCodeHeader(src, span.Start)
	if err != nil {
		return nil, err
	}
	footerOffset, err := findCodeFooter(src, span.End)
	if err != nil {
		return nil, err
	}

	runes := []rune(src)
	if footerOffset < headerOffset {
		footerOffset = headerOffset
	}
	body := string(runes[headerOffset:footerOffset])
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimSuffix(body, "\n")

	return &CodeBlock{Language: language, HasLang: hasLang, Body: body}, nil
}

func findCodeHeader(src string, start Position) (offset int, language string, hasLang bool, err error) {
	trimmedStart := strings.TrimLeft(src, " \t\n")
	offset = len([]rune(src)) - len([]rune(trimmedStart))

	if !strings.HasPrefix(trimmedStart, "```") {
		return 0, "", false, parseError("code block must be started with '```'", start)
	}
	offset += 3

	runes := []rune(trimmedStart)[3:]
	var lang []rune
	for _, c := range runes {
		switch c {
		case ' ', '\t', '\n':
			goto done
		case '`':
			lang = nil
			goto done
		default:
			lang = append(lang, c)
		}
	}
done:

	return offset + len(lang), string(lang), len(lang) > 0, nil
}

func findCodeFooter(src string, end Position) (int, error) {
	trimmed := strings.TrimRight(src, " \t\n")
	if !strings.HasSuffix(trimmed, "```") {
		return 0, parseError("code block must be ended with '```'", end)
	}
	return len([]rune(trimmed)) - 3, nil
}
