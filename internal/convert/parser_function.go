package convert

import "strings"

// parseFunctionBlock parses a standalone '#name' or '#name(k: v, ...)'
// block. Parameters are split on ',' then the first ':'; entries without a
// ':' are skipped. This parsing is separate from the inline function
// token's lexParams.
func parseFunctionBlock(src string, span Span) (*FunctionBlock, error) {
	trimmed := strings.TrimSpace(src)
	runes := []rune(trimmed)

	var name []rune
	offset := 0
	for _, c := range runes {
		switch c {
		case '#':
		case ' ', '\t':
			return nil, parseError("unexpected whitespace in function name", span.Start)
		case '(':
			goto nameDone
		default:
			name = append(name, c)
		}
		offset++
	}
nameDone:

	if len(name) == 0 {
		return nil, parseError("function name is empty", span.Start)
	}

	params := map[string]string{}
	rest := runes[offset:]
	if len(rest) > 0 && rest[0] == '(' {
		if rest[len(rest)-1] != ')' {
			return nil, parseError("expected closing parenthesis for function parameters", span.Start)
		}
		body := string(rest[1 : len(rest)-1])
		if body != "" {
			for _, entry := range strings.Split(body, ",") {
				parts := strings.SplitN(entry, ":", 2)
				if len(parts) != 2 {
					continue
				}
				params[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
			}
		}
	}

	return &FunctionBlock{Name: string(name), Params: params}, nil
}
