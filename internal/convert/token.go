package convert

// TokenKind identifies the lexical category of an inline Token.
type TokenKind uint8

const (
	// TokenEOF signals the end of the block's source.
	TokenEOF TokenKind = iota
	// TokenText is a run of literal text content.
	TokenText
	// TokenLink is a [label](target) construct.
	TokenLink
	// TokenImage is a ![label](src) construct.
	TokenImage
	// TokenFunction is a #name(key: value, ...) construct.
	TokenFunction
	// TokenBoldStart opens a bold span.
	TokenBoldStart
	// TokenBoldEnd closes a bold span.
	TokenBoldEnd
	// TokenItalicStart opens an italic span.
	TokenItalicStart
	// TokenItalicEnd closes an italic span.
	TokenItalicEnd
	// TokenCodeStart opens a code span.
	TokenCodeStart
	// TokenCodeEnd closes a code span.
	TokenCodeEnd
	// TokenError reports a tokenizing failure; Message carries the reason.
	TokenError
)

const unknownTokenKind = "Unknown"

// String returns a human-readable name for the token kind, used in tests
// and diagnostics.
//
//nolint:revive // cyclomatic - switch cases are simple string returns
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenText:
		return "Text"
	case TokenLink:
		return "Link"
	case TokenImage:
		return "Image"
	case TokenFunction:
		return "Function"
	case TokenBoldStart:
		return "BoldStart"
	case TokenBoldEnd:
		return "BoldEnd"
	case TokenItalicStart:
		return "ItalicStart"
	case TokenItalicEnd:
		return "ItalicEnd"
	case TokenCodeStart:
		return "CodeStart"
	case TokenCodeEnd:
		return "CodeEnd"
	case TokenError:
		return "Error"
	default:
		return unknownTokenKind
	}
}

// Token is a single unit produced by the inline tokenizer. Only the
// fields relevant to Kind are populated; the rest are left zero, mirroring
// the teacher's single-struct-per-lexical-unit idiom.
type Token struct {
	Kind TokenKind
	Span Span

	// Text holds literal content for TokenText, and the label for
	// TokenLink/TokenImage.
	Text string
	// Target is the link destination for TokenLink.
	Target string
	// Src is the image source for TokenImage.
	Src string
	// Name is the function name for TokenFunction.
	Name string
	// Params holds trimmed key/value pairs for TokenFunction.
	// Keys are unique; a repeated key overwrites the earlier value.
	Params map[string]string
	// Message describes the failure for TokenError.
	Message string
}
