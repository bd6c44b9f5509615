// Package convert implements the full Markdown-to-Script-Tree pipeline:
// splitter, categoriser, per-kind block parsers, transformer and printer.
package convert

import (
	"io"

	"github.com/connerohnesorge/md2letter/internal/config"
)

// Options tunes the Convert entry point beyond its defaults.
type Options struct {
	// IndentWidth is the number of spaces per nesting depth in the printed
	// output. Zero means "use the default" (4).
	IndentWidth int
	// Config, when set, is consulted by the code block parser to
	// canonicalise fence language identifiers (e.g. "js" -> "javascript").
	// A nil Config leaves fence languages untouched.
	Config *config.Config
}

// Convert reads Markdown from r and returns its Script Tree serialisation.
// It runs the full pipeline (split, categorise, parse, transform, print) in
// a single pass and returns the first error encountered at any stage.
func Convert(r io.Reader, opts Options) (string, error) {
	blocks := splitBlocks(r)

	parsed := make([]ParsedBlock, 0, len(blocks))
	for _, block := range blocks {
		cb := categorize(block)
		pb, err := parseBlock(cb, opts.Config)
		if err != nil {
			return "", err
		}
		parsed = append(parsed, pb)
	}

	tree, err := transform(parsed)
	if err != nil {
		return "", err
	}

	indentWidth := opts.IndentWidth
	if indentWidth <= 0 {
		indentWidth = defaultIndentWidth
	}

	return print(tree, indentWidth), nil
}
