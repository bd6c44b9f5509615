// Package cmd provides command-line interface implementations.
// This file registers the shell-completion predictors for md2letter's
// file-path arguments.
package cmd

import "github.com/posener/complete"

// PredictMarkdownFiles returns a predictor that suggests Markdown file
// paths for tab completion. Nothing in this repository registers it with
// kong-completion, so the Path arguments of convert, watch and preview are
// not bound to it.
func PredictMarkdownFiles() complete.Predictor {
	return complete.PredictFiles("*.md")
}
