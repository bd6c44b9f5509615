package cmd

import (
	"github.com/connerohnesorge/md2letter/internal/config"
	"github.com/connerohnesorge/md2letter/internal/preview"
)

// PreviewCmd opens a live, side-by-side Markdown / Script Tree preview.
type PreviewCmd struct {
	Path string `arg:"" predictor:"mdfile" help:"Markdown file to preview"`

	cfg *config.Config
}

// Run executes the preview command. It blocks until the user quits.
func (p *PreviewCmd) Run() error {
	return preview.Run(p.Path, p.cfg)
}
