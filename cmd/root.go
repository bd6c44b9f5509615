// Package cmd implements the md2letter command-line interface.
package cmd

import (
	"github.com/spf13/afero"
	kongcompletion "github.com/jotaen/kong-completion"

	"github.com/connerohnesorge/md2letter/internal/config"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	Fs afero.Fs `kong:"-"`

	Convert    ConvertCmd                `cmd:"" help:"Convert a Markdown file to a Script Tree"`
	Watch      WatchCmd                  `cmd:"" help:"Watch a Markdown file and reconvert on change"`
	Preview    PreviewCmd                `cmd:"" help:"Open a live side-by-side preview"`
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completions"`
}

// AfterApply loads the project configuration and attaches it, along with a
// default filesystem, to every subcommand before it runs.
func (c *CLI) AfterApply() error {
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{Indent: config.DefaultIndent, Theme: config.DefaultTheme}
	}

	c.Convert.fs = c.Fs
	c.Convert.cfg = cfg
	c.Watch.fs = c.Fs
	c.Watch.cfg = cfg
	c.Preview.cfg = cfg

	return nil
}
