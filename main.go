/*
Copyright © 2025 Conner Ohnesorge
*/
package main

import (
	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/md2letter/cmd"
	"github.com/connerohnesorge/md2letter/internal/config"
	"github.com/connerohnesorge/md2letter/internal/theme"
)

func main() {
	cli := &cmd.CLI{Fs: afero.NewOsFs()}
	ctx := kong.Parse(cli,
		kong.Name("md2letter"),
		kong.Description("Convert Markdown documents into an indented Script Tree"),
		kong.UsageOnError(),
	)

	// Load config and apply theme
	cfg, err := config.Load()
	if err == nil {
		_ = theme.Load(cfg.Theme)
	}
	// Ignore errors - theme will default to "default" if config not found

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
