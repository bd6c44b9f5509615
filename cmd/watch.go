package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/md2letter/internal/config"
	"github.com/connerohnesorge/md2letter/internal/convert"
	"github.com/connerohnesorge/md2letter/internal/watch"
)

// WatchCmd re-runs the converter every time the input file changes on disk.
type WatchCmd struct {
	Path string `arg:"" predictor:"mdfile" help:"Markdown file to watch"`
	Out  string `help:"Write output to this file instead of stdout"`

	fs  afero.Fs
	cfg *config.Config
}

// Run executes the watch command. It blocks until the process is
// interrupted.
func (w *WatchCmd) Run() error {
	watcher, err := watch.New(w.Path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := w.convertOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "watch: %v\n", err)
	}

	for {
		select {
		case <-watcher.Events():
			if err := w.convertOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			}
		case err := <-watcher.Errors():
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	}
}

func (w *WatchCmd) convertOnce() error {
	data, err := afero.ReadFile(w.fs, w.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", w.Path, err)
	}

	opts := convert.Options{Config: w.cfg}
	if w.cfg != nil {
		opts.IndentWidth = w.cfg.Indent
	}

	out, err := convert.Convert(strings.NewReader(string(data)), opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if w.Out == "" {
		fmt.Fprint(os.Stdout, out)
		return nil
	}

	if err := afero.WriteFile(w.fs, w.Out, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.Out, err)
	}
	return nil
}
