package cmd

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/md2letter/internal/clip"
	"github.com/connerohnesorge/md2letter/internal/color"
	"github.com/connerohnesorge/md2letter/internal/config"
	"github.com/connerohnesorge/md2letter/internal/convert"
)

// ConvertCmd reads Markdown from a path (or stdin) and writes its Script
// Tree conversion to a file or stdout.
type ConvertCmd struct {
	Path   string `arg:"" predictor:"mdfile" help:"Markdown file to convert, or '-' for stdin"`
	Out    string `help:"Write output to this file instead of stdout"`
	Indent int    `help:"Spaces per nesting depth in the output"`
	Copy   bool   `help:"Also copy the output to the system clipboard"`
	Color  bool   `help:"Force-enable colorized tag/attribute output"`

	fs  afero.Fs
	cfg *config.Config
}

// Run executes the convert command.
func (c *ConvertCmd) Run() error {
	src, err := c.readInput()
	if err != nil {
		return err
	}

	opts := convert.Options{Config: c.cfg}
	if c.Indent > 0 {
		opts.IndentWidth = c.Indent
	} else if c.cfg != nil {
		opts.IndentWidth = c.cfg.Indent
	}

	out, err := convert.Convert(strings.NewReader(src), opts)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if c.Copy {
		if err := clip.Write(out); err != nil {
			fmt.Fprintf(os.Stderr, "convert: failed to copy to clipboard: %v\n", err)
		}
	}

	if err := c.writeOutput(out, opts.IndentWidth); err != nil {
		return err
	}

	return nil
}

func (c *ConvertCmd) readInput() (string, error) {
	if c.Path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("convert: failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := afero.ReadFile(c.fs, c.Path)
	if err != nil {
		return "", fmt.Errorf("convert: failed to read %s: %w", c.Path, err)
	}
	return string(data), nil
}

func (c *ConvertCmd) writeOutput(out string, indentWidth int) error {
	if c.Out == "" {
		rendered := out
		if c.shouldColorize() {
			rendered = colorize(out, indentWidth)
		}
		fmt.Fprint(os.Stdout, rendered)
		return nil
	}

	if err := afero.WriteFile(c.fs, c.Out, []byte(out), 0o644); err != nil {
		return fmt.Errorf("convert: failed to write %s: %w", c.Out, err)
	}
	return nil
}

func (c *ConvertCmd) shouldColorize() bool {
	if c.Out != "" {
		return false
	}
	if c.Color {
		return true
	}
	return color.StdoutIsTerminal()
}

var (
	tagPattern  = regexp.MustCompile(`</?[A-Za-z][\w-]*`)
	attrPattern = regexp.MustCompile(`([\w-]+)=`)
)

const colorizeMaxDepth = 12

// colorize applies a nesting-depth-dependent color ramp to tag names and a
// fixed style to attribute keys in a Script Tree rendering, one line at a
// time (indentWidth spaces of leading whitespace = one depth level).
func colorize(out string, indentWidth int) string {
	if indentWidth <= 0 {
		indentWidth = 4
	}

	ramp := color.Ramp(lipgloss.Color("#875fff"), lipgloss.Color("#ff5faf"), colorizeMaxDepth)
	attrStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		depth := leadingSpaces(line) / indentWidth
		tagStyle := lipgloss.NewStyle().Foreground(color.AtDepth(ramp, depth)).Bold(true)

		line = tagPattern.ReplaceAllStringFunc(line, func(m string) string {
			return tagStyle.Render(m)
		})
		line = attrPattern.ReplaceAllStringFunc(line, func(m string) string {
			key := strings.TrimSuffix(m, "=")
			return attrStyle.Render(key) + "="
		})
		lines[i] = line
	}

	return strings.Join(lines, "\n")
}

func leadingSpaces(s string) int {
	n := 0
	for _, c := range s {
		if c != ' ' {
			break
		}
		n++
	}
	return n
}
