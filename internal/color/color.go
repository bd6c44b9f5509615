// Package color decides whether the CLI should colorize its output and, if
// so, generates a deterministic depth-dependent color ramp for it.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
)

// StdoutIsTerminal reports whether stdout is attached to a terminal, the
// same check the CLI uses to auto-detect whether --color should default to
// on.
func StdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Ramp produces a smooth, deterministic sequence of n colors blending from
// start to end in HSV space, one per nesting depth level, so deeply nested
// sections and lists in the printed Script Tree get a distinguishable but
// non-jarring hue progression instead of a hardcoded palette.
func Ramp(start, end lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{start}
	}

	startColor, errStart := colorful.Hex(string(start))
	endColor, errEnd := colorful.Hex(string(end))
	if errStart != nil || errEnd != nil {
		colors := make([]lipgloss.Color, n)
		for i := range colors {
			colors[i] = start
		}
		return colors
	}

	colors := make([]lipgloss.Color, n)
	for i := range n {
		ratio := float64(i) / float64(n-1)
		colors[i] = lipgloss.Color(startColor.BlendHsv(endColor, ratio).Hex())
	}
	return colors
}

// AtDepth returns the ramp color for a given nesting depth, clamping to the
// last color once depth exceeds the ramp's length.
func AtDepth(ramp []lipgloss.Color, depth int) lipgloss.Color {
	if len(ramp) == 0 {
		return ""
	}
	if depth >= len(ramp) {
		depth = len(ramp) - 1
	}
	if depth < 0 {
		depth = 0
	}
	return ramp[depth]
}
