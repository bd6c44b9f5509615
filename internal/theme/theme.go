// Package theme provides the color palette used to render the live
// Markdown/Script-Tree preview. The colorized convert output does not use
// it.
package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the palette the preview draws from. It carries only the
// roles the preview uses: pane borders, the header line, dimmed chrome,
// and the error banner.
type Theme struct {
	Border lipgloss.Color // viewport pane borders
	Header lipgloss.Color // preview header line
	Muted  lipgloss.Color // help line, dimmed chrome
	Error  lipgloss.Color // conversion-error banner
}

// defaultTheme matches the default terminal accent colors.
var defaultTheme = &Theme{
	Border: lipgloss.Color("240"), // dim gray
	Header: lipgloss.Color("99"),  // purple
	Muted:  lipgloss.Color("240"), // dim gray
	Error:  lipgloss.Color("196"), // red
}

// darkTheme: high contrast on dark backgrounds, brighter colors.
var darkTheme = &Theme{
	Border: lipgloss.Color("238"), // dark gray border
	Header: lipgloss.Color("141"), // bright purple
	Muted:  lipgloss.Color("243"), // medium gray
	Error:  lipgloss.Color("196"), // bright red
}

// lightTheme: optimized for light terminal backgrounds, darker accents.
var lightTheme = &Theme{
	Border: lipgloss.Color("250"), // very light gray border
	Header: lipgloss.Color("55"),  // dark purple
	Muted:  lipgloss.Color("246"), // light gray
	Error:  lipgloss.Color("160"), // dark red
}

// solarizedTheme: Solarized Dark palette colors.
var solarizedTheme = &Theme{
	Border: lipgloss.Color("235"), // base02
	Header: lipgloss.Color("37"),  // cyan
	Muted:  lipgloss.Color("240"), // base01
	Error:  lipgloss.Color("160"), // red
}

// monokaiTheme: Monokai palette colors.
var monokaiTheme = &Theme{
	Border: lipgloss.Color("237"), // dark gray
	Header: lipgloss.Color("81"),  // cyan/blue
	Muted:  lipgloss.Color("243"), // gray
	Error:  lipgloss.Color("197"), // pink/red
}

// themes is the registry of all available themes.
var themes = map[string]*Theme{
	"default":   defaultTheme,
	"dark":      darkTheme,
	"light":     lightTheme,
	"solarized": solarizedTheme,
	"monokai":   monokaiTheme,
}

// current holds the currently active theme.
var current *Theme

// Get returns the theme with the given name.
// Returns an error if the theme does not exist.
func Get(name string) (*Theme, error) {
	theme, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}

	return theme, nil
}

// Load loads the theme with the given name as the current theme.
// Returns an error if the theme does not exist.
func Load(name string) error {
	theme, err := Get(name)
	if err != nil {
		return err
	}
	current = theme

	return nil
}

// Current returns the currently active theme.
// If no theme has been loaded, returns the default theme.
func Current() *Theme {
	if current == nil {
		return defaultTheme
	}

	return current
}

// Available returns a sorted list of all available theme names.
func Available() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
