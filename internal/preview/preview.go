// Package preview renders a live side-by-side view of a Markdown file and
// its Script Tree conversion, refreshing whenever the file changes on disk.
package preview

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/connerohnesorge/md2letter/internal/config"
	"github.com/connerohnesorge/md2letter/internal/convert"
	"github.com/connerohnesorge/md2letter/internal/theme"
	"github.com/connerohnesorge/md2letter/internal/watch"
)

const (
	minPaneHeight = 3
	headerLines   = 2
	helpLines     = 2
)

// changedMsg is sent whenever the watched file settles after a write.
type changedMsg struct{}

// watchErrMsg carries an error surfaced by the underlying file watcher.
type watchErrMsg struct{ err error }

// Model is the Bubble Tea model driving the preview TUI: an input pane
// showing the raw Markdown and an output pane showing its live-converted
// Script Tree, laid out side by side.
type Model struct {
	path string
	cfg  *config.Config
	w    *watch.Watcher

	input  viewport.Model
	output viewport.Model

	source     string
	rendered   string
	convertErr error

	width, height int
	ready         bool
	quitting      bool
}

// New creates a preview Model for the Markdown file at path. cfg may be nil.
func New(path string, cfg *config.Config) (*Model, error) {
	w, err := watch.New(path)
	if err != nil {
		return nil, err
	}

	m := &Model{
		path: path,
		cfg:  cfg,
		w:    w,
	}
	m.reload()

	return m, nil
}

// Run launches the preview program and blocks until the user quits.
func Run(path string, cfg *config.Config) error {
	m, err := New(path, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = m.w.Close() }()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m *Model) reload() {
	src, err := os.ReadFile(m.path)
	if err != nil {
		m.convertErr = err
		return
	}
	m.source = string(src)

	opts := convert.Options{Config: m.cfg}
	if m.cfg != nil {
		opts.IndentWidth = m.cfg.Indent
	}

	out, err := convert.Convert(strings.NewReader(m.source), opts)
	if err != nil {
		m.convertErr = err
		return
	}
	m.rendered = out
	m.convertErr = nil
}

// Init satisfies tea.Model.
func (m *Model) Init() tea.Cmd {
	return waitForChange(m.w)
}

// waitForChange returns a tea.Cmd that blocks until the watcher reports a
// settled change or an error, then relays it as a tea.Msg.
func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.Events():
			return changedMsg{}
		case err := <-w.Errors():
			return watchErrMsg{err: err}
		}
	}
}

// Update satisfies tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case changedMsg:
		m.reload()
		m.syncViewports()
		return m, waitForChange(m.w)

	case watchErrMsg:
		m.convertErr = msg.err
		return m, waitForChange(m.w)
	}

	var cmds []tea.Cmd
	if m.ready {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		m.output, cmd = m.output.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) layout() {
	paneHeight := m.height - headerLines - helpLines
	if paneHeight < minPaneHeight {
		paneHeight = minPaneHeight
	}
	paneWidth := m.width / 2

	if !m.ready {
		m.input = viewport.New(paneWidth, paneHeight)
		m.output = viewport.New(m.width-paneWidth, paneHeight)
		m.ready = true
	} else {
		m.input.Width = paneWidth
		m.input.Height = paneHeight
		m.output.Width = m.width - paneWidth
		m.output.Height = paneHeight
	}

	m.syncViewports()
}

func (m *Model) syncViewports() {
	if !m.ready {
		return
	}
	m.input.SetContent(m.source)
	if m.convertErr != nil {
		m.output.SetContent(errorStyle().Render(m.convertErr.Error()))
		return
	}
	m.output.SetContent(m.rendered)
}

// View satisfies tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading " + m.path + "...\n"
	}

	th := theme.Current()
	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(th.Border)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(th.Header).
		Render(fmt.Sprintf("md2letter preview — %s", m.path))

	help := lipgloss.NewStyle().
		Foreground(th.Muted).
		Render("q: quit")

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		paneStyle.Render(m.input.View()),
		paneStyle.Render(m.output.View()),
	)

	return header + "\n" + panes + "\n" + help
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error).Bold(true)
}
