package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func writeMarkdown(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write markdown file: %v", err)
	}
	return path
}

func waitForString(t *testing.T, tm *teatest.TestModel, s string) {
	t.Helper()
	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return strings.Contains(string(b), s)
		},
		teatest.WithCheckInterval(time.Millisecond*50),
		teatest.WithDuration(time.Second*5),
	)
}

func TestPreviewRendersInitialConversion(t *testing.T) {
	path := writeMarkdown(t, "# Title\n\nSome text.\n")

	m, err := New(path, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = m.w.Close() }()

	tm := teatest.NewTestModel(t, m)
	tm.Send(tea.WindowSizeMsg{Width: 80, Height: 24})

	waitForString(t, tm, "<heading>")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second*2))
}

func TestPreviewReloadsOnFileChange(t *testing.T) {
	path := writeMarkdown(t, "# First\n")

	m, err := New(path, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = m.w.Close() }()

	tm := teatest.NewTestModel(t, m)
	tm.Send(tea.WindowSizeMsg{Width: 80, Height: 24})

	waitForString(t, tm, "First")

	if err := os.WriteFile(path, []byte("# Second\n"), 0o644); err != nil {
		t.Fatalf("failed to modify markdown file: %v", err)
	}

	waitForString(t, tm, "Second")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second*2))
}

func TestPreviewShowsErrorWhenFileBecomesUnreadable(t *testing.T) {
	path := writeMarkdown(t, "# Fine\n")

	m, err := New(path, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = m.w.Close() }()

	tm := teatest.NewTestModel(t, m)
	tm.Send(tea.WindowSizeMsg{Width: 80, Height: 24})

	waitForString(t, tm, "Fine")

	// Replace the file with a directory of the same name: the parent-dir
	// watcher sees a Create event, and the subsequent read fails because
	// the path is no longer a regular file.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove markdown file: %v", err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create replacement directory: %v", err)
	}

	waitForString(t, tm, "is a directory")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second*2))
}
