// ============================================================================
// mDW Markup - Markup Parser und Strukturpruefung
// ============================================================================
//
// Package:     viewer
// Description: Tests for the markup tree viewer model
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package viewer

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	mdwlog "github.com/msto63/mdwmarkup/foundation/core/log"
	"github.com/msto63/mdwmarkup/foundation/markup"
)

func newTestEngine(t *testing.T) *markup.Engine {
	t.Helper()
	engine, err := markup.NewEngine(markup.Options{
		Logger: mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelError, Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

// load runs the initial check and sizes the window
func load(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(m.check())
	updated, _ = updated.(Model).Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewBeforeResize(t *testing.T) {
	m := New(Config{Engine: newTestEngine(t), Source: "<p></p>"})
	if got := m.View(); got != "Lade Viewer..." {
		t.Errorf("Expected loading text, got %q", got)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{"explicit title", Config{Title: "demo", Path: "a.mdw"}, "demo"},
		{"path", Config{Path: "a.mdw"}, "a.mdw"},
		{"stdin", Config{}, "stdin"},
		{"blank title falls back to path", Config{Title: "  ", Path: "a.mdw"}, "a.mdw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.cfg).title; got != tt.expected {
				t.Errorf("Expected title %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestValidDocument(t *testing.T) {
	m := load(t, New(Config{Engine: newTestEngine(t), Source: `<div class="a"><p>Hallo</p><br/></div>`}))

	if m.err != nil {
		t.Fatalf("Expected no error, got %v", m.err)
	}
	view := m.View()
	for _, want := range []string{"Struktur gueltig", "div", "class", "Hallo", "[Baum]", "v0.1.0"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestMismatchedDocument(t *testing.T) {
	m := load(t, New(Config{Engine: newTestEngine(t), Source: `<p>x</q>`}))

	if m.err == nil {
		t.Fatal("Expected an analyzer error")
	}
	if m.result == nil {
		t.Fatal("Expected the parsed tree to be kept")
	}
	view := m.View()
	if !strings.Contains(view, "start and end tag are not equal. Start tag: p, end tag: q") {
		t.Errorf("Expected mismatch message in view, got:\n%s", view)
	}
}

func TestSyntaxError(t *testing.T) {
	m := load(t, New(Config{Engine: newTestEngine(t), Source: `<p x=1></p>`}))

	if m.err == nil || m.result != nil {
		t.Fatalf("Expected syntax error without result, got %v / %v", m.err, m.result)
	}
	content := m.content()
	if !strings.Contains(content, "invalid markup syntax") {
		t.Errorf("Expected error text in content, got %q", content)
	}
	if !strings.Contains(content, `<p x=1></p>`) {
		t.Errorf("Expected source in content, got %q", content)
	}
}

func TestKeyBindings(t *testing.T) {
	source := `<ul><li>a</li><li>b</li></ul>`

	tests := []struct {
		name  string
		key   tea.KeyMsg
		check func(t *testing.T, m Model, cmd tea.Cmd)
	}{
		{"toggle source", keyRunes("r"), func(t *testing.T, m Model, cmd tea.Cmd) {
			if !m.showSource {
				t.Errorf("Expected source mode")
			}
			if got := m.content(); got != source {
				t.Errorf("Expected raw source, got %q", got)
			}
			if !strings.Contains(m.View(), "[Quelltext]") {
				t.Errorf("Expected mode indicator for source")
			}
		}},
		{"quit with q", keyRunes("q"), func(t *testing.T, m Model, cmd tea.Cmd) {
			if cmd == nil {
				t.Fatal("Expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("Expected tea.QuitMsg")
			}
		}},
		{"quit with ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, func(t *testing.T, m Model, cmd tea.Cmd) {
			if cmd == nil {
				t.Fatal("Expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("Expected tea.QuitMsg")
			}
		}},
		{"recheck", keyRunes("R"), func(t *testing.T, m Model, cmd tea.Cmd) {
			if cmd == nil {
				t.Fatal("Expected check command")
			}
			msg, ok := cmd().(checkedMsg)
			if !ok {
				t.Fatalf("Expected checkedMsg")
			}
			if msg.err != nil || msg.result == nil || !msg.result.Valid {
				t.Errorf("Expected valid result, got %v", msg.err)
			}
		}},
		{"scroll", tea.KeyMsg{Type: tea.KeyDown}, func(t *testing.T, m Model, cmd tea.Cmd) {
			if cmd != nil {
				t.Errorf("Expected no command for scrolling")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := load(t, New(Config{Engine: newTestEngine(t), Source: source}))
			updated, cmd := m.Update(tt.key)
			tt.check(t, updated.(Model), cmd)
		})
	}
}

func TestWatchedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.mdw")
	if err := os.WriteFile(path, []byte("<a>1</a>"), 0644); err != nil {
		t.Fatalf("Failed to write document: %v", err)
	}

	m := load(t, New(Config{Engine: newTestEngine(t), Path: path, Interval: time.Second}))
	if m.source != "<a>1</a>" {
		t.Fatalf("Expected file content, got %q", m.source)
	}
	if m.Init() == nil {
		t.Errorf("Expected init command")
	}

	if _, ok := m.reloadIfChanged().(unchangedMsg); !ok {
		t.Errorf("Expected unchanged file to be skipped")
	}

	if err := os.WriteFile(path, []byte("<a>1</b>"), 0644); err != nil {
		t.Fatalf("Failed to rewrite document: %v", err)
	}
	later := m.modTime.Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("Failed to touch document: %v", err)
	}

	msg, ok := m.reloadIfChanged().(checkedMsg)
	if !ok {
		t.Fatal("Expected changed file to be checked again")
	}
	updated, _ := m.Update(msg)
	m = updated.(Model)
	if m.err == nil {
		t.Errorf("Expected mismatch after edit")
	}
	if m.checks != 2 {
		t.Errorf("Expected 2 checks, got %d", m.checks)
	}
}

func TestMissingFile(t *testing.T) {
	m := New(Config{Engine: newTestEngine(t), Path: filepath.Join(t.TempDir(), "missing.mdw")})
	msg, ok := m.check().(checkedMsg)
	if !ok || msg.err == nil {
		t.Errorf("Expected read error for missing file")
	}
}
