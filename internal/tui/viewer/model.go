// ============================================================================
// mDW Markup - Markup Parser und Strukturpruefung
// ============================================================================
//
// Package:     viewer
// Description: Main Bubbletea model for the markup tree viewer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package viewer

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/msto63/mdwmarkup/foundation/markup"
	mdwanalyzer "github.com/msto63/mdwmarkup/foundation/markup/analyzer"
	mdwrender "github.com/msto63/mdwmarkup/foundation/markup/render"
	mdwstringx "github.com/msto63/mdwmarkup/foundation/utils/stringx"
	"github.com/msto63/mdwmarkup/pkg/core/version"
)

// Model is the main Bubbletea model for the viewer
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	showSource bool

	// Components
	viewport viewport.Model

	// Document state
	source  string
	modTime time.Time
	result  *markup.Result
	err     error
	checks  int

	// Configuration
	engine   *markup.Engine
	title    string
	path     string
	interval time.Duration
}

// Config holds viewer configuration
type Config struct {
	// Engine checks the document (required)
	Engine *markup.Engine

	// Title is shown in the header, defaults to the path or "stdin"
	Title string

	// Source is the document to show when Path is empty
	Source string

	// Path is a file that is read on start and polled while Interval > 0
	Path string

	// Interval is the polling interval for Path (0 disables polling)
	Interval time.Duration
}

// New creates a new viewer model
func New(cfg Config) Model {
	return Model{
		engine:   cfg.Engine,
		title:    mdwstringx.FirstNonBlank(cfg.Title, cfg.Path, "stdin"),
		path:     cfg.Path,
		source:   cfg.Source,
		interval: cfg.Interval,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.check}
	if m.path != "" && m.interval > 0 {
		cmds = append(cmds, m.tick())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title panel + error line
		footerHeight := 2 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case checkedMsg:
		m.checks++
		m.source = msg.source
		m.modTime = msg.modTime
		m.result = msg.result
		m.err = msg.err
		m.updateViewportContent()

	case unchangedMsg:
		// nothing to do

	case tickMsg:
		cmds = append(cmds, m.reloadIfChanged, m.tick())
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Toggle between tree and raw markup
		case "r":
			m.showSource = !m.showSource
			m.updateViewportContent()
			return m, nil

		// Re-read and re-check
		case "R":
			return m, m.check

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Viewer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderContentArea())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title and the verdict of the last check
func (m Model) renderHeader() string {
	title := TitleStyle.Render("mDW Markup") + "  " + m.title

	mode := "Baum"
	if m.showSource {
		mode = "Quelltext"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		title,
		strings.Repeat(" ", 3),
		ModeStyle.Render("["+mode+"]"),
	)

	return TitlePanelStyle.Width(m.width-4).Render(header) + "\n" + m.renderVerdict()
}

// renderVerdict renders the check result line
func (m Model) renderVerdict() string {
	switch {
	case m.checks == 0:
		return HelpDescStyle.Render("Pruefe Dokument...")
	case m.err == nil:
		return StatusValidStyle.Render(IconValid + "Struktur gueltig")
	default:
		return StatusInvalidStyle.Render(IconInvalid + describeError(m.err))
	}
}

// renderContentArea renders the main viewport
func (m Model) renderContentArea() string {
	style := ContentPanelStyle.Width(m.width - 2).Height(m.viewport.Height)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders document statistics and the version
func (m Model) renderStatusBar() string {
	parts := []string{humanize.Bytes(uint64(len(m.source)))}
	if m.result != nil {
		stats := m.result.Stats
		parts = append(parts,
			fmt.Sprintf("%s Elemente", humanize.Comma(int64(stats.Elements))),
			fmt.Sprintf("%s Texte", humanize.Comma(int64(stats.Texts))),
			fmt.Sprintf("Tiefe %d", stats.MaxDepth),
		)
	}
	if !m.modTime.IsZero() {
		parts = append(parts, "geaendert "+humanize.Time(m.modTime))
	}
	parts = append(parts, "v"+version.Viewer)

	return HelpDescStyle.Render(strings.Join(parts, " | "))
}

// renderHelpBar renders the key bindings
func (m Model) renderHelpBar() string {
	items := []string{
		RenderHelpItem("↑/↓", "scrollen"),
		RenderHelpItem("g/G", "Anfang/Ende"),
		RenderHelpItem("r", "Baum/Quelltext"),
		RenderHelpItem("R", "neu pruefen"),
		RenderHelpItem("q", "beenden"),
	}
	return strings.Join(items, "  ")
}

// updateViewportContent renders the current document into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
}

// content returns the text shown in the viewport
func (m Model) content() string {
	if m.showSource || m.result == nil {
		if m.result == nil && m.err != nil {
			return ErrorTextStyle.Render(m.err.Error()) + "\n\n" + m.source
		}
		return m.source
	}
	return mdwrender.Tree(m.result.Element, TreeStyles())
}

// check reads the document and runs the engine
func (m Model) check() tea.Msg {
	source := m.source
	var modTime time.Time
	if m.path != "" {
		info, err := os.Stat(m.path)
		if err != nil {
			return checkedMsg{source: source, err: err}
		}
		data, err := os.ReadFile(m.path)
		if err != nil {
			return checkedMsg{source: source, err: err}
		}
		source = string(data)
		modTime = info.ModTime()
	}
	if m.engine == nil {
		return checkedMsg{source: source, modTime: modTime, err: errors.New("no markup engine configured")}
	}

	result, err := m.engine.Check(source)
	return checkedMsg{source: source, modTime: modTime, result: result, err: err}
}

// reloadIfChanged checks the watched file again when its modification time moved
func (m Model) reloadIfChanged() tea.Msg {
	info, err := os.Stat(m.path)
	if err == nil && info.ModTime().Equal(m.modTime) {
		return unchangedMsg{}
	}
	return m.check()
}

// tick schedules the next poll of the watched file
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// describeError returns the short message shown in the header
func describeError(err error) string {
	var mismatch *mdwanalyzer.MismatchError
	if errors.As(err, &mismatch) {
		return mismatch.Error()
	}
	return err.Error()
}

// Run starts the viewer
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
