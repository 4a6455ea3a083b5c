// ============================================================================
// mDW Markup - Markup Parser und Strukturpruefung
// ============================================================================
//
// Package:     viewer
// Description: Lipgloss styles for the markup tree viewer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package viewer

import (
	"github.com/charmbracelet/lipgloss"

	mdwrender "github.com/msto63/mdwmarkup/foundation/markup/render"
)

// Color Palette - Same as other TUI components for consistency
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	StatusValidStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	StatusInvalidStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	ModeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)

// Content styles
var (
	ContentPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Help bar styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Icons
const (
	IconValid   = "✓ "
	IconInvalid = "✗ "
)

// TreeStyles returns the tree renderer styles matching the palette
func TreeStyles() mdwrender.Styles {
	return mdwrender.Styles{
		Tag:       lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true),
		Attribute: lipgloss.NewStyle().Foreground(ColorAccent),
		Value:     lipgloss.NewStyle().Foreground(ColorSuccess),
		Text:      lipgloss.NewStyle().Foreground(ColorText),
		Mismatch:  lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Guide:     lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// RenderHelpItem renders a key binding with its description
func RenderHelpItem(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}
