// File: tree.go
// Title: Tree Renderer
// Description: Renders a markup tree as an indented outline with box
//              drawing guides, styled with lipgloss.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
	mdwstringx "github.com/msto63/mdwmarkup/foundation/utils/stringx"
)

// maxTextWidth limits the text shown per text node
const maxTextWidth = 60

// Styles defines the styles of the tree renderer
type Styles struct {
	Tag       lipgloss.Style
	Attribute lipgloss.Style
	Value     lipgloss.Style
	Text      lipgloss.Style
	Mismatch  lipgloss.Style
	Guide     lipgloss.Style
}

// DefaultStyles returns the colored styles used on terminals
func DefaultStyles() Styles {
	return Styles{
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF")).Bold(true),
		Attribute: lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#98C379")),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ABB2BF")),
		Mismatch:  lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")).Bold(true),
		Guide:     lipgloss.NewStyle().Foreground(lipgloss.Color("#5C6370")),
	}
}

// PlainStyles returns styles without any decoration
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Tag:       plain,
		Attribute: plain,
		Value:     plain,
		Text:      plain,
		Mismatch:  plain,
		Guide:     plain,
	}
}

// Tree renders elem as an outline, one node per line. Text runs are shown
// with collapsed whitespace; whitespace-only runs are omitted. An end tag
// that does not match its start tag is shown next to the start tag.
func Tree(elem mdwast.Element, styles Styles) string {
	var b strings.Builder
	b.WriteString(elementLabel(elem, styles))
	b.WriteByte('\n')
	if e, ok := elem.(*mdwast.ElementWithChildren); ok {
		writeChildren(&b, e.Children, "", styles)
	}
	return b.String()
}

func writeChildren(b *strings.Builder, children []mdwast.Child, prefix string, styles Styles) {
	visible := make([]mdwast.Child, 0, len(children))
	for _, child := range children {
		if text, ok := child.(*mdwast.Text); ok && mdwstringx.IsBlank(text.Value) {
			continue
		}
		visible = append(visible, child)
	}

	for i, child := range visible {
		last := i == len(visible)-1
		branch, indent := "├─ ", "│  "
		if last {
			branch, indent = "└─ ", "   "
		}

		b.WriteString(styles.Guide.Render(prefix + branch))
		switch c := child.(type) {
		case *mdwast.Text:
			b.WriteString(textLabel(c, styles))
			b.WriteByte('\n')
		case *mdwast.SelfClosingElement:
			b.WriteString(elementLabel(c, styles))
			b.WriteByte('\n')
		case *mdwast.ElementWithChildren:
			b.WriteString(elementLabel(c, styles))
			b.WriteByte('\n')
			writeChildren(b, c.Children, prefix+indent, styles)
		}
	}
}

func textLabel(text *mdwast.Text, styles Styles) string {
	value := mdwstringx.Truncate(mdwstringx.CollapseSpace(text.Value), maxTextWidth, "…")
	return styles.Text.Render(strconv.Quote(value))
}

func elementLabel(elem mdwast.Element, styles Styles) string {
	start := elem.Start()

	var b strings.Builder
	b.WriteString(styles.Tag.Render("<" + string(start.Name)))
	for _, attr := range start.Attributes {
		b.WriteByte(' ')
		b.WriteString(styles.Attribute.Render(string(attr.Name)))
		b.WriteString("=")
		b.WriteString(styles.Value.Render(attr.Value.String()))
	}

	switch e := elem.(type) {
	case *mdwast.SelfClosingElement:
		b.WriteString(styles.Tag.Render("/>"))
	case *mdwast.ElementWithChildren:
		b.WriteString(styles.Tag.Render(">"))
		if !e.StartTag.Name.EqualFold(e.EndTag.Name) {
			b.WriteString(" ")
			b.WriteString(styles.Mismatch.Render("… " + e.EndTag.String()))
		}
	}
	return b.String()
}
