// File: html.go
// Title: HTML Renderer
// Description: Renders a markup tree as HTML with gomponents. Text and
//              attribute values are escaped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package render

import (
	"io"

	g "maragu.dev/gomponents"

	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
)

// HTML writes elem to w as HTML. Elements are closed with their start tag
// name, so a mismatched end tag is not reproduced. Self-closing elements
// become empty elements, or void elements where HTML defines them.
func HTML(w io.Writer, elem mdwast.Element) error {
	return Component(elem).Render(w)
}

// Component converts elem into a gomponents node
func Component(elem mdwast.Element) g.Node {
	start := elem.Start()
	nodes := make([]g.Node, 0, len(start.Attributes))
	for _, attr := range start.Attributes {
		nodes = append(nodes, g.Attr(string(attr.Name), attr.Value.Literal))
	}

	if e, ok := elem.(*mdwast.ElementWithChildren); ok {
		for _, child := range e.Children {
			switch c := child.(type) {
			case *mdwast.Text:
				nodes = append(nodes, g.Text(c.Value))
			case mdwast.Element:
				nodes = append(nodes, Component(c))
			}
		}
	}

	return g.El(string(start.Name), nodes...)
}
