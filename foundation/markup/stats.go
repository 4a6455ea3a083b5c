// File: stats.go
// Title: Markup Tree Statistics
// Description: Collects node counts and nesting depth of a parsed tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package markup

import (
	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
)

// Stats summarizes a parsed tree
type Stats struct {
	Elements    int `json:"elements" yaml:"elements"`         // All elements, self-closing included
	SelfClosing int `json:"self_closing" yaml:"self_closing"` // Self-closing elements
	Texts       int `json:"texts" yaml:"texts"`               // Text runs
	Attributes  int `json:"attributes" yaml:"attributes"`     // Attributes over all elements
	MaxDepth    int `json:"max_depth" yaml:"max_depth"`       // Element nesting depth, root is 1
}

// CollectStats walks elem and counts its nodes
func CollectStats(elem mdwast.Element) Stats {
	var stats Stats
	if elem == nil {
		return stats
	}

	collector := mdwast.CollectNodes(elem)
	stats.Elements = len(collector.Elements)
	stats.Texts = len(collector.Texts)
	stats.Attributes = len(collector.Attributes)
	for _, e := range collector.Elements {
		if _, ok := e.(*mdwast.SelfClosingElement); ok {
			stats.SelfClosing++
		}
	}

	mdwast.Walk(elem, func(node mdwast.Node, depth int) bool {
		if _, ok := node.(mdwast.Element); ok && depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		return true
	})

	return stats
}
