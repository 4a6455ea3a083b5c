// File: render.go
// Title: Markup Renderers
// Description: Output formats for parsed markup trees and the dispatching
//              Write function used by the command line tools.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package render writes parsed markup trees as debug dumps, indented trees,
// markup, HTML, JSON or YAML.
package render

import (
	"fmt"
	"io"
	"strings"

	mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
)

// Format selects an output representation
type Format int

const (
	// FormatDebug is a pretty-printed dump of the Go values
	FormatDebug Format = iota

	// FormatTree is an indented tree with box drawing guides
	FormatTree

	// FormatMarkup is the canonical markup of the tree
	FormatMarkup

	// FormatHTML is escaped HTML
	FormatHTML

	// FormatJSON is the serialized Document as JSON
	FormatJSON

	// FormatYAML is the serialized Document as YAML
	FormatYAML
)

var formatNames = map[Format]string{
	FormatDebug:  "debug",
	FormatTree:   "tree",
	FormatMarkup: "markup",
	FormatHTML:   "html",
	FormatJSON:   "json",
	FormatYAML:   "yaml",
}

// String returns the string representation of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Formats returns the names of all formats in declaration order
func Formats() []string {
	names := make([]string, 0, len(formatNames))
	for f := FormatDebug; f <= FormatYAML; f++ {
		names = append(names, f.String())
	}
	return names
}

// ParseFormat parses a format name, ignoring case
func ParseFormat(name string) (Format, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == needle {
			return f, nil
		}
	}
	return FormatDebug, mdwerror.New(fmt.Sprintf("unknown output format %q, expected one of %s",
		name, strings.Join(Formats(), ", "))).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("render.ParseFormat").
		WithDetail("format", name)
}

// Options controls rendering
type Options struct {
	// Color enables ANSI colors for the debug and tree formats
	Color bool
}

// Write renders elem to w in the given format
func Write(w io.Writer, elem mdwast.Element, format Format, opts Options) error {
	switch format {
	case FormatDebug:
		return Debug(w, elem, opts.Color)
	case FormatTree:
		styles := PlainStyles()
		if opts.Color {
			styles = DefaultStyles()
		}
		_, err := io.WriteString(w, Tree(elem, styles))
		return err
	case FormatMarkup:
		_, err := io.WriteString(w, Markup(elem)+"\n")
		return err
	case FormatHTML:
		if err := HTML(w, elem); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case FormatJSON:
		return JSON(w, elem)
	case FormatYAML:
		return YAML(w, elem)
	default:
		return mdwerror.New(fmt.Sprintf("unsupported output format: %d", int(format))).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("render.Write")
	}
}

// Markup returns the canonical markup of elem
func Markup(elem mdwast.Element) string {
	return elem.String()
}
