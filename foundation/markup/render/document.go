// File: document.go
// Title: Serializable Markup Document
// Description: Converts a markup tree into plain structs for JSON and YAML
//              output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
)

// Node kinds in a Document
const (
	KindElement     = "element"
	KindSelfClosing = "self_closing"
	KindText        = "text"
)

// Document is the serializable form of a parsed tree
type Document struct {
	Root *Node `json:"root" yaml:"root"`
}

// Node is a serializable tree node
type Node struct {
	Kind       string      `json:"kind" yaml:"kind"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	EndName    string      `json:"end_name,omitempty" yaml:"end_name,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Text       string      `json:"text,omitempty" yaml:"text,omitempty"`
	Children   []*Node     `json:"children,omitempty" yaml:"children,omitempty"`
	Line       int         `json:"line" yaml:"line"`
	Column     int         `json:"column" yaml:"column"`
}

// Attribute is a serializable attribute
type Attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// NewDocument converts elem into a Document
func NewDocument(elem mdwast.Element) *Document {
	return &Document{Root: newNode(elem)}
}

func newNode(child mdwast.Child) *Node {
	pos := child.Position()
	node := &Node{Line: pos.Line, Column: pos.Column}

	switch c := child.(type) {
	case *mdwast.Text:
		node.Kind = KindText
		node.Text = c.Value
	case *mdwast.SelfClosingElement:
		node.Kind = KindSelfClosing
		node.Name = string(c.StartTag.Name)
		node.Attributes = newAttributes(c.StartTag.Attributes)
	case *mdwast.ElementWithChildren:
		node.Kind = KindElement
		node.Name = string(c.StartTag.Name)
		node.EndName = string(c.EndTag.Name)
		node.Attributes = newAttributes(c.StartTag.Attributes)
		for _, grandchild := range c.Children {
			node.Children = append(node.Children, newNode(grandchild))
		}
	}
	return node
}

func newAttributes(attrs []mdwast.Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	result := make([]Attribute, len(attrs))
	for i, attr := range attrs {
		result[i] = Attribute{Name: string(attr.Name), Value: attr.Value.Literal}
	}
	return result
}

// JSON writes elem as an indented JSON Document
func JSON(w io.Writer, elem mdwast.Element) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(elem))
}

// YAML writes elem as a YAML Document
func YAML(w io.Writer, elem mdwast.Element) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewDocument(elem)); err != nil {
		return err
	}
	return encoder.Close()
}
