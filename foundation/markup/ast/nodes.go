// File: nodes.go
// Title: Markup Syntax Tree Nodes
// Description: Defines identifiers, attributes, tags, text runs and the two
//              element variants together with their markup rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial node definitions

package ast

import (
	"fmt"
	"strings"
)

// Node represents the base interface for all tree nodes
type Node interface {
	// String returns the node rendered as markup
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position
}

// Child is a node that may appear inside an ElementWithChildren.
// Implemented by *Text, *SelfClosingElement and *ElementWithChildren.
type Child interface {
	Node
	childNode() // marker method
}

// Element is a complete markup element.
// Implemented by *SelfClosingElement and *ElementWithChildren.
type Element interface {
	Child

	// Start returns the start tag of the element
	Start() StartTag

	elementNode() // marker method
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number in runes (1-based)
	Offset int // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set by the parser
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Identifier is a tag or attribute name, kept exactly as written
type Identifier string

// String returns the identifier text
func (id Identifier) String() string {
	return string(id)
}

// EqualFold reports whether two identifiers are equal ignoring case
func (id Identifier) EqualFold(other Identifier) bool {
	return strings.EqualFold(string(id), string(other))
}

// ValueKind identifies the kind of an attribute value
type ValueKind int

const (
	// ValueString is a quoted string literal
	ValueString ValueKind = iota
)

// String returns the string representation of the value kind
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	default:
		return "unknown"
	}
}

// AttributeValue is the value of an attribute. Literal holds the characters
// between the quotes without escape processing.
type AttributeValue struct {
	Kind    ValueKind
	Literal string
	Quote   rune // '"' or '\'' as found in the source, 0 if constructed
}

// StringValue creates a string attribute value
func StringValue(literal string) AttributeValue {
	return AttributeValue{Kind: ValueString, Literal: literal}
}

// String returns the quoted literal. The source quote is kept unless the
// literal contains it.
func (v AttributeValue) String() string {
	quote := v.Quote
	if quote != '"' && quote != '\'' {
		quote = '"'
	}
	if strings.ContainsRune(v.Literal, quote) {
		if quote == '"' {
			quote = '\''
		} else {
			quote = '"'
		}
	}
	return string(quote) + v.Literal + string(quote)
}

// Attribute is a name/value pair inside a start tag
type Attribute struct {
	Name  Identifier
	Value AttributeValue
	Pos   Position
}

// Attr creates an attribute with a string value
func Attr(name, value string) Attribute {
	return Attribute{Name: Identifier(name), Value: StringValue(value)}
}

// String returns name="value"
func (a Attribute) String() string {
	return string(a.Name) + "=" + a.Value.String()
}

// StartTag is an opening tag with its attributes in source order.
// Duplicate attribute names are kept as they appear.
type StartTag struct {
	Name       Identifier
	Attributes []Attribute
	Pos        Position
}

// Attribute returns the value of the first attribute called name
func (t StartTag) Attribute(name string) (AttributeValue, bool) {
	for _, attr := range t.Attributes {
		if string(attr.Name) == name {
			return attr.Value, true
		}
	}
	return AttributeValue{}, false
}

// String returns the tag as <name attr="value">
func (t StartTag) String() string {
	return "<" + t.inner() + ">"
}

func (t StartTag) inner() string {
	var b strings.Builder
	b.WriteString(string(t.Name))
	for _, attr := range t.Attributes {
		b.WriteByte(' ')
		b.WriteString(attr.String())
	}
	return b.String()
}

// EndTag is a closing tag
type EndTag struct {
	Name Identifier
	Pos  Position
}

// String returns the tag as </name>
func (t EndTag) String() string {
	return "</" + string(t.Name) + ">"
}

// Text is a non-empty run of character data
type Text struct {
	Value string
	Pos   Position
}

// NewText creates a text node
func NewText(value string) *Text {
	return &Text{Value: value}
}

func (t *Text) String() string                     { return t.Value }
func (t *Text) Accept(visitor Visitor) interface{} { return visitor.VisitText(t) }
func (t *Text) Position() Position                 { return t.Pos }
func (t *Text) childNode()                         {}

// SelfClosingElement is an element written as <name/>
type SelfClosingElement struct {
	StartTag StartTag
}

// NewSelfClosing creates a self-closing element
func NewSelfClosing(name string, attributes ...Attribute) *SelfClosingElement {
	return &SelfClosingElement{StartTag: StartTag{Name: Identifier(name), Attributes: attributes}}
}

// String returns the element as <name attr="value"/>
func (e *SelfClosingElement) String() string {
	return "<" + e.StartTag.inner() + "/>"
}

func (e *SelfClosingElement) Accept(visitor Visitor) interface{} {
	return visitor.VisitSelfClosingElement(e)
}

func (e *SelfClosingElement) Position() Position { return e.StartTag.Pos }
func (e *SelfClosingElement) Start() StartTag    { return e.StartTag }
func (e *SelfClosingElement) childNode()         {}
func (e *SelfClosingElement) elementNode()       {}

// ElementWithChildren is an element with a start tag, children and an end
// tag. The end tag name is not guaranteed to match the start tag name.
type ElementWithChildren struct {
	StartTag StartTag
	Children []Child
	EndTag   EndTag
}

// NewElement creates an element whose end tag repeats the start tag name
func NewElement(name string, attributes []Attribute, children ...Child) *ElementWithChildren {
	return &ElementWithChildren{
		StartTag: StartTag{Name: Identifier(name), Attributes: attributes},
		Children: children,
		EndTag:   EndTag{Name: Identifier(name)},
	}
}

// String returns the element and all of its children as markup
func (e *ElementWithChildren) String() string {
	var b strings.Builder
	b.WriteString(e.StartTag.String())
	for _, child := range e.Children {
		b.WriteString(child.String())
	}
	b.WriteString(e.EndTag.String())
	return b.String()
}

func (e *ElementWithChildren) Accept(visitor Visitor) interface{} {
	return visitor.VisitElementWithChildren(e)
}

func (e *ElementWithChildren) Position() Position { return e.StartTag.Pos }
func (e *ElementWithChildren) Start() StartTag    { return e.StartTag }
func (e *ElementWithChildren) childNode()         {}
func (e *ElementWithChildren) elementNode()       {}

// Elements returns the element children, skipping text
func (e *ElementWithChildren) Elements() []Element {
	var elems []Element
	for _, child := range e.Children {
		if elem, ok := child.(Element); ok {
			elems = append(elems, elem)
		}
	}
	return elems
}
