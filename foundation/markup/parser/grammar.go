// File: grammar.go
// Title: Markup Grammar Rules
// Description: Defines the grammar of the markup language as composable
//              rules: text, tag names, attributes, start and end tags, and
//              the two element forms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial grammar

package parser

import (
	"fmt"
	"strings"

	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
)

const (
	textDelimiters      = "{<>}"
	attributeDelimiters = "\"<>'/= \t\n\r"
)

func isTextChar(r rune) bool {
	return !strings.ContainsRune(textDelimiters, r)
}

func isAttributeChar(r rune) bool {
	return !strings.ContainsRune(attributeDelimiters, r)
}

// isTagNameChar accepts ASCII letters and digits only
func isTagNameChar(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

func toIdentifier(s string) mdwast.Identifier {
	return mdwast.Identifier(s)
}

var (
	multispace0 = Multispace0()
	lt          = Char('<')
	gt          = Char('>')
	equals      = Char('=')

	textChar      = Satisfy("text character", isTextChar)
	attributeChar = NoneOf(attributeDelimiters)

	text = Label[*mdwast.Text]("text", parseText)

	tagName = Label("tag name",
		Map(TakeWhile1("alphanumeric tag name", isTagNameChar), toIdentifier))

	attributeName = Label("attribute name",
		Map(TakeWhile1("attribute name", isAttributeChar), toIdentifier))

	attributeValueDouble = quotedValue('"')
	attributeValueSingle = quotedValue('\'')
	attributeValue       = Label("attribute value",
		Alt(attributeValueDouble, attributeValueSingle))

	attribute  = Label[mdwast.Attribute]("attribute", parseAttribute)
	attributes = Many0(attribute)

	startTag = Label[mdwast.StartTag]("start tag", parseStartTag)
	endTag   = Label[mdwast.EndTag]("end tag", parseEndTag)
)

// parseText matches one or more text characters
func parseText(in Input) (Input, *mdwast.Text, error) {
	next, value, err := TakeWhile1("text", isTextChar)(in)
	if err != nil {
		return in, nil, err
	}
	return next, &mdwast.Text{Value: value, Pos: in.Pos()}, nil
}

// quotedValue matches a literal enclosed in quote with no escapes
func quotedValue(quote rune) Rule[mdwast.AttributeValue] {
	body := TakeWhile0(func(r rune) bool { return r != quote })
	return Map(Delimited(Char(quote), body, Char(quote)), func(literal string) mdwast.AttributeValue {
		return mdwast.AttributeValue{Kind: mdwast.ValueString, Literal: literal, Quote: quote}
	})
}

// parseAttribute matches name = value with optional whitespace around each
// part. A name without a value fails the whole attribute.
func parseAttribute(in Input) (Input, mdwast.Attribute, error) {
	var zero mdwast.Attribute

	next, _, _ := multispace0(in)
	pos := next.Pos()
	next, name, err := attributeName(next)
	if err != nil {
		return in, zero, err
	}
	next, _, _ = multispace0(next)
	if next, _, err = equals(next); err != nil {
		return in, zero, err
	}
	next, _, _ = multispace0(next)
	next, value, err := attributeValue(next)
	if err != nil {
		return in, zero, err
	}
	return next, mdwast.Attribute{Name: name, Value: value, Pos: pos}, nil
}

// parseStartTag matches <name attributes> with optional leading whitespace
func parseStartTag(in Input) (Input, mdwast.StartTag, error) {
	var zero mdwast.StartTag

	next, _, _ := multispace0(in)
	pos := next.Pos()
	next, _, err := lt(next)
	if err != nil {
		return in, zero, err
	}
	next, name, err := tagName(next)
	if err != nil {
		return in, zero, err
	}
	next, attrs, err := attributes(next)
	if err != nil {
		return in, zero, err
	}
	next, _, _ = multispace0(next)
	if next, _, err = gt(next); err != nil {
		return in, zero, err
	}
	return next, mdwast.StartTag{Name: name, Attributes: attrs, Pos: pos}, nil
}

// parseEndTag matches </name> without inner whitespace
func parseEndTag(in Input) (Input, mdwast.EndTag, error) {
	var zero mdwast.EndTag

	next, _, err := Tag("</")(in)
	if err != nil {
		return in, zero, err
	}
	next, name, err := tagName(next)
	if err != nil {
		return in, zero, err
	}
	if next, _, err = gt(next); err != nil {
		return in, zero, err
	}
	return next, mdwast.EndTag{Name: name, Pos: in.Pos()}, nil
}

// grammar holds the recursive rules, which depend on the nesting limit
type grammar struct {
	maxDepth int // 0 means unbounded
}

// element matches an element with children or, failing that, a
// self-closing element, both from the same input
func (g grammar) element(depth int) Rule[mdwast.Element] {
	return Label("element", Alt(g.elementWithChildren(depth), g.selfClosingElement(depth)))
}

// elementWithChildren matches a start tag, any children and an end tag.
// Tag names are not compared.
func (g grammar) elementWithChildren(depth int) Rule[mdwast.Element] {
	return func(in Input) (Input, mdwast.Element, error) {
		next, start, err := startTag(in)
		if err != nil {
			return in, nil, err
		}
		if err := g.checkDepth(in, depth); err != nil {
			return in, nil, err
		}
		next, children, err := g.children(depth)(next)
		if err != nil {
			return in, nil, err
		}
		next, end, err := endTag(next)
		if err != nil {
			return in, nil, err
		}
		return next, &mdwast.ElementWithChildren{StartTag: start, Children: children, EndTag: end}, nil
	}
}

// selfClosingElement matches <name attributes/>
func (g grammar) selfClosingElement(depth int) Rule[mdwast.Element] {
	return Label[mdwast.Element]("self-closing element", func(in Input) (Input, mdwast.Element, error) {
		next, _, err := lt(in)
		if err != nil {
			return in, nil, err
		}
		next, name, err := tagName(next)
		if err != nil {
			return in, nil, err
		}
		next, attrs, err := attributes(next)
		if err != nil {
			return in, nil, err
		}
		next, _, _ = multispace0(next)
		if next, _, err = Tag("/>")(next); err != nil {
			return in, nil, err
		}
		if err := g.checkDepth(in, depth); err != nil {
			return in, nil, err
		}
		start := mdwast.StartTag{Name: name, Attributes: attrs, Pos: in.Pos()}
		return next, &mdwast.SelfClosingElement{StartTag: start}, nil
	})
}

func (g grammar) children(depth int) Rule[[]mdwast.Child] {
	return Many0(g.child(depth))
}

// child matches text or a nested element
func (g grammar) child(depth int) Rule[mdwast.Child] {
	return Alt(
		Map(text, func(t *mdwast.Text) mdwast.Child { return t }),
		Map(g.element(depth+1), func(e mdwast.Element) mdwast.Child { return e }),
	)
}

// checkDepth fails fatally when depth exceeds the configured limit
func (g grammar) checkDepth(in Input, depth int) error {
	if g.maxDepth <= 0 || depth <= g.maxDepth {
		return nil
	}
	at, _, _ := multispace0(in)
	return &SyntaxError{
		Rule:     "element",
		Expected: fmt.Sprintf("at most %d levels of nesting", g.maxDepth),
		Found:    describe(at),
		Pos:      at.Pos(),
		Fatal:    true,
		Err:      ErrMaxDepth,
	}
}
