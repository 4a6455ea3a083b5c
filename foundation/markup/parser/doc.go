// File: doc.go
// Title: Markup Parser Package Documentation
// Description: Package parser turns markup text into a syntax tree using
//              small composable grammar rules.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

/*
Package parser parses mDW markup into an ast.Element.

The grammar is built from rules of type Rule[T], functions from an Input to
the remaining Input and a value. Input is an immutable cursor, so ordered
choice (Alt) can retry alternatives from the same position without undoing
anything. The rules are:

	text                one or more characters other than { < > }
	tag name            one or more ASCII letters or digits
	attribute name      one or more characters other than " < > ' / = and whitespace
	attribute value     "..." or '...' without escapes
	attribute           name = value, whitespace allowed around each part
	start tag           <name attributes>, leading whitespace allowed
	end tag             </name>
	self-closing        <name attributes/>
	element             start tag, children, end tag; else self-closing
	child               text or element

Start and end tag names are not compared; use the analyzer for that.

Parsing stops after the root element. The remainder is returned to the
caller unless Options.RequireComplete is set. Failures are *SyntaxError
values with the position and the expectation of the rule that got furthest.
Nesting depth can be limited with Options.MaxDepth; exceeding it yields a
SyntaxError wrapping ErrMaxDepth.

Example:

	p, err := parser.New(parser.Options{MaxDepth: 64})
	if err != nil {
		return err
	}
	elem, rest, err := p.Parse("<div class='x'>Hello</div>")
*/
package parser
