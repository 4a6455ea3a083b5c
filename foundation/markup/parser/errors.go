// File: errors.go
// Title: Markup Parser Errors
// Description: Defines the structured syntax error returned by grammar rules
//              and the sentinel errors for limits enforced by the parser.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Bounded the input window used for error excerpts

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
	mdwstringx "github.com/msto63/mdwmarkup/foundation/utils/stringx"
)

var (
	// ErrMaxDepth is wrapped by the SyntaxError raised when elements nest
	// deeper than Options.MaxDepth
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")

	// ErrInputTooLong is returned when the input exceeds Options.MaxInputLength
	ErrInputTooLong = errors.New("input exceeds maximum length")

	// ErrTrailingInput is wrapped by the SyntaxError raised for content after
	// the root element when Options.RequireComplete is set
	ErrTrailingInput = errors.New("unexpected content after root element")
)

// foundSnippetLength limits the excerpt of the input shown in errors
const foundSnippetLength = 16

// foundWindowBytes bounds the input inspected for an excerpt. It holds at
// least foundSnippetLength+1 runes, so truncation is still detected.
const foundWindowBytes = (foundSnippetLength + 1) * utf8.UTFMax

// SyntaxError describes where and why a grammar rule failed
type SyntaxError struct {
	Rule     string          // Innermost named rule that failed
	Expected string          // What the rule expected at Pos
	Found    string          // Excerpt of the input at Pos
	Pos      mdwast.Position // Position of the failure
	Fatal    bool            // Fatal errors are not recovered by Alt or Many0
	Err      error           // Optional sentinel cause
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at line %d, column %d: expected %s, found %s",
		e.Pos.Line, e.Pos.Column, e.Expected, e.Found)
	if e.Rule != "" {
		msg += " (in " + e.Rule + ")"
	}
	return msg
}

// Unwrap returns the sentinel cause, if any
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// fail creates a recoverable syntax error at in
func fail(in Input, expected string) *SyntaxError {
	return &SyntaxError{
		Expected: expected,
		Found:    describe(in),
		Pos:      in.Pos(),
	}
}

// describe returns a short quoted excerpt of the input at in. Its cost
// does not depend on the length of the remaining input.
func describe(in Input) string {
	if in.AtEnd() {
		return "end of input"
	}
	rest := in.Rest()
	if len(rest) > foundWindowBytes {
		rest = rest[:foundWindowBytes]
	}
	return strconv.Quote(mdwstringx.Truncate(rest, foundSnippetLength, "..."))
}

// isFatal reports whether err must abort the whole parse
func isFatal(err error) bool {
	var syntaxErr *SyntaxError
	return errors.As(err, &syntaxErr) && syntaxErr.Fatal
}

// furthest returns whichever error occurred later in the input, preferring
// the first on ties
func furthest(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	var ea, eb *SyntaxError
	if !errors.As(a, &ea) || !errors.As(b, &eb) {
		return a
	}
	if eb.Pos.Offset > ea.Pos.Offset {
		return b
	}
	return a
}
