// File: input.go
// Title: Markup Parser Input Cursor
// Description: Implements the immutable input cursor that grammar rules
//              receive and return. Tracks byte offset, line and column.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package parser

import (
	"unicode/utf8"

	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
)

// Input is a read position in a source string. It is a value type: rules
// return a new Input instead of moving a shared cursor, so a failed
// alternative leaves the caller's Input untouched.
type Input struct {
	src    string
	offset int
	line   int
	column int
}

// NewInput creates an Input positioned at the start of src
func NewInput(src string) Input {
	return Input{src: src, line: 1, column: 1}
}

// Rest returns the unconsumed part of the source
func (in Input) Rest() string {
	return in.src[in.offset:]
}

// AtEnd reports whether all input has been consumed
func (in Input) AtEnd() bool {
	return in.offset >= len(in.src)
}

// Offset returns the byte offset into the source
func (in Input) Offset() int {
	return in.offset
}

// Pos returns the current source position
func (in Input) Pos() mdwast.Position {
	return mdwast.Position{Line: in.line, Column: in.column, Offset: in.offset}
}

// peek decodes the next rune. size is 0 at the end of input.
func (in Input) peek() (rune, int) {
	if in.AtEnd() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(in.src[in.offset:])
}

// advance returns a copy of in moved forward by n bytes
func (in Input) advance(n int) Input {
	end := in.offset + n
	for _, r := range in.src[in.offset:end] {
		if r == '\n' {
			in.line++
			in.column = 1
		} else {
			in.column++
		}
	}
	in.offset = end
	return in
}
