// File: analyzer.go
// Title: Markup Structural Analyzer
// Description: Checks that every element with children is closed by an end
//              tag with the same name, compared case-insensitively. Stops at
//              the first mismatch.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Nil and unknown nodes return ErrInvalidTree

// Package analyzer validates the structure of parsed markup trees.
package analyzer

import (
	"errors"
	"fmt"

	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
)

// ErrInvalidTree is returned for nil or unknown nodes in a tree
var ErrInvalidTree = errors.New("invalid markup tree")

// MismatchError reports an element whose end tag does not match its start tag
type MismatchError struct {
	Start    mdwast.Identifier
	End      mdwast.Identifier
	StartPos mdwast.Position
	EndPos   mdwast.Position
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("start and end tag are not equal. Start tag: %s, end tag: %s", e.Start, e.End)
}

// Analyze checks elem and its descendants depth-first, left-to-right and
// returns a *MismatchError for the first element whose start and end tag
// names differ ignoring case. Self-closing elements always pass. Children
// of a mismatched element are not inspected.
func Analyze(elem mdwast.Element) error {
	switch e := elem.(type) {
	case nil:
		return fmt.Errorf("%w: nil element", ErrInvalidTree)
	case *mdwast.SelfClosingElement:
		if e == nil {
			return fmt.Errorf("%w: nil self-closing element", ErrInvalidTree)
		}
		return nil
	case *mdwast.ElementWithChildren:
		if e == nil {
			return fmt.Errorf("%w: nil element with children", ErrInvalidTree)
		}
		if !e.StartTag.Name.EqualFold(e.EndTag.Name) {
			return &MismatchError{
				Start:    e.StartTag.Name,
				End:      e.EndTag.Name,
				StartPos: e.StartTag.Pos,
				EndPos:   e.EndTag.Pos,
			}
		}
		return AnalyzeChildren(e.Children)
	default:
		return fmt.Errorf("%w: unexpected element type %T", ErrInvalidTree, elem)
	}
}

// AnalyzeChildren analyzes the element children in order. Text is skipped.
// A nil child yields ErrInvalidTree.
func AnalyzeChildren(children []mdwast.Child) error {
	for _, child := range children {
		switch c := child.(type) {
		case *mdwast.Text:
			continue
		case mdwast.Element:
			if err := Analyze(c); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unexpected child type %T", ErrInvalidTree, child)
		}
	}
	return nil
}
