// File: doc.go
// Title: Markup Syntax Tree Package Documentation
// Description: Defines the syntax tree produced by the markup parser and
//              consumed by the analyzer and the renderers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial syntax tree implementation

/*
Package ast defines the syntax tree for mDW markup documents.

A document is a single Element. An Element is either a SelfClosingElement
(<br/>) or an ElementWithChildren whose children are Text runs and nested
elements in source order. Child and Element are closed interfaces: only the
types in this package implement them, so a type switch over *Text,
*SelfClosingElement and *ElementWithChildren is exhaustive.

The tree is built once by the parser and treated as read-only afterwards.
Start and end tag names of an ElementWithChildren are kept as written; the
parser does not compare them, that is the job of the analyzer package.

Every node renders back to markup with String() and supports the visitor
pattern through Accept. Walk offers a simpler depth-first traversal.
*/
package ast
