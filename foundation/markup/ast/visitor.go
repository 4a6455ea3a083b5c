// File: visitor.go
// Title: Markup Syntax Tree Visitors
// Description: Implements the visitor pattern for markup trees, a collector
//              visitor and the Walk traversal helper.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial visitor implementation

package ast

// Visitor interface for traversing tree nodes using the visitor pattern
type Visitor interface {
	VisitText(text *Text) interface{}
	VisitSelfClosingElement(elem *SelfClosingElement) interface{}
	VisitElementWithChildren(elem *ElementWithChildren) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// VisitElementWithChildren descends with the BaseVisitor itself, so an
// embedding visitor that needs its own methods called on descendants must
// override it.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitText(text *Text) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitSelfClosingElement(elem *SelfClosingElement) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitElementWithChildren(elem *ElementWithChildren) interface{} {
	for _, child := range elem.Children {
		child.Accept(bv)
	}
	return nil
}

// CollectorVisitor gathers all elements, texts and attributes of a tree in
// document order
type CollectorVisitor struct {
	Elements   []Element
	Texts      []*Text
	Attributes []Attribute
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{}
}

func (cv *CollectorVisitor) VisitText(text *Text) interface{} {
	cv.Texts = append(cv.Texts, text)
	return nil
}

func (cv *CollectorVisitor) VisitSelfClosingElement(elem *SelfClosingElement) interface{} {
	cv.Elements = append(cv.Elements, elem)
	cv.Attributes = append(cv.Attributes, elem.StartTag.Attributes...)
	return nil
}

func (cv *CollectorVisitor) VisitElementWithChildren(elem *ElementWithChildren) interface{} {
	cv.Elements = append(cv.Elements, elem)
	cv.Attributes = append(cv.Attributes, elem.StartTag.Attributes...)
	for _, child := range elem.Children {
		child.Accept(cv)
	}
	return nil
}

// CollectNodes runs a CollectorVisitor over node
func CollectNodes(node Node) *CollectorVisitor {
	collector := NewCollectorVisitor()
	node.Accept(collector)
	return collector
}

// WalkFunc is called for every node visited by Walk. depth is 1 for the
// node passed to Walk. Returning false skips the children of node.
type WalkFunc func(node Node, depth int) bool

// Walk traverses the tree depth-first, left-to-right
func Walk(node Node, fn WalkFunc) {
	walk(node, 1, fn)
}

func walk(node Node, depth int, fn WalkFunc) {
	if !fn(node, depth) {
		return
	}
	if elem, ok := node.(*ElementWithChildren); ok {
		for _, child := range elem.Children {
			walk(child, depth+1, fn)
		}
	}
}
