// Package ast defines the tree representation the translation pipeline
// operates on: a typed, source-ranged tree of statements and expressions
// mirroring the Swift-family source and carrying enough information to be
// rewritten, pass by pass, into a Kotlin-family shape.
package ast

import "fmt"

// Position is a single line/column location in a source file.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Range is a half-open source span. A nil *Range means "synthesized node,
// no source range" (e.g. a node manufactured by a pass).
type Range struct {
	Start Position
	End   Position
}

// Contains reports whether r fully contains other.
func (r *Range) Contains(other *Range) bool {
	if r == nil || other == nil {
		return true
	}
	if other.Start.Line < r.Start.Line || (other.Start.Line == r.Start.Line && other.Start.Column < r.Start.Column) {
		return false
	}
	if other.End.Line > r.End.Line || (other.End.Line == r.End.Line && other.End.Column > r.End.Column) {
		return false
	}
	return true
}

// Node is the base interface implemented by every tree node.
type Node interface {
	// Pos returns the node's source range, or nil for a synthesized node.
	Pos() *Range
	// String renders a debug form of the node, not target source text.
	String() string
	// Tree returns a label + ordered-children projection used for diagnostics.
	Tree() PrintableTree
}

// PrintableTree is a diagnostics-only projection of a node: a label and its
// ordered children. It intentionally does not attempt to be a faithful
// render of target syntax — render.Renderer does that.
type PrintableTree struct {
	Label    string
	Children []PrintableTree
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
	// TypeName returns the target-typed string for this expression when
	// statically known, or "" otherwise. Parentheses, Optional, and Dot
	// propagate the inner/right-hand type; ForceValue strips one trailing
	// "?" from its operand's type.
	TypeName() string
}

// BaseNode carries the optional source range shared by every node.
type BaseNode struct {
	Range *Range
}

func (b BaseNode) Pos() *Range { return b.Range }

// TypedBase carries BaseNode plus the expression type-name accessor used by
// expression variants that don't otherwise propagate or compute one.
type TypedBase struct {
	BaseNode
	Type string
}

func (t TypedBase) TypeName() string { return t.Type }

// leaf builds a childless PrintableTree, used by nodes with no Node children.
func leaf(label string) PrintableTree { return PrintableTree{Label: label} }
