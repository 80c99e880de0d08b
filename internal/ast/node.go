package ast

// Node is the base interface every AST node satisfies.
type Node interface {
	// Type returns the node's kind, e.g. "JSONObjectExpression".
	Type() string

	// Pos returns the node's start byte offset in the source.
	Pos() int

	// End returns the node's end byte offset (exclusive) in the source.
	End() int

	// ParentNode returns the node's parent, or nil for the program root.
	// The link is non-owning: walks that free or clone a tree must not
	// follow it.
	ParentNode() Node

	// SetParent assigns the parent back-reference. Called once, during
	// parsing.
	SetParent(Node)

	// SourceLoc returns the node's line/column span.
	SourceLoc() *SourceLocation

	// SourceRange returns the node's byte-offset span.
	SourceRange() *Range
}

// Expression is satisfied by every node kind that can appear as a JSON
// value: identifiers, literals, objects, arrays, and the computed-form
// unary/binary/template nodes.
type Expression interface {
	Node
	jsonExpressionNode()
}

// Position is a source position: 1-based line, 0-based column.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation pairs a start and end Position.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Range is a pair of byte offsets [start, end) into the source.
type Range [2]int

// BaseNode is embedded by every concrete node type and implements the
// position/parent portion of the Node interface.
//
//nolint:govet // field order kept for JSON output readability, not alignment
type BaseNode struct {
	NodeType string          `json:"type"`
	Loc      *SourceLocation `json:"loc,omitempty"`
	Rng      *Range          `json:"range,omitempty"`
	Start    int             `json:"-"`
	EndPos   int             `json:"-"`
	Parent   Node            `json:"-"`
}

func (n *BaseNode) Type() string             { return n.NodeType }
func (n *BaseNode) Pos() int                 { return n.Start }
func (n *BaseNode) End() int                 { return n.EndPos }
func (n *BaseNode) ParentNode() Node         { return n.Parent }
func (n *BaseNode) SetParent(p Node)         { n.Parent = p }
func (n *BaseNode) SourceLoc() *SourceLocation { return n.Loc }
func (n *BaseNode) SourceRange() *Range      { return n.Rng }
