// Package ast defines Ozen's abstract syntax tree: a closed set of node
// types, each carrying the source.Span it was parsed from. Nodes are a
// plain sum type rather than a visitor hierarchy: the evaluator needs
// to thread a value-carrying outcome through every visit, which a void
// Visit(node) method can't express directly, so eval type-switches over
// Node instead.
package ast

import (
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

// Node is any AST node: an expression or a statement. Every node knows
// the span of source text it was built from.
type Node interface {
	Span() source.Span
}

// NumberNode is an integer or float literal, carrying the token the
// lexer produced (INT or FLOAT, with its payload already decoded).
type NumberNode struct {
	Tok token.Token
}

func (n *NumberNode) Span() source.Span { return n.Tok.Span }

// StringNode is a string literal.
type StringNode struct {
	Tok token.Token
}

func (n *StringNode) Span() source.Span { return n.Tok.Span }

// ListNode is a `[elem, elem, ...]` literal. Its span is given
// explicitly by the enclosing brackets rather than derived from its
// elements, since an empty list has no elements to derive it from.
type ListNode struct {
	Elements []Node
	span     source.Span
}

func NewListNode(elements []Node, span source.Span) *ListNode {
	return &ListNode{Elements: elements, span: span}
}

func (n *ListNode) Span() source.Span { return n.span }

// VarAccessNode reads a variable by name.
type VarAccessNode struct {
	Name token.Token
}

func (n *VarAccessNode) Span() source.Span { return n.Name.Span }

// VarAssignNode binds Name to the value of Value in the current scope.
type VarAssignNode struct {
	Name  token.Token
	Value Node
}

func (n *VarAssignNode) Span() source.Span { return n.Name.Span.Cover(n.Value.Span()) }

// BinOpNode is a binary operator application: arithmetic, comparison,
// or boolean.
type BinOpNode struct {
	Left  Node
	Op    token.Token
	Right Node
}

func (n *BinOpNode) Span() source.Span { return n.Left.Span().Cover(n.Right.Span()) }

// UnaryOpNode is a unary `-`, `+`, or `not` application.
type UnaryOpNode struct {
	Op   token.Token
	Node Node
}

func (n *UnaryOpNode) Span() source.Span { return n.Op.Span.Cover(n.Node.Span()) }
