package ast

import (
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

// FuncDefNode defines a function, named or anonymous. AutoReturn is
// true for an inline `-> expr` body (the expression's value is the
// function's result even without an explicit return) and false for a
// block body (a NEWLINE after the parameter list, statements, then
// `end`).
type FuncDefNode struct {
	Name       *token.Token
	Params     []token.Token
	Body       Node
	AutoReturn bool
	span       source.Span
}

func NewFuncDefNode(name *token.Token, params []token.Token, body Node, autoReturn bool, span source.Span) *FuncDefNode {
	return &FuncDefNode{Name: name, Params: params, Body: body, AutoReturn: autoReturn, span: span}
}

func (n *FuncDefNode) Span() source.Span { return n.span }

// CallNode applies Callee to Args, evaluated left to right.
type CallNode struct {
	Callee Node
	Args   []Node
	span   source.Span
}

func NewCallNode(callee Node, args []Node, span source.Span) *CallNode {
	return &CallNode{Callee: callee, Args: args, span: span}
}

func (n *CallNode) Span() source.Span { return n.span }
