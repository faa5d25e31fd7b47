package object

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

// UserFunction is a function defined in Ozen source. The actual
// call-dispatch (arity checking, parameter binding, body evaluation)
// lives in the eval package, since it needs ast evaluation — which
// would import object and so cannot be imported back here.
//
// Fields:
//   - Name: the bound name, empty for an anonymous function literal
//   - Params: parameter names, bound by position at call time
//   - Body: the body node evaluated on each call
//   - AutoReturn: whether the body's value is the call's result even
//     without an explicit return
//   - DefiningContext: the context captured at definition time, the
//     closure environment every call extends
type UserFunction struct {
	base
	Name            string         // Bound name; empty for anonymous literals
	Params          []string       // Parameter names, bound by position
	Body            ast.Node       // Body evaluated on each call
	AutoReturn      bool           // Body's value is the call's result
	DefiningContext *scope.Context // Captured closure environment
}

// NewUserFunction creates a UserFunction closing over definingContext.
//
// Parameters:
//   - name: the function's bound name, or "" for an anonymous literal
//   - params: parameter names, bound by position at call time
//   - body: the body node evaluated on each call
//   - autoReturn: whether the body's value is the call's result
//   - definingContext: the context captured as the closure environment
//
// Returns:
//   - *UserFunction: the runtime function value
func NewUserFunction(name string, params []string, body ast.Node, autoReturn bool, definingContext *scope.Context) *UserFunction {
	return &UserFunction{Name: name, Params: params, Body: body, AutoReturn: autoReturn, DefiningContext: definingContext}
}

func (f *UserFunction) Type() Type { return UserFunctionType }

func (f *UserFunction) String() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return "<function " + name + ">"
}

func (f *UserFunction) WithSpan(span source.Span) Value {
	c := *f
	c.span = span
	return &c
}

func (f *UserFunction) Copy() Value {
	c := *f
	return &c
}

func (f *UserFunction) IsTrue() bool { return true }

// BuiltinFunction names a registered builtin; the builtin package owns
// the argument-name list and the Go function that executes it.
//
// Fields:
//   - Name: the built-in's public name, the key into builtin.Registry
type BuiltinFunction struct {
	base
	Name string // Public name, the key into builtin.Registry
}

// NewBuiltinFunction creates the value form of a registered built-in.
//
// Parameters:
//   - name: the built-in's public name, the key into builtin.Registry
//
// Returns:
//   - *BuiltinFunction: the runtime function value
func NewBuiltinFunction(name string) *BuiltinFunction {
	return &BuiltinFunction{Name: name}
}

func (f *BuiltinFunction) Type() Type { return BuiltinFunctionType }

func (f *BuiltinFunction) String() string {
	return "<built-in function " + f.Name + ">"
}

func (f *BuiltinFunction) WithSpan(span source.Span) Value {
	c := *f
	c.span = span
	return &c
}

func (f *BuiltinFunction) Copy() Value {
	c := *f
	return &c
}

func (f *BuiltinFunction) IsTrue() bool { return true }
