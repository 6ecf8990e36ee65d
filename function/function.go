/*
File    : loxwalk/function/function.go
Derived from go-mix/function/function.go (Akash Maji)
*/

// Package function holds the two values.Callable implementations the
// interpreter dispatches calls to: user-defined functions, which close
// over their defining environment, and native functions implemented in Go.
package function

import (
	"fmt"

	"github.com/akashmaji946/loxwalk/environment"
	"github.com/akashmaji946/loxwalk/parser"
	"github.com/akashmaji946/loxwalk/values"
)

// UserFunction is a `fn` declaration's runtime value. Closure is the
// environment active at the point the function was declared — capturing
// it by pointer, rather than copying its bindings, is what lets the
// function see later assignments to its enclosing scope and vice versa.
type UserFunction struct {
	Decl    *parser.FunctionStmt
	Closure *environment.Environment
}

func NewUserFunction(decl *parser.FunctionStmt, closure *environment.Environment) *UserFunction {
	return &UserFunction{Decl: decl, Closure: closure}
}

func (*UserFunction) Type() values.Type { return values.CallableType }

func (f *UserFunction) String() string { return fmt.Sprintf("<fn %s>", f.Decl.Name.Literal) }

func (f *UserFunction) Arity() int { return len(f.Decl.Params) }

func (f *UserFunction) CallableName() string { return f.Decl.Name.Literal }

// Name, Params, and Body expose the parsed declaration to the interpreter,
// which performs the actual call (binding arguments into a fresh
// environment nested under Closure and executing Body against it).
func (f *UserFunction) Name() string            { return f.Decl.Name.Literal }
func (f *UserFunction) Params() []string {
	names := make([]string, len(f.Decl.Params))
	for i, p := range f.Decl.Params {
		names[i] = p.Literal
	}
	return names
}
func (f *UserFunction) Body() []parser.Stmt { return f.Decl.Body }

// Native wraps a builtin implemented directly in Go, e.g. clock(). Fn never
// fails — a native that could fail would need a *values.RuntimeError
// return, but clock() is the only one this build ships.
type Native struct {
	Name string
	Fn   func(args []values.Value) values.Value
	Arg  int
}

func (*Native) Type() values.Type { return values.CallableType }

func (n *Native) String() string { return "<native fn>" }

func (n *Native) Arity() int { return n.Arg }

func (n *Native) CallableName() string { return n.Name }
