/*
File    : loxwalk/interpreter/interpreter.go
Derived from go-mix/eval/evaluator.go (Akash Maji)
*/

// Package interpreter tree-walks a parsed program against a chain of
// environments, producing side effects (print) and a possible runtime
// error. Unlike the teacher's Evaluator, which represents return/break/
// continue and errors as sentinel object values flowing through a single
// Eval return, this interpreter uses Go's native idiom: explicit typed
// returns. Statement execution returns (execResult, *values.RuntimeError);
// a genuine fault takes the error channel, and a `return` statement's
// non-error control transfer takes the execResult.Returned flag — the two
// channels are composed rather than conflated into one value space.
package interpreter

import (
	"io"
	"os"

	"github.com/akashmaji946/loxwalk/environment"
	"github.com/akashmaji946/loxwalk/function"
	"github.com/akashmaji946/loxwalk/lexer"
	"github.com/akashmaji946/loxwalk/parser"
	"github.com/akashmaji946/loxwalk/values"
)

// Interpreter holds the execution state that persists across statements —
// in particular the global environment, so a REPL can feed it one
// statement at a time and have earlier variables still be visible.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Out     io.Writer
}

// New builds an Interpreter with clock() pre-bound in the global
// environment and output directed at w (os.Stdout if w is nil).
func New(w io.Writer) *Interpreter {
	if w == nil {
		w = os.Stdout
	}
	globals := environment.New(nil)
	globals.Define("clock", function.NewClock())
	return &Interpreter{Globals: globals, env: globals, Out: w}
}

// execResult is how a statement reports a `return` unwinding up to the
// nearest enclosing function call; Returned is false for every statement
// that completes normally.
type execResult struct {
	Returned bool
	Value    values.Value
	// Keyword is the `return` token that produced this result, kept so a
	// return escaping all the way to the top level can still be blamed on
	// a source position.
	Keyword lexer.Token
}

var normal = execResult{}

// Run executes a whole program against the interpreter's current
// environment (the global one, unless Run is called while already nested —
// it never is, in this build). A bare top-level `return` is a runtime
// error, matching the reference implementation.
func (in *Interpreter) Run(stmts []parser.Stmt) *values.RuntimeError {
	for _, stmt := range stmts {
		res, err := in.execute(stmt, in.env)
		if err != nil {
			return err
		}
		if res.Returned {
			return values.NewRuntimeError(res.Keyword, "Only functions can return values.")
		}
	}
	return nil
}

func (in *Interpreter) executeBlock(stmts []parser.Stmt, env *environment.Environment) (execResult, *values.RuntimeError) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		res, err := in.execute(stmt, env)
		if err != nil {
			return normal, err
		}
		if res.Returned {
			return res, nil
		}
	}
	return normal, nil
}

// CallUserFunction binds args into a fresh environment nested under the
// function's closure and executes its body. It is exported so the
// interpreter package remains the single place call semantics live, even
// though function.UserFunction carries its own declaration and closure.
func (in *Interpreter) CallUserFunction(fn *function.UserFunction, args []values.Value) (values.Value, *values.RuntimeError) {
	callEnv := environment.New(fn.Closure)
	params := fn.Params()
	for i, name := range params {
		callEnv.Define(name, args[i])
	}
	res, err := in.executeBlock(fn.Body(), callEnv)
	if err != nil {
		return nil, err
	}
	if res.Returned {
		return res.Value, nil
	}
	return values.NilValue, nil
}
