/*
File    : loxwalk/interpreter/interpreter_statements.go
Derived from go-mix/eval/eval_statements.go (Akash Maji)
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/loxwalk/environment"
	"github.com/akashmaji946/loxwalk/function"
	"github.com/akashmaji946/loxwalk/lexer"
	"github.com/akashmaji946/loxwalk/parser"
	"github.com/akashmaji946/loxwalk/values"
)

// execute dispatches a single statement. env is the environment it runs
// against; every case uses it directly except Block, which installs its own
// nested environment first.
func (in *Interpreter) execute(stmt parser.Stmt, env *environment.Environment) (execResult, *values.RuntimeError) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := in.evaluate(s.Expression, env)
		return normal, err

	case *parser.PrintStmt:
		v, err := in.evaluate(s.Expression, env)
		if err != nil {
			return normal, err
		}
		if v.Type() != values.NilType {
			fmt.Fprintln(in.Out, v.String())
		}
		return normal, nil

	case *parser.VarStmt:
		var v values.Value = values.NilValue
		if s.Initializer != nil {
			var err *values.RuntimeError
			v, err = in.evaluate(s.Initializer, env)
			if err != nil {
				return normal, err
			}
		}
		env.Define(s.Name.Literal, v)
		return normal, nil

	case *parser.BlockStmt:
		return in.executeBlock(s.Statements, environment.New(env))

	case *parser.IfStmt:
		cond, err := in.evaluate(s.Condition, env)
		if err != nil {
			return normal, err
		}
		if values.Truthy(cond) {
			return in.execute(s.ThenBranch, env)
		}
		if s.ElseBranch != nil {
			return in.execute(s.ElseBranch, env)
		}
		return normal, nil

	case *parser.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition, env)
			if err != nil {
				return normal, err
			}
			if !values.Truthy(cond) {
				return normal, nil
			}
			res, err := in.execute(s.Body, env)
			if err != nil {
				return normal, err
			}
			if res.Returned {
				return res, nil
			}
		}

	case *parser.FunctionStmt:
		fn := function.NewUserFunction(s, env)
		env.Define(s.Name.Literal, fn)
		return normal, nil

	case *parser.ReturnStmt:
		var v values.Value = values.NilValue
		if s.Value != nil {
			var err *values.RuntimeError
			v, err = in.evaluate(s.Value, env)
			if err != nil {
				return normal, err
			}
		}
		return execResult{Returned: true, Value: v, Keyword: s.Keyword}, nil

	case *parser.ClassStmt:
		env.Define(s.Name.Literal, newClassStub(s.Name.Literal))
		return normal, nil

	default:
		return normal, values.NewRuntimeError(lexer.Token{}, "unsupported statement")
	}
}
