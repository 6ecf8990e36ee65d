/*
File    : loxwalk/interpreter/interpreter_expressions.go
Derived from go-mix/eval/eval_expressions.go (Akash Maji)
*/
package interpreter

import (
	"math"
	"strconv"

	"github.com/akashmaji946/loxwalk/environment"
	"github.com/akashmaji946/loxwalk/function"
	"github.com/akashmaji946/loxwalk/lexer"
	"github.com/akashmaji946/loxwalk/parser"
	"github.com/akashmaji946/loxwalk/values"
)

// evaluate dispatches a single expression to its runtime value.
func (in *Interpreter) evaluate(expr parser.Expr, env *environment.Environment) (values.Value, *values.RuntimeError) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return literalValue(e), nil

	case *parser.GroupingExpr:
		return in.evaluate(e.Expression, env)

	case *parser.VariableExpr:
		v, ok := env.Get(e.Name.Literal)
		if !ok {
			return nil, values.NewRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Literal)
		}
		return v, nil

	case *parser.AssignExpr:
		v, err := in.evaluate(e.Value, env)
		if err != nil {
			return nil, err
		}
		if !env.Assign(e.Name.Literal, v) {
			return nil, values.NewRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Literal)
		}
		return v, nil

	case *parser.UnaryExpr:
		return in.evaluateUnary(e, env)

	case *parser.BinaryExpr:
		return in.evaluateBinary(e, env)

	case *parser.LogicalExpr:
		return in.evaluateLogical(e, env)

	case *parser.CallExpr:
		return in.evaluateCall(e, env)

	default:
		return nil, values.NewRuntimeError(lexer.Token{}, "unsupported expression")
	}
}

func literalValue(e *parser.LiteralExpr) values.Value {
	switch e.Kind {
	case parser.LiteralNumber:
		f, _ := strconv.ParseFloat(e.Tok.Literal, 64)
		return values.Number(f)
	case parser.LiteralString:
		return values.String(e.Tok.Literal)
	case parser.LiteralTrue:
		return values.Boolean(true)
	case parser.LiteralFalse:
		return values.Boolean(false)
	default:
		return values.NilValue
	}
}

func (in *Interpreter) evaluateUnary(e *parser.UnaryExpr, env *environment.Environment) (values.Value, *values.RuntimeError) {
	right, err := in.evaluate(e.Right, env)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(values.Number)
		if !ok {
			return nil, values.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		b, ok := right.(values.Boolean)
		if !ok {
			return nil, values.NewRuntimeError(e.Operator, "Operand must be a Boolean.")
		}
		return !b, nil
	default:
		return nil, values.NewRuntimeError(e.Operator, "unsupported unary operator")
	}
}

func (in *Interpreter) evaluateLogical(e *parser.LogicalExpr, env *environment.Environment) (values.Value, *values.RuntimeError) {
	left, err := in.evaluate(e.Left, env)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == lexer.OR {
		if values.Truthy(left) {
			return left, nil
		}
	} else {
		if !values.Truthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right, env)
}

func (in *Interpreter) evaluateBinary(e *parser.BinaryExpr, env *environment.Environment) (values.Value, *values.RuntimeError) {
	left, err := in.evaluate(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		if ln, lok := left.(values.Number); lok {
			if rn, rok := right.(values.Number); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(values.String); lok {
			if rs, rok := right.(values.String); rok {
				return ls + rs, nil
			}
		}
		return nil, values.NewRuntimeError(e.Operator, "Operand must be both numbers or both strings.")

	case lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.MOD:
		ln, lok := left.(values.Number)
		rn, rok := right.(values.Number)
		if !lok || !rok {
			return nil, values.NewRuntimeError(e.Operator, "Operand must be numbers.")
		}
		switch e.Operator.Type {
		case lexer.MINUS:
			return ln - rn, nil
		case lexer.STAR:
			return ln * rn, nil
		case lexer.SLASH:
			return ln / rn, nil
		default:
			return values.Number(math.Mod(float64(ln), float64(rn))), nil
		}

	case lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		ln, lok := left.(values.Number)
		rn, rok := right.(values.Number)
		if !lok || !rok {
			return nil, values.NewRuntimeError(e.Operator, "Operand must be numbers.")
		}
		switch e.Operator.Type {
		case lexer.GREATER:
			return values.Boolean(ln > rn), nil
		case lexer.GREATER_EQUAL:
			return values.Boolean(ln >= rn), nil
		case lexer.LESS:
			return values.Boolean(ln < rn), nil
		default:
			return values.Boolean(ln <= rn), nil
		}

	case lexer.EQUAL_EQUAL:
		return values.Boolean(values.Equal(left, right)), nil
	case lexer.BANG_EQUAL:
		return values.Boolean(!values.Equal(left, right)), nil

	default:
		return nil, values.NewRuntimeError(e.Operator, "unsupported binary operator")
	}
}

func (in *Interpreter) evaluateCall(e *parser.CallExpr, env *environment.Environment) (values.Value, *values.RuntimeError) {
	callee, err := in.evaluate(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]values.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *function.UserFunction:
		if len(args) != fn.Arity() {
			return nil, values.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return in.CallUserFunction(fn, args)

	case *function.Native:
		if len(args) != fn.Arity() {
			return nil, values.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return fn.Fn(args), nil

	default:
		return nil, values.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
}
