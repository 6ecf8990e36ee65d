/*
File    : loxwalk/parser/node.go
Derived from go-mix/parser/node.go (Akash Maji)
*/
package parser

import "github.com/akashmaji946/loxwalk/lexer"

// Node is the base of every AST node: it can render itself for debugging
// and tracing.
type Node interface {
	Literal() string
}

// Expr is any node that produces a value when evaluated.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that the interpreter executes for effect.
type Stmt interface {
	Node
	stmtNode()
}

// LiteralExpr is a number, string, boolean, or nil constant baked into the
// source text. Tok carries the exact token so error messages can point at
// it; Kind disambiguates nil/true/false, which share no common Go type.
type LiteralExpr struct {
	Tok  lexer.Token
	Kind LiteralKind
}

// LiteralKind tags which literal a LiteralExpr holds.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralTrue
	LiteralFalse
	LiteralNil
)

func (*LiteralExpr) exprNode() {}
func (l *LiteralExpr) Literal() string { return l.Tok.Literal }

// GroupingExpr is a parenthesized subexpression: (expr). Grouping exists
// purely to let the parser rebuild precedence the way the source text
// asked for; it carries no operator of its own.
type GroupingExpr struct {
	Expression Expr
}

func (*GroupingExpr) exprNode() {}
func (g *GroupingExpr) Literal() string { return "(group " + g.Expression.Literal() + ")" }

// UnaryExpr is a prefix operator applied to a single operand: -x, !x.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

func (*UnaryExpr) exprNode() {}
func (u *UnaryExpr) Literal() string { return "(" + u.Operator.Literal + " " + u.Right.Literal() + ")" }

// BinaryExpr is an infix arithmetic/comparison/equality operator: a + b,
// a == b, a < b.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) Literal() string {
	return "(" + b.Operator.Literal + " " + b.Left.Literal() + " " + b.Right.Literal() + ")"
}

// LogicalExpr is `and`/`or`. It is a distinct node from BinaryExpr because
// it short-circuits: the right operand is only evaluated when the left
// doesn't already decide the result.
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (*LogicalExpr) exprNode() {}
func (l *LogicalExpr) Literal() string {
	return "(" + l.Operator.Literal + " " + l.Left.Literal() + " " + l.Right.Literal() + ")"
}

// VariableExpr reads a variable's current value.
type VariableExpr struct {
	Name lexer.Token
}

func (*VariableExpr) exprNode() {}
func (v *VariableExpr) Literal() string { return v.Name.Literal }

// AssignExpr stores a new value into an already-declared variable and
// evaluates to that value, so `print x = 2;` both assigns and prints.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

func (*AssignExpr) exprNode() {}
func (a *AssignExpr) Literal() string { return "(= " + a.Name.Literal + " " + a.Value.Literal() + ")" }

// CallExpr invokes Callee with Args. Paren is the closing ')' token, kept
// so a runtime call error can report the call site.
type CallExpr struct {
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (*CallExpr) exprNode() {}
func (c *CallExpr) Literal() string { return "(call " + c.Callee.Literal() + ")" }

// ExpressionStmt evaluates an expression and discards the result, e.g. a
// bare call used for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) stmtNode() {}
func (s *ExpressionStmt) Literal() string { return s.Expression.Literal() }

// PrintStmt evaluates an expression and writes its display form followed
// by a newline; a nil value writes nothing.
type PrintStmt struct {
	Expression Expr
}

func (*PrintStmt) stmtNode() {}
func (s *PrintStmt) Literal() string { return "(print " + s.Expression.Literal() + ")" }

// VarStmt declares a new binding in the innermost scope, optionally
// initialized; an omitted initializer binds the name to nil.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (*VarStmt) stmtNode() {}
func (s *VarStmt) Literal() string { return "(var " + s.Name.Literal + ")" }

// BlockStmt introduces a new nested scope and runs Statements inside it.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}
func (s *BlockStmt) Literal() string { return "(block)" }

// IfStmt is a conditional with an optional else branch (nil when absent).
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func (*IfStmt) stmtNode() {}
func (s *IfStmt) Literal() string { return "(if " + s.Condition.Literal() + ")" }

// WhileStmt loops Body while Condition is truthy. `for` loops are
// desugared into a WhileStmt wrapping a BlockStmt at parse time, so the
// interpreter only ever needs to know about while.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}
func (s *WhileStmt) Literal() string { return "(while " + s.Condition.Literal() + ")" }

// FunctionStmt declares a named function: its parameter list and body.
// Also reused, with an empty Name, to build the runtime value for a
// function expression if the grammar is ever extended to allow one.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (*FunctionStmt) stmtNode() {}
func (s *FunctionStmt) Literal() string { return "(fn " + s.Name.Literal + ")" }

// ReturnStmt unwinds to the nearest enclosing function call with a value
// (nil when no expression follows `return`).
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (*ReturnStmt) stmtNode() {}
func (s *ReturnStmt) Literal() string { return "(return)" }

// ClassStmt is accepted by the parser as reserved syntax only: `class`,
// `super`, and `this` are tokenized and parsed but the interpreter refuses
// to instantiate or call a class value. No method/field/inheritance model
// is implemented.
type ClassStmt struct {
	Name       lexer.Token
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func (*ClassStmt) stmtNode() {}
func (s *ClassStmt) Literal() string { return "(class " + s.Name.Literal + ")" }
