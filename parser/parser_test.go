/*
File    : loxwalk/parser/parser_test.go
Derived from go-mix/parser/parser_test.go (Akash Maji)
*/
package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxwalk/lexer"
)

func parse(t *testing.T, src string) []Stmt {
	t.Helper()
	p := New(lexer.New(src))
	stmts := p.Parse()
	assert.False(t, p.HasErrors(), "unexpected parse errors: %v", p.GetErrors())
	return stmts
}

func TestParser_ExpressionPrecedence(t *testing.T) {
	stmts := parse(t, "1 + 2 * 3;")
	assert.Len(t, stmts, 1)
	exprStmt, ok := stmts[0].(*ExpressionStmt)
	assert.True(t, ok)
	bin, ok := exprStmt.Expression.(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "+", string(bin.Operator.Type))
	rhs, ok := bin.Right.(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "*", string(rhs.Operator.Type))
}

func TestParser_VarDeclaration(t *testing.T) {
	stmts := parse(t, `var x = 5;`)
	assert.Len(t, stmts, 1)
	v, ok := stmts[0].(*VarStmt)
	assert.True(t, ok)
	assert.Equal(t, "x", v.Name.Literal)
	assert.NotNil(t, v.Initializer)
}

func TestParser_IfElse(t *testing.T) {
	stmts := parse(t, `if (true) print 1; else print 2;`)
	assert.Len(t, stmts, 1)
	ifStmt, ok := stmts[0].(*IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, ifStmt.ThenBranch)
	assert.NotNil(t, ifStmt.ElseBranch)
}

func TestParser_WhileLoop(t *testing.T) {
	stmts := parse(t, `while (x < 10) x = x + 1;`)
	assert.Len(t, stmts, 1)
	_, ok := stmts[0].(*WhileStmt)
	assert.True(t, ok)
}

// A for loop desugars into a block containing the initializer followed by
// a while loop whose body appends the increment.
func TestParser_ForLoopDesugarsToWhile(t *testing.T) {
	stmts := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.Len(t, stmts, 1)
	block, ok := stmts[0].(*BlockStmt)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 2)
	_, ok = block.Statements[0].(*VarStmt)
	assert.True(t, ok)
	whileStmt, ok := block.Statements[1].(*WhileStmt)
	assert.True(t, ok)
	bodyBlock, ok := whileStmt.Body.(*BlockStmt)
	assert.True(t, ok)
	assert.Len(t, bodyBlock.Statements, 2)
}

func TestParser_FunctionDeclaration(t *testing.T) {
	stmts := parse(t, `fn add(a, b) { return a + b; }`)
	assert.Len(t, stmts, 1)
	fn, ok := stmts[0].(*FunctionStmt)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name.Literal)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)
}

func TestParser_CallExpression(t *testing.T) {
	stmts := parse(t, `add(1, 2);`)
	exprStmt := stmts[0].(*ExpressionStmt)
	call, ok := exprStmt.Expression.(*CallExpr)
	assert.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParser_AssignmentIsRightAssociative(t *testing.T) {
	stmts := parse(t, `a = b = 5;`)
	exprStmt := stmts[0].(*ExpressionStmt)
	assign, ok := exprStmt.Expression.(*AssignExpr)
	assert.True(t, ok)
	assert.Equal(t, "a", assign.Name.Literal)
	_, ok = assign.Value.(*AssignExpr)
	assert.True(t, ok)
}

func TestParser_InvalidAssignmentTargetIsAnError(t *testing.T) {
	p := New(lexer.New(`1 = 2;`))
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParser_MissingClosingParenIsAnError(t *testing.T) {
	p := New(lexer.New(`(1 + 2;`))
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParser_MissingSemicolonIsAnError(t *testing.T) {
	p := New(lexer.New(`print 1`))
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParser_REPLModeTreatsBareExpressionAsPrint(t *testing.T) {
	p := New(lexer.New(`1 + 2`))
	p.REPLMode = true
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 1)
	_, ok := stmts[0].(*PrintStmt)
	assert.True(t, ok)
}

// A malformed method inside a class body must not hang the parser: it
// should synchronize and report an error instead of looping forever on
// the same token.
func TestParser_MalformedClassBodyDoesNotHang(t *testing.T) {
	p := New(lexer.New(`class Foo { 1 }`))
	done := make(chan struct{})
	go func() {
		p.Parse()
		close(done)
	}()
	select {
	case <-done:
		assert.True(t, p.HasErrors())
	case <-time.After(2 * time.Second):
		t.Fatal("Parse did not return: parser hung on a malformed class body")
	}
}

func TestParser_ClassIsReservedSyntax(t *testing.T) {
	stmts := parse(t, `class Greeter { hello() { return 1; } }`)
	assert.Len(t, stmts, 1)
	cls, ok := stmts[0].(*ClassStmt)
	assert.True(t, ok)
	assert.Equal(t, "Greeter", cls.Name.Literal)
	assert.Len(t, cls.Methods, 1)
}
