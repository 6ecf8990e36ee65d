/*
File    : loxwalk/parser/parser_statements.go
Derived from go-mix/parser/parser_statements.go and go-mix/parser/parser_loops.go (Akash Maji)
*/
package parser

import "github.com/akashmaji946/loxwalk/lexer"

const maxParams = 255

// declaration is the top of the statement grammar: a var/fn/class
// declaration, or any other statement. On a parse error it synchronizes
// and returns nil so the caller skips the broken statement instead of
// aborting the whole parse.
func (p *Parser) declaration() Stmt {
	errCountBefore := len(p.Errors)
	var stmt Stmt
	switch {
	case p.match(lexer.VAR):
		stmt = p.varDeclaration()
	case p.match(lexer.FUN):
		stmt = p.function("function")
	case p.match(lexer.CLASS):
		stmt = p.classDeclaration()
	default:
		stmt = p.statement()
	}
	if len(p.Errors) > errCountBefore {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) varDeclaration() Stmt {
	name, ok := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	if !ok {
		return nil
	}
	var initializer Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

// function parses `fn name(params) { body }`. kind is only used in error
// messages ("function" vs a future "method").
func (p *Parser) function(kind string) Stmt {
	name, ok := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	if !ok {
		return nil
	}
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxParams {
				p.addError("[line %d] Can't have more than %d parameters.", p.peek().Line, maxParams)
			}
			param, ok := p.consume(lexer.IDENTIFIER, "Expect parameter name.")
			if ok {
				params = append(params, param)
			}
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

// classDeclaration accepts `class Name [< Super] { methods... }` as
// reserved syntax: it is parsed for forward compatibility but the
// interpreter refuses to evaluate it into anything callable.
func (p *Parser) classDeclaration() Stmt {
	name, ok := p.consume(lexer.IDENTIFIER, "Expect class name.")
	if !ok {
		return nil
	}
	var super *VariableExpr
	if p.match(lexer.LESS) {
		superName, ok := p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		if ok {
			super = &VariableExpr{Name: superName}
		}
	}
	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")
	var methods []*FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		errCountBefore := len(p.Errors)
		m, ok := p.function("method").(*FunctionStmt)
		if len(p.Errors) > errCountBefore {
			// function("method") failed before consuming anything (e.g. the
			// next token isn't a method name) — synchronize so the loop
			// can't spin on the same token forever.
			p.synchronize()
			break
		}
		if ok {
			methods = append(methods, m)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")
	return &ClassStmt{Name: name, Superclass: super, Methods: methods}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		return &BlockStmt{Statements: p.block()}
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) block() []Stmt {
	var stmts []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after while condition.")
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into
//
//	{ init; while (cond) { body; incr; } }
//
// so the interpreter only ever needs to implement WhileStmt.
func (p *Parser) forStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &LiteralExpr{Kind: LiteralTrue}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body
}

// expressionStatement parses a bare expression statement. In REPL mode a
// missing trailing ';' is tolerated and the expression is reported as a
// Print instead of a parse error, so typing `1 + 2` at the prompt shows 3
// without requiring a semicolon.
func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	if p.match(lexer.SEMICOLON) {
		return &ExpressionStmt{Expression: expr}
	}
	if p.REPLMode && (p.isAtEnd() || p.check(lexer.EOF)) {
		return &PrintStmt{Expression: expr}
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ExpressionStmt{Expression: expr}
}
