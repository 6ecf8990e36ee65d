/*
File    : loxwalk/parser/parser_expressions.go
Derived from go-mix/parser/parser_expressions.go and go-mix/parser/parser_precedence.go (Akash Maji)
*/
package parser

import "github.com/akashmaji946/loxwalk/lexer"

// The expression grammar, lowest to highest precedence:
//
//	expression -> assignment
//	assignment -> IDENTIFIER "=" assignment | logic_or
//	logic_or   -> logic_and ( "or" logic_and )*
//	logic_and  -> equality ( "and" equality )*
//	equality   -> comparison ( ( "!=" | "==" ) comparison )*
//	comparison -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       -> factor ( ( "-" | "+" ) factor )*
//	factor     -> unary ( ( "/" | "*" | "%" ) unary )*
//	unary      -> ( "!" | "-" ) unary | call
//	call       -> primary ( "(" arguments? ")" )*
//	primary    -> NUMBER | STRING | "true" | "false" | "nil"
//	            | IDENTIFIER | "(" expression ")"
//
// Each level is a function that parses its own precedence and everything
// tighter-binding, matching the teacher's precedence-climbing recursive
// descent rather than its Pratt-table dispatch.

func (p *Parser) expression() Expr {
	return p.assignment()
}

func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: v.Name, Value: value}
		}
		p.addError("[line %d] Invalid assignment target.", equals.Line)
	}
	return expr
}

func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.and()
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR, lexer.MOD) {
		op := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return &UnaryExpr{Operator: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(lexer.LEFT_PAREN) {
			expr = p.finishCall(expr)
			continue
		}
		break
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxParams {
				p.addError("[line %d] Can't have more than %d arguments.", p.peek().Line, maxParams)
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, _ := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return &LiteralExpr{Tok: p.previous(), Kind: LiteralFalse}
	case p.match(lexer.TRUE):
		return &LiteralExpr{Tok: p.previous(), Kind: LiteralTrue}
	case p.match(lexer.NIL):
		return &LiteralExpr{Tok: p.previous(), Kind: LiteralNil}
	case p.match(lexer.NUMBER):
		return &LiteralExpr{Tok: p.previous(), Kind: LiteralNumber}
	case p.match(lexer.STRING):
		return &LiteralExpr{Tok: p.previous(), Kind: LiteralString}
	case p.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{Expression: expr}
	}

	tok := p.peek()
	p.addError("[line %d] Expect expression. (got %s %q)", tok.Line, tok.Type, tok.Literal)
	p.advance()
	return &LiteralExpr{Tok: tok, Kind: LiteralNil}
}
