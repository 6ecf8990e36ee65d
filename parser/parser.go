/*
File    : loxwalk/parser/parser.go
Derived from go-mix/parser/parser.go and go-mix/parser/parser_precedence.go (Akash Maji)
*/

// Package parser turns a lexer.Token stream into an AST: a recursive-descent
// expression grammar layered under a straight-line statement grammar. It
// never evaluates anything — unlike the teacher's parser, which folds
// constants as it parses, this one only builds the tree; all evaluation
// happens later in the interpreter.
package parser

import (
	"fmt"

	"github.com/akashmaji946/loxwalk/lexer"
)

// REPLMode relaxes one rule: a single trailing expression with no ';' is
// accepted and wrapped in a PrintStmt instead of being a parse error. The
// file runner always parses with REPLMode false.
type Parser struct {
	tokens   []lexer.Token
	current  int
	Errors   []string
	REPLMode bool
}

// New builds a Parser over every token the lexer produces for src, followed
// by an explicit EOF token that marks the end of the stream.
func New(lex *lexer.Lexer) *Parser {
	tokens := lex.ConsumeTokens()
	tokens = append(tokens, lexer.NewToken(lexer.EOF, "", lex.Line, lex.Column))
	return &Parser{tokens: tokens}
}

// HasErrors reports whether any parse error was collected.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// GetErrors returns every error collected while parsing.
func (p *Parser) GetErrors() []string { return p.Errors }

func (p *Parser) addError(format string, args ...interface{}) {
	p.Errors = append(p.Errors, fmt.Sprintf(format, args...))
}

func (p *Parser) peek() lexer.Token { return p.tokens[p.current] }

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the expected token type or records a parse error
// naming what was found instead.
func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	tok := p.peek()
	p.addError("[line %d] %s (got %s %q)", tok.Line, message, tok.Type, tok.Literal)
	return tok, false
}

// synchronize discards tokens after a parse error until it reaches a
// plausible statement boundary, so one bad statement doesn't cascade into
// spurious errors for the rest of the file.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}

// Parse parses the whole token stream into a program: a flat list of
// top-level statements.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
