/*
File    : loxwalk/lexer/lexer_test.go
Derived from go-mix/lexer/lexer_test.go (Akash Maji)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []TokenType
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `123 + 2 - 12`,
			Expected: []TokenType{NUMBER, PLUS, NUMBER, MINUS, NUMBER},
		},
		{
			Input:    `{ } ( ) , . ;`,
			Expected: []TokenType{LEFT_BRACE, RIGHT_BRACE, LEFT_PAREN, RIGHT_PAREN, COMMA, DOT, SEMICOLON},
		},
		{
			Input:    `<= >= == != < > = !`,
			Expected: []TokenType{LESS_EQUAL, GREATER_EQUAL, EQUAL_EQUAL, BANG_EQUAL, LESS, GREATER, EQUAL, BANG},
		},
		{
			Input:    `var x = "hi"; print x;`,
			Expected: []TokenType{VAR, IDENTIFIER, EQUAL, STRING, SEMICOLON, PRINT, IDENTIFIER, SEMICOLON},
		},
		{
			Input:    `and or if else while for fn return nil true false class super this`,
			Expected: []TokenType{AND, OR, IF, ELSE, WHILE, FOR, FUN, RETURN, NIL, TRUE, FALSE, CLASS, SUPER, THIS},
		},
	}

	for _, tc := range tests {
		lex := New(tc.Input)
		tokens := lex.ConsumeTokens()
		got := make([]TokenType, len(tokens))
		for i, tok := range tokens {
			got[i] = tok.Type
		}
		assert.Equal(t, tc.Expected, got, "input: %q", tc.Input)
	}
}

func TestLexer_NumberLiteral(t *testing.T) {
	lex := New(`3.14 42`)
	tokens := lex.ConsumeTokens()
	assert.Len(t, tokens, 2)
	assert.Equal(t, "3.14", tokens[0].Literal)
	assert.Equal(t, "42", tokens[1].Literal)
}

func TestLexer_StringLiteral(t *testing.T) {
	lex := New(`"hello world"`)
	tok := lex.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, "hello world", tok.Literal)
}

func TestLexer_UnterminatedStringIsAnError(t *testing.T) {
	lex := New(`"unterminated`)
	tok := lex.NextToken()
	assert.Equal(t, INVALID, tok.Type)
}

func TestLexer_UnknownCharacterIsAnError(t *testing.T) {
	lex := New(`@`)
	tok := lex.NextToken()
	assert.Equal(t, INVALID, tok.Type)
}

func TestLexer_SkipsComments(t *testing.T) {
	lex := New("// a line comment\n1 /* block\ncomment */ + 2")
	tokens := lex.ConsumeTokens()
	assert.Len(t, tokens, 3)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, PLUS, tokens[1].Type)
	assert.Equal(t, NUMBER, tokens[2].Type)
}

func TestLexer_TracksLineAndColumn(t *testing.T) {
	lex := New("var a\nvar b")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[2].Line)
}
