/*
File    : mypl/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/mypl/token"
	"github.com/stretchr/testify/assert"
)

// consumeTokens drains the lexer to EOS, mirroring the teacher's
// ConsumeTokens helper used across lexer tests.
func consumeTokens(l *Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOS {
			break
		}
	}
	return tokens
}

type tokenCase struct {
	Input    string
	Expected []token.Type
}

func TestLexer_TokenKinds(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `123 + 2 - 12`,
			Expected: []token.Type{token.INT, token.PLUS, token.INT, token.MINUS, token.INT, token.EOS},
		},
		{
			Input:    `{ } + [] abc - a_12`,
			Expected: []token.Type{token.LBRACE, token.RBRACE, token.PLUS, token.LBRACKET, token.RBRACKET, token.ID, token.MINUS, token.ID, token.EOS},
		},
		{
			Input:    `<= + 2 {31} - 12`,
			Expected: []token.Type{token.LESS_THAN_EQUAL, token.PLUS, token.INT, token.LBRACE, token.INT, token.RBRACE, token.MINUS, token.INT, token.EOS},
		},
		{
			Input:    `== != <= >= < >`,
			Expected: []token.Type{token.EQUAL, token.NOT_EQUAL, token.LESS_THAN_EQUAL, token.GREATER_THAN_EQUAL, token.LESS_THAN, token.GREATER_THAN, token.EOS},
		},
		{
			Input:    `if x > 5 { println(x); } else if x < 0 { println(0); } else { print(x); }`,
			Expected: []token.Type{token.IF, token.ID, token.GREATER_THAN, token.INT, token.LBRACE,
				token.PRINTLN, token.LPAREN, token.ID, token.RPAREN, token.SEMICOLON, token.RBRACE,
				token.ELSEIF, token.ID, token.LESS_THAN, token.INT, token.LBRACE,
				token.PRINTLN, token.LPAREN, token.INT, token.RPAREN, token.SEMICOLON, token.RBRACE,
				token.ELSE, token.LBRACE, token.PRINT, token.LPAREN, token.ID, token.RPAREN, token.SEMICOLON, token.RBRACE,
				token.EOS},
		},
		{
			Input:    `true false not and or`,
			Expected: []token.Type{token.BOOL, token.BOOL, token.NOT, token.AND, token.OR, token.EOS},
		},
	}

	for _, tc := range tests {
		l := New(tc.Input)
		toks := consumeTokens(l)
		kinds := make([]token.Type, len(toks))
		for i, tok := range toks {
			kinds[i] = tok.Type
		}
		assert.Equal(t, tc.Expected, kinds, "input: %q", tc.Input)
	}
}

func TestLexer_StringLiteral(t *testing.T) {
	l := New(`"hello \"world\"" 'single'`)
	first := l.NextToken()
	assert.Equal(t, token.STRING, first.Type)
	assert.Equal(t, `hello "world"`, first.Lexeme)

	second := l.NextToken()
	assert.Equal(t, token.STRING, second.Type)
	assert.Equal(t, "single", second.Lexeme)
}

func TestLexer_UnterminatedStringPanics(t *testing.T) {
	l := New(`"abc`)
	assert.Panics(t, func() { l.NextToken() })
}

func TestLexer_NewlineInStringPanics(t *testing.T) {
	l := New("\"abc\ndef\"")
	assert.Panics(t, func() { l.NextToken() })
}

func TestLexer_CommentsAreSkipped(t *testing.T) {
	l := New("// a comment\n1 + /* block\ncomment */ 2")
	toks := consumeTokens(l)
	kinds := make([]token.Type, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Type
	}
	assert.Equal(t, []token.Type{token.INT, token.PLUS, token.INT, token.EOS}, kinds)
}

func TestLexer_LineColumnTracking(t *testing.T) {
	l := New("x = 1;\ny = 2;")
	var yTok token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ID && tok.Lexeme == "y" {
			yTok = tok
			break
		}
		if tok.Type == token.EOS {
			t.Fatal("did not find 'y' token")
		}
	}
	assert.Equal(t, 2, yTok.Line)
	assert.Equal(t, 1, yTok.Column)
}

func TestLexer_UnknownCharacterPanics(t *testing.T) {
	l := New("@")
	assert.Panics(t, func() { l.NextToken() })
}

func TestLexer_BuiltinFunctionPrefixes(t *testing.T) {
	l := New(`print(1); println(2); len(x); readint(""); readstr("")`)
	toks := consumeTokens(l)
	kinds := make([]token.Type, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	assert.Contains(t, kinds, token.PRINT)
	assert.Contains(t, kinds, token.PRINTLN)
	assert.Contains(t, kinds, token.LEN)
	assert.Contains(t, kinds, token.READINT)
	assert.Contains(t, kinds, token.READSTR)
}
