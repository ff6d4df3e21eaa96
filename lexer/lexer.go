/*
File    : mypl/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer implements the pull-based lexical scanner for the Language.
// It exposes a single operation - NextToken - that advances through the
// source text on demand, producing one Token at a time.
//
// Rather than the original implementation's absolute file seek/tell to
// implement multi-character look-ahead, the lexer buffers the whole
// source as a string and indexes into it directly; peek(n) is a bounded
// slice read with no side effects, which is the idiomatic Go substitute
// for the stream save/restore trick.
package lexer

import (
	"strings"

	"github.com/akashmaji946/mypl/langerr"
	"github.com/akashmaji946/mypl/token"
)

// longestKeyword is the length of the longest reserved form the lexer
// must recognize before falling back to identifier/number/string
// scanning ("println(", "readint(" and "readstr(" are 8 bytes).
const longestKeyword = 8

// Lexer scans Src on demand, tracking a 1-based line and column.
type Lexer struct {
	Src    string
	Pos    int
	Line   int
	Column int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{Src: src, Pos: 0, Line: 1, Column: 1}
}

// peek returns up to n bytes starting at the current position without
// advancing. It never panics on a short source - the result is simply
// shorter than n near the end of the stream.
func (l *Lexer) peek(n int) string {
	end := l.Pos + n
	if end > len(l.Src) {
		end = len(l.Src)
	}
	if l.Pos >= end {
		return ""
	}
	return l.Src[l.Pos:end]
}

// read consumes and returns the next n bytes, advancing Pos and Column.
// It does not special-case newlines - callers walking through
// constructs that may contain them (strings, comments) track Line
// themselves.
func (l *Lexer) read(n int) string {
	end := l.Pos + n
	if end > len(l.Src) {
		end = len(l.Src)
	}
	s := l.Src[l.Pos:end]
	l.Pos = end
	l.Column += len(s)
	return s
}

// atEOS reports whether the lexer has consumed the entire source.
func (l *Lexer) atEOS() bool {
	return l.Pos >= len(l.Src)
}

// NextToken produces the next token in the stream, skipping whitespace
// and comments as it goes. Recognition order follows spec.md §4.1:
// longest-match within a class, fixed priority between classes.
func (l *Lexer) NextToken() token.Token {
	window := l.peek(longestKeyword)

	switch {
	case len(window) == 0:
		return l.tok(token.EOS, "", 0)

	// Line comment
	case strings.HasPrefix(window, "//"):
		l.walkToEOL()
		return l.NextToken()

	// Block comment
	case strings.HasPrefix(window, "/*"):
		l.walkThroughBlockComment()
		return l.NextToken()

	// Built-in function names, only when immediately followed by '('
	case strings.HasPrefix(window, "println("):
		return l.tok(token.PRINTLN, "println", 7)
	case strings.HasPrefix(window, "readstr("):
		return l.tok(token.READSTR, "readstr", 7)
	case strings.HasPrefix(window, "readint("):
		return l.tok(token.READINT, "readint", 7)
	case strings.HasPrefix(window, "print("):
		return l.tok(token.PRINT, "print", 5)
	case strings.HasPrefix(window, "len("):
		return l.tok(token.LEN, "len", 3)

	// Two-character relational operators (must precede one-character forms)
	case strings.HasPrefix(window, "=="):
		return l.tok(token.EQUAL, "==", 2)
	case strings.HasPrefix(window, "<="):
		return l.tok(token.LESS_THAN_EQUAL, "<=", 2)
	case strings.HasPrefix(window, ">="):
		return l.tok(token.GREATER_THAN_EQUAL, ">=", 2)
	case strings.HasPrefix(window, "!="):
		return l.tok(token.NOT_EQUAL, "!=", 2)
	case strings.HasPrefix(window, "<"):
		return l.tok(token.LESS_THAN, "<", 1)
	case strings.HasPrefix(window, ">"):
		return l.tok(token.GREATER_THAN, ">", 1)

	// Multi-character keywords
	case strings.HasPrefix(window, "else if"):
		return l.tok(token.ELSEIF, "elseif", 7)
	case strings.HasPrefix(window, "while"):
		return l.tok(token.WHILE, "while", 5)
	case strings.HasPrefix(window, "else"):
		return l.tok(token.ELSE, "else", 4)
	case strings.HasPrefix(window, "not"):
		return l.tok(token.NOT, "not", 3)
	case strings.HasPrefix(window, "and"):
		return l.tok(token.AND, "and", 3)
	case strings.HasPrefix(window, "if"):
		return l.tok(token.IF, "if", 2)
	case strings.HasPrefix(window, "or"):
		return l.tok(token.OR, "or", 2)

	// Single-character operators
	case strings.HasPrefix(window, "+"):
		return l.tok(token.PLUS, "+", 1)
	case strings.HasPrefix(window, "-"):
		return l.tok(token.MINUS, "-", 1)
	case strings.HasPrefix(window, "/"):
		return l.tok(token.DIVIDE, "/", 1)
	case strings.HasPrefix(window, "*"):
		return l.tok(token.MULTIPLY, "*", 1)
	case strings.HasPrefix(window, "%"):
		return l.tok(token.MODULUS, "%", 1)
	case strings.HasPrefix(window, "="):
		return l.tok(token.ASSIGN, "=", 1)

	// Punctuation
	case strings.HasPrefix(window, ","):
		return l.tok(token.COMMA, ",", 1)
	case strings.HasPrefix(window, ";"):
		return l.tok(token.SEMICOLON, ";", 1)
	case strings.HasPrefix(window, "("):
		return l.tok(token.LPAREN, "(", 1)
	case strings.HasPrefix(window, ")"):
		return l.tok(token.RPAREN, ")", 1)
	case strings.HasPrefix(window, "["):
		return l.tok(token.LBRACKET, "[", 1)
	case strings.HasPrefix(window, "]"):
		return l.tok(token.RBRACKET, "]", 1)
	case strings.HasPrefix(window, "{"):
		return l.tok(token.LBRACE, "{", 1)
	case strings.HasPrefix(window, "}"):
		return l.tok(token.RBRACE, "}", 1)

	// Boolean literals
	case strings.HasPrefix(window, "true"):
		return l.tok(token.BOOL, "true", 4)
	case strings.HasPrefix(window, "false"):
		return l.tok(token.BOOL, "false", 5)

	// Integer literal
	case isDigit(window[0]):
		line, col := l.Line, l.Column
		s := l.walkThroughInt()
		return token.New(token.INT, s, line, col)

	// String literal
	case window[0] == '\'' || window[0] == '"':
		line, col := l.Line, l.Column
		s := l.walkThroughString(window[0])
		return token.New(token.STRING, s, line, col)

	// Identifier
	case isAlpha(window[0]):
		line, col := l.Line, l.Column
		s := l.walkThroughID()
		return token.New(token.ID, s, line, col)

	// Whitespace
	case isSpace(window[0]):
		if window[0] == '\n' {
			l.Line++
			l.read(1)
			l.Column = 1
		} else {
			l.read(1)
		}
		return l.NextToken()

	default:
		langerr.Raise(l.Line, l.Column, "encountered unexpected character: '%c'", window[0])
		panic("unreachable")
	}
}

// DNEToken builds the zero-length DNE sentinel representing an omitted
// syntactic slot (an empty index in `a[] = x`, meaning append).
func (l *Lexer) DNEToken() token.Token {
	return token.New(token.DNE, "", l.Line, l.Column)
}

// tok builds a token at the lexer's current position, then consumes
// inc bytes of source (the lexeme's width) and advances the column.
func (l *Lexer) tok(typ token.Type, lexeme string, inc int) token.Token {
	line, col := l.Line, l.Column
	if inc > 0 {
		l.read(inc)
	}
	return token.New(typ, lexeme, line, col)
}

func (l *Lexer) walkThroughID() string {
	start := l.Pos
	for !l.atEOS() && (isAlpha(l.Src[l.Pos]) || isDigit(l.Src[l.Pos]) || l.Src[l.Pos] == '_') {
		l.read(1)
	}
	return l.Src[start:l.Pos]
}

func (l *Lexer) walkThroughInt() string {
	start := l.Pos
	for !l.atEOS() && isDigit(l.Src[l.Pos]) {
		l.read(1)
	}
	return l.Src[start:l.Pos]
}

// walkThroughString consumes the opening quote, then scans up to the
// matching closing quote. A backslash escapes the following character
// (appended literally, matching the original implementation - there is
// no interpretation of \n, \t, etc.). A bare newline or end of stream
// before the closing quote is an error.
func (l *Lexer) walkThroughString(endCh byte) string {
	l.read(1) // opening quote

	var sb strings.Builder
	prevEscape := false
	for {
		if l.atEOS() {
			langerr.Raise(l.Line, l.Column, "unexpected end of stream")
		}
		ch := l.Src[l.Pos]
		l.read(1)

		if ch == '\n' {
			langerr.Raise(l.Line, l.Column, "encountered new line character in string")
		}
		if ch == endCh && !prevEscape {
			break
		}
		if ch == '\\' && !prevEscape {
			prevEscape = true
			continue
		}
		prevEscape = false
		sb.WriteByte(ch)
	}
	return sb.String()
}

func (l *Lexer) walkToEOL() {
	for !l.atEOS() && l.Src[l.Pos] != '\n' {
		l.read(1)
	}
}

func (l *Lexer) walkThroughBlockComment() {
	l.read(2) // opening /*
	for {
		if l.atEOS() {
			return
		}
		if l.Src[l.Pos] == '\n' {
			l.Line++
			l.read(1)
			l.Column = 1
			continue
		}
		if l.peek(2) == "*/" {
			l.read(2)
			return
		}
		l.read(1)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
