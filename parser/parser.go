/*
File    : mypl/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser that turns the
// lexer's token stream into an *ast.StmtList. It keeps exactly one token
// of lookahead (CurrToken) plus the previously consumed token
// (PrevToken), following the original implementation's c/pc cursor
// rather than the teacher's two-token-ahead Pratt scheme - this
// language's grammar never needs to peek past the current token.
//
// Parsing aborts at the first malformed construct: every error path
// calls langerr.Raise, which the driver recovers at the top of the
// pipeline (see cmd/mypl).
package parser

import (
	"github.com/akashmaji946/mypl/ast"
	"github.com/akashmaji946/mypl/langerr"
	"github.com/akashmaji946/mypl/lexer"
	"github.com/akashmaji946/mypl/token"
)

// Parser holds the lexer and the one-token lookahead window.
type Parser struct {
	Lex       *lexer.Lexer
	CurrToken token.Token
	PrevToken token.Token
}

// New creates a Parser over src, ready for Parse.
func New(src string) *Parser {
	return &Parser{Lex: lexer.New(src)}
}

// Parse consumes the entire token stream and returns the program's
// top-level statement list. It panics with a *langerr.Error on any
// malformed input.
func (p *Parser) Parse() *ast.StmtList {
	p.advance()
	list := p.stmtList()
	p.eat(token.EOS, "expecting end of file")
	return list
}

// advance shifts CurrToken into PrevToken and pulls the next token from
// the lexer.
func (p *Parser) advance() {
	p.PrevToken = p.CurrToken
	p.CurrToken = p.Lex.NextToken()
}

// eat requires CurrToken to have type ty, consuming it; otherwise it
// raises a positioned error built from msg and the actual token found.
func (p *Parser) eat(ty token.Type, msg string) token.Token {
	if p.CurrToken.Type != ty {
		p.fail(msg)
	}
	tok := p.CurrToken
	p.advance()
	return tok
}

// optional consumes CurrToken and reports true if it has type ty,
// otherwise leaves the cursor untouched and reports false.
func (p *Parser) optional(ty token.Type) bool {
	if p.CurrToken.Type == ty {
		p.advance()
		return true
	}
	return false
}

// any requires CurrToken to be one of types, returning the consumed
// token; otherwise raises a positioned error.
func (p *Parser) any(msg string, types ...token.Type) token.Token {
	for _, ty := range types {
		if p.CurrToken.Type == ty {
			tok := p.CurrToken
			p.advance()
			return tok
		}
	}
	p.fail(msg)
	panic("unreachable")
}

// anyOptional consumes and returns CurrToken if it is one of types,
// reporting ok = true; otherwise leaves the cursor untouched.
func (p *Parser) anyOptional(types ...token.Type) (token.Token, bool) {
	for _, ty := range types {
		if p.CurrToken.Type == ty {
			tok := p.CurrToken
			p.advance()
			return tok, true
		}
	}
	return token.Token{}, false
}

// fail raises a positioned parse error naming both what was expected and
// what was actually found.
func (p *Parser) fail(msg string) {
	langerr.Raise(p.CurrToken.Line, p.CurrToken.Column,
		"%s, instead got %s('%s')", msg, p.CurrToken.Type, p.CurrToken.Lexeme)
}

// semicolon eats a trailing ";" unless the stream has already ended.
func (p *Parser) semicolon() {
	if p.CurrToken.Type == token.EOS {
		return
	}
	p.eat(token.SEMICOLON, `expected ";"`)
}

// STATEMENTS

// stmtList parses statements until it hits a block terminator (}, elseif,
// else) or end of stream, mirroring the original implementation's
// recursive stmts().
func (p *Parser) stmtList() *ast.StmtList {
	list := &ast.StmtList{}
	for {
		list.Stmts = append(list.Stmts, p.stmt())

		switch p.CurrToken.Type {
		case token.RBRACE, token.ELSEIF, token.ELSE, token.EOS:
			return list
		}
	}
}

func (p *Parser) stmt() ast.Stmt {
	switch p.CurrToken.Type {
	case token.PRINT, token.PRINTLN:
		return p.printStmt()
	case token.ID:
		return p.assignStmt()
	case token.IF:
		return p.ifStmt()
	case token.WHILE:
		return p.whileStmt()
	default:
		p.fail("unexpected token")
		panic("unreachable")
	}
}

func (p *Parser) printStmt() *ast.PrintStmt {
	which := p.any(`expected "print" or "println"`, token.PRINT, token.PRINTLN)
	p.eat(token.LPAREN, `expected "("`)
	e := p.expr()
	p.eat(token.RPAREN, `expected ")"`)
	p.semicolon()
	return &ast.PrintStmt{Which: which, Expr: e, Newline: which.Type == token.PRINTLN}
}

func (p *Parser) assignStmt() *ast.AssignStmt {
	lhs := p.any("expected an identifier", token.ID)

	which := p.any(`expected "[" or "=" after identifier`, token.LBRACKET, token.ASSIGN)

	var index ast.Expr
	if which.Type == token.LBRACKET {
		index = p.listIndex()
		p.eat(token.ASSIGN, `expected "="`)
	}

	rhs := p.expr()
	p.semicolon()

	return &ast.AssignStmt{Lhs: lhs, Index: index, Rhs: rhs}
}

// listIndex parses the contents of `name[ ... ]` after the opening
// bracket has already been consumed by assignStmt/value: an empty slot
// (`[]`) becomes a DNE-term SimpleExpr meaning "append".
func (p *Parser) listIndex() ast.Expr {
	if p.CurrToken.IsEnd() {
		return nil
	}
	if p.optional(token.RBRACKET) {
		return &ast.SimpleExpr{Term: token.New(token.DNE, "", p.PrevToken.Line, p.PrevToken.Column)}
	}
	e := p.expr()
	p.eat(token.RBRACKET, `expected "]"`)
	return e
}

// IF / WHILE

func (p *Parser) ifStmt() *ast.IfStmt {
	which := p.any(`expected "if"`, token.IF)
	cond := p.bexpr()
	p.eat(token.LBRACE, `expected "{" after if condition`)
	body := p.stmtList()

	stmt := &ast.IfStmt{Which: which, IfPart: &ast.BasicIf{Which: which, Cond: cond, StmtList: body}}
	p.ifTail(stmt)
	return stmt
}

// ifTail consumes the closing "}" of the block just parsed, then looks
// for a chain of "else if" clauses and an optional trailing "else".
func (p *Parser) ifTail(stmt *ast.IfStmt) {
	p.eat(token.RBRACE, `expected "}" following conditional block`)

	which, ok := p.anyOptional(token.ELSEIF, token.ELSE)
	if !ok {
		return
	}

	if which.Type == token.ELSEIF {
		cond := p.bexpr()
		p.eat(token.LBRACE, `expected "{" after elseif condition`)
		body := p.stmtList()
		stmt.ElseIfs = append(stmt.ElseIfs, &ast.BasicIf{Which: which, Cond: cond, StmtList: body})
		p.ifTail(stmt)
		return
	}

	// ELSE
	stmt.HasElse = true
	p.eat(token.LBRACE, `expected "{" after else`)
	stmt.ElseStmts = p.stmtList()
	p.eat(token.RBRACE, `expected "}" following conditional block`)
}

func (p *Parser) whileStmt() *ast.WhileStmt {
	which := p.any(`expected "while"`, token.WHILE)
	cond := p.bexpr()
	p.eat(token.LBRACE, `expected "{" after while condition`)
	body := p.stmtList()
	p.eat(token.RBRACE, `expected "}" following while block`)
	return &ast.WhileStmt{Which: which, Cond: cond, Body: body}
}

// EXPRESSIONS

// expr collects a flat run of `value (op value)*` then folds it into a
// tree with exprCompile.
func (p *Parser) expr() ast.Expr {
	var items []interface{}

	for {
		items = append(items, p.value())

		op, ok := p.anyOptional(
			token.PLUS, token.MINUS, token.DIVIDE, token.MULTIPLY, token.MODULUS,
			token.EQUAL, token.NOT_EQUAL, token.LESS_THAN, token.LESS_THAN_EQUAL,
			token.GREATER_THAN, token.GREATER_THAN_EQUAL, token.AND, token.OR,
		)
		if !ok {
			break
		}
		items = append(items, op)
	}

	return p.exprCompile(items)
}

// exprCompile folds a flat [Expr, Token, Expr, Token, Expr, ...] run
// into a left-associative binary tree: it finds the lowest-weight
// operator in items (ties broken by the rightmost occurrence), splits
// items around it, and recurses on both halves. The chosen operator
// therefore ends up at the root of whichever sub-tree it was found in,
// meaning it is evaluated last among its siblings - see token.Weight.
func (p *Parser) exprCompile(items []interface{}) ast.Expr {
	if len(items) == 1 {
		return items[0].(ast.Expr)
	}

	splitAt := -1
	splitWeight := 0

	for i, item := range items {
		tok, ok := item.(token.Token)
		if !ok {
			continue
		}
		w := tok.Weight()
		if w <= 0 {
			continue
		}
		if splitAt < 0 || w <= splitWeight {
			splitWeight = w
			splitAt = i
		}
	}

	if splitAt < 0 {
		langerr.Raise(p.CurrToken.Line, p.CurrToken.Column, "exprcompile: expected an operator between values")
	}

	left := p.exprCompile(items[:splitAt])
	right := p.exprCompile(items[splitAt+1:])
	operator := items[splitAt].(token.Token)

	return &ast.ComplexExpr{First: left, Rel: operator, Second: right}
}

// value parses a single operand: an optional leading `not`, then one of
// an identifier (optionally indexed), a literal, a read/len call, a
// parenthesized expression, or a list literal.
func (p *Parser) value() ast.Expr {
	notTok := p.CurrToken
	hasNot := p.optional(token.NOT)

	which := p.any("expected a value",
		token.ID, token.STRING, token.INT, token.BOOL,
		token.READINT, token.READSTR, token.LEN, token.LPAREN, token.LBRACKET,
	)

	switch which.Type {
	case token.ID:
		if p.CurrToken.Type == token.LBRACKET {
			p.advance()
			idx := p.listIndex()
			return &ast.IndexExpr{Identifier: which, Index: idx, Negated: hasNot}
		}

	case token.READINT, token.READSTR:
		// which was already consumed; re-synthesize the read node using it.
		return p.finishReadExpr(which)

	case token.LEN:
		return p.finishLenExpr(which)

	case token.LPAREN:
		inner := p.expr()
		p.eat(token.RPAREN, `expected ")"`)
		return inner

	case token.LBRACKET:
		if hasNot {
			langerr.Raise(notTok.Line, notTok.Column, `unexpected "not" before list`)
		}
		list := &ast.ListExpr{LBracket: which}
		if p.optional(token.RBRACKET) {
			return list
		}
		list.Expressions = p.exprList()
		p.eat(token.RBRACKET, `expected "]"`)
		return list
	}

	return &ast.SimpleExpr{Term: which, Negated: hasNot}
}

// finishReadExpr and finishLenExpr re-enter the readExpr/lenExpr grammar
// after `value` has already consumed the leading keyword token, so they
// take it as a parameter rather than re-matching it.
func (p *Parser) finishReadExpr(which token.Token) *ast.ReadExpr {
	p.eat(token.LPAREN, `expected "("`)
	e := p.expr()
	p.eat(token.RPAREN, `expected ")"`)
	return &ast.ReadExpr{Which: which, Expr: e, ReadsInt: which.Type == token.READINT}
}

func (p *Parser) finishLenExpr(which token.Token) *ast.LenExpr {
	p.eat(token.LPAREN, `expected "("`)
	e := p.expr()
	p.eat(token.RPAREN, `expected ")"`)
	return &ast.LenExpr{Name: which, Expr: e}
}

func (p *Parser) exprList() []ast.Expr {
	var list []ast.Expr
	if p.CurrToken.IsEnd() {
		return list
	}
	list = append(list, p.expr())
	for p.CurrToken.Type != token.RBRACKET {
		p.eat(token.COMMA, `expected ","`)
		list = append(list, p.expr())
	}
	return list
}

// BOOLEAN EXPRESSIONS

// exprNoConnector is expr's item-collecting loop restricted to
// math and comparison operators - it stops before AND/OR instead of
// folding them into the same flat list. bexpr calls this once per
// comparison segment and handles AND/OR chaining itself; reusing the
// unrestricted expr() here would let exprCompile's weight-tie-break
// (rightward, needed for left-associative arithmetic like `1-2-3`) tie
// two same-weight comparisons against each other across a connector and
// nest them backwards - e.g. `x > 1 and y < 2` would promote with `<`
// at the root instead of `>`, handing ToBoolExpr a malformed tree.
func (p *Parser) exprNoConnector() ast.Expr {
	var items []interface{}

	for {
		items = append(items, p.value())

		op, ok := p.anyOptional(
			token.PLUS, token.MINUS, token.DIVIDE, token.MULTIPLY, token.MODULUS,
			token.EQUAL, token.NOT_EQUAL, token.LESS_THAN, token.LESS_THAN_EQUAL,
			token.GREATER_THAN, token.GREATER_THAN_EQUAL,
		)
		if !ok {
			break
		}
		items = append(items, op)
	}

	return p.exprCompile(items)
}

// bexpr parses one comparison segment and promotes it into a BoolExpr,
// then - since exprNoConnector never consumes AND/OR - looks for a
// trailing connector itself and recurses for the rest of the chain.
// A bare list literal can never be a condition, and a connector can
// never follow a bare truthy check (SimpleBoolExpr has no slot for one).
func (p *Parser) bexpr() ast.BoolExpr {
	tokBefore := p.CurrToken

	e := p.exprNoConnector()

	if _, isList := e.(*ast.ListExpr); isList {
		langerr.Raise(tokBefore.Line, tokBefore.Column, "unexpected list, expected boolean expression")
	}

	core, err := ast.ToBoolExpr(e)
	if err != nil {
		langerr.Raise(tokBefore.Line, tokBefore.Column, "invalid boolean expression")
	}

	connector, hasConnector := p.anyOptional(token.AND, token.OR)
	if !hasConnector {
		return core
	}

	cb, ok := core.(*ast.ComplexBoolExpr)
	if !ok {
		langerr.Raise(connector.Line, connector.Column, `"%s" must follow a comparison`, connector.Type)
	}

	cb.HasConnector = true
	cb.Connector = connector
	cb.Next = p.bexpr()
	return cb
}
