/*
File    : mypl/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the closed set of abstract syntax tree node types
// produced by the parser. Each node variant is a plain struct; the type
// checker and interpreter dispatch over them with a type switch rather
// than the double-dispatch accept/visit indirection of the original
// implementation - a closed sum type and a switch is the idiomatic Go
// shape for "one passive data structure, several independent walkers."
package ast

import "github.com/akashmaji946/mypl/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	FirstToken() token.Token
	stmtNode()
}

// Expr is implemented by every (arithmetic-shaped) expression node.
type Expr interface {
	FirstToken() token.Token
	exprNode()
}

// BoolExpr is implemented by the two boolean-expression node shapes
// produced by promoting an Expr in a condition position (see ToBoolExpr).
type BoolExpr interface {
	FirstToken() token.Token
	boolExprNode()
}

// StmtList is an ordered sequence of statements; it is the node that
// defines one lexical scope (see scope.Table).
type StmtList struct {
	Stmts []Stmt
}

func (n *StmtList) FirstToken() token.Token {
	if len(n.Stmts) == 0 {
		return token.Token{}
	}
	return n.Stmts[0].FirstToken()
}

// PRINT / READ STATEMENTS

// PrintStmt prints the value of Expr, followed by a newline iff Newline.
type PrintStmt struct {
	Which   token.Token // the PRINT or PRINTLN token
	Expr    Expr
	Newline bool
}

func (n *PrintStmt) FirstToken() token.Token { return n.Which }
func (*PrintStmt) stmtNode()                 {}

// ReadExpr prompts with Expr, then reads one line from stdin - parsed as
// an integer if ReadsInt, otherwise kept as the raw line.
type ReadExpr struct {
	Which   token.Token // the READINT or READSTR token
	Expr    Expr
	ReadsInt bool
}

func (n *ReadExpr) FirstToken() token.Token { return n.Which }
func (*ReadExpr) exprNode()                 {}

// LenExpr produces the element count of Expr's value.
type LenExpr struct {
	Name token.Token // the LEN token
	Expr Expr
}

func (n *LenExpr) FirstToken() token.Token { return n.Name }
func (*LenExpr) exprNode()                 {}

// ASSIGNMENT

// AssignStmt assigns Rhs to the variable named by Lhs, optionally
// through an index expression (Index == nil means unindexed).
type AssignStmt struct {
	Lhs   token.Token // identifier token
	Index Expr        // nil if unindexed; a DNE SimpleExpr if `a[] = ...`
	Rhs   Expr
}

func (n *AssignStmt) FirstToken() token.Token { return n.Lhs }
func (*AssignStmt) stmtNode()                 {}

// EXPRESSION LEAVES

// SimpleExpr wraps a single terminal token: an ID, INT, STRING, BOOL, or
// DNE. Negated tracks a leading `not` applied directly to this value.
type SimpleExpr struct {
	Term    token.Token
	Negated bool
}

func (n *SimpleExpr) FirstToken() token.Token { return n.Term }
func (*SimpleExpr) exprNode()                 {}

// IndexExpr reads Identifier[Index].
type IndexExpr struct {
	Identifier token.Token
	Index      Expr
	Negated    bool
}

func (n *IndexExpr) FirstToken() token.Token { return n.Identifier }
func (*IndexExpr) exprNode()                 {}

// ListExpr is an ordered list literal; an empty list is permitted.
type ListExpr struct {
	LBracket    token.Token
	Expressions []Expr
}

func (n *ListExpr) FirstToken() token.Token { return n.LBracket }
func (*ListExpr) exprNode()                 {}

// ComplexExpr is a binary arithmetic/relational expression: First Rel
// Second. Rel carries the operator's precedence weight.
type ComplexExpr struct {
	First  Expr
	Rel    token.Token
	Second Expr
}

func (n *ComplexExpr) FirstToken() token.Token { return n.First.FirstToken() }
func (*ComplexExpr) exprNode()                 {}

// BOOLEAN EXPRESSIONS

// SimpleBoolExpr coerces Expr's value to truthiness, then applies Negated.
type SimpleBoolExpr struct {
	Expr    Expr
	Negated bool
}

func (n *SimpleBoolExpr) FirstToken() token.Token { return n.Expr.FirstToken() }
func (*SimpleBoolExpr) boolExprNode()             {}

// ComplexBoolExpr compares First against Second with Rel, optionally
// chaining into a further BoolExpr via Connector (and/or). Evaluation of
// both sides of Connector is NOT short-circuiting (spec.md §4.5).
//
// Unlike SimpleBoolExpr, this node carries no Negated flag: the original
// implementation's ComplexBoolExpr.negated is assigned during promotion
// but never read during evaluation, a dead field. This port omits it.
type ComplexBoolExpr struct {
	First        Expr
	Rel          token.Token // one of ==, !=, <, <=, >, >=
	Second       Expr
	HasConnector bool
	Connector    token.Token // AND or OR
	Next         BoolExpr    // only set if HasConnector
}

func (n *ComplexBoolExpr) FirstToken() token.Token { return n.First.FirstToken() }
func (*ComplexBoolExpr) boolExprNode()             {}

// IF / WHILE STATEMENTS

// BasicIf is one `cond { body }` clause, shared by the primary if branch
// and every `else if`.
type BasicIf struct {
	Which    token.Token // the IF or ELSEIF token
	Cond     BoolExpr
	StmtList *StmtList
}

func (n *BasicIf) FirstToken() token.Token { return n.Which }

// IfStmt is a primary if clause, an ordered list of else-if clauses, and
// an optional else body.
type IfStmt struct {
	Which     token.Token
	IfPart    *BasicIf
	ElseIfs   []*BasicIf
	HasElse   bool
	ElseStmts *StmtList
}

func (n *IfStmt) FirstToken() token.Token { return n.Which }
func (*IfStmt) stmtNode()                 {}

// WhileStmt repeats Body while Cond is truthy.
type WhileStmt struct {
	Which token.Token
	Cond  BoolExpr
	Body  *StmtList
}

func (n *WhileStmt) FirstToken() token.Token { return n.Which }
func (*WhileStmt) stmtNode()                 {}
