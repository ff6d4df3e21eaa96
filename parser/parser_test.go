/*
File    : mypl/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/mypl/ast"
	"github.com/akashmaji946/mypl/token"
	"github.com/stretchr/testify/assert"
)

func TestParser_SimpleAssignAndPrint(t *testing.T) {
	tree := New(`x = 1; println(x);`).Parse()
	assert.Len(t, tree.Stmts, 2)

	assign, ok := tree.Stmts[0].(*ast.AssignStmt)
	assert.True(t, ok)
	assert.Equal(t, "x", assign.Lhs.Lexeme)
	assert.Nil(t, assign.Index)

	print, ok := tree.Stmts[1].(*ast.PrintStmt)
	assert.True(t, ok)
	assert.True(t, print.Newline)
}

func TestParser_PrecedenceLeftAssociative(t *testing.T) {
	// 1 - 2 - 3 must parse as (1 - 2) - 3, never 1 - (2 - 3).
	tree := New(`x = 1 - 2 - 3;`).Parse()
	assign := tree.Stmts[0].(*ast.AssignStmt)
	root := assign.Rhs.(*ast.ComplexExpr)

	assert.Equal(t, token.MINUS, root.Rel.Type)
	inner, ok := root.First.(*ast.ComplexExpr)
	assert.True(t, ok, "left child should itself be 1 - 2")
	assert.Equal(t, token.MINUS, inner.Rel.Type)

	_, leafRight := root.Second.(*ast.SimpleExpr)
	assert.True(t, leafRight)
}

func TestParser_PrecedenceMultiplyBindsTighter(t *testing.T) {
	// 1 + 2 * 3 must parse with + at the root (lower weight => evaluated last).
	tree := New(`x = 1 + 2 * 3;`).Parse()
	assign := tree.Stmts[0].(*ast.AssignStmt)
	root := assign.Rhs.(*ast.ComplexExpr)
	assert.Equal(t, token.PLUS, root.Rel.Type)

	right, ok := root.Second.(*ast.ComplexExpr)
	assert.True(t, ok, "right child should be 2 * 3")
	assert.Equal(t, token.MULTIPLY, right.Rel.Type)
}

func TestParser_ParenthesesOverridePrecedence(t *testing.T) {
	tree := New(`x = (1 + 2) * 3;`).Parse()
	assign := tree.Stmts[0].(*ast.AssignStmt)
	root := assign.Rhs.(*ast.ComplexExpr)
	assert.Equal(t, token.MULTIPLY, root.Rel.Type)

	left, ok := root.First.(*ast.ComplexExpr)
	assert.True(t, ok)
	assert.Equal(t, token.PLUS, left.Rel.Type)
}

func TestParser_ListLiteralAndAppend(t *testing.T) {
	tree := New(`a = [1, 2, 3]; a[] = 4;`).Parse()
	assign := tree.Stmts[0].(*ast.AssignStmt)
	list := assign.Rhs.(*ast.ListExpr)
	assert.Len(t, list.Expressions, 3)

	appendStmt := tree.Stmts[1].(*ast.AssignStmt)
	idxExpr := appendStmt.Index.(*ast.SimpleExpr)
	assert.Equal(t, token.DNE, idxExpr.Term.Type)
}

func TestParser_IfElseIfElse(t *testing.T) {
	src := `
	if x > 5 {
		println(1);
	} else if x < 0 {
		println(2);
	} else {
		println(3);
	}`
	tree := New(src).Parse()
	ifStmt := tree.Stmts[0].(*ast.IfStmt)
	assert.Len(t, ifStmt.ElseIfs, 1)
	assert.True(t, ifStmt.HasElse)
}

func TestParser_IfNoElseHasElseFalse(t *testing.T) {
	// Only a genuine trailing `else` should set HasElse - an elseif chain
	// with no final else must leave HasElse false.
	src := `
	if x > 5 {
		println(1);
	} else if x < 0 {
		println(2);
	}`
	tree := New(src).Parse()
	ifStmt := tree.Stmts[0].(*ast.IfStmt)
	assert.Len(t, ifStmt.ElseIfs, 1)
	assert.False(t, ifStmt.HasElse)
	assert.Nil(t, ifStmt.ElseStmts)
}

func TestParser_WhileLoop(t *testing.T) {
	tree := New(`while x < 10 { x = x + 1; }`).Parse()
	while, ok := tree.Stmts[0].(*ast.WhileStmt)
	assert.True(t, ok)
	assert.Len(t, while.Body.Stmts, 1)
}

func TestParser_BoolExprConnectorChain(t *testing.T) {
	// x > 1 and (y < 2 or z == 3) - each connector binds the segment that
	// immediately follows it, so "or" nests under "and" rather than both
	// connectors attaching to a single flat list of three comparisons.
	tree := New(`if x > 1 and y < 2 or z == 3 { println(1); }`).Parse()
	ifStmt := tree.Stmts[0].(*ast.IfStmt)
	cond := ifStmt.IfPart.Cond.(*ast.ComplexBoolExpr)
	assert.Equal(t, token.GREATER_THAN, cond.Rel.Type)
	assert.True(t, cond.HasConnector)
	assert.Equal(t, token.AND, cond.Connector.Type)

	next, ok := cond.Next.(*ast.ComplexBoolExpr)
	assert.True(t, ok)
	assert.Equal(t, token.LESS_THAN, next.Rel.Type)
	assert.True(t, next.HasConnector)
	assert.Equal(t, token.OR, next.Connector.Type)

	last, ok := next.Next.(*ast.ComplexBoolExpr)
	assert.True(t, ok)
	assert.False(t, last.HasConnector)
	assert.Equal(t, token.EQUAL, last.Rel.Type)
}

func TestParser_ListConditionIsSyntaxError(t *testing.T) {
	assert.Panics(t, func() {
		New(`if [1, 2] { println(1); }`).Parse()
	})
}

func TestParser_LenAndReadExpressions(t *testing.T) {
	tree := New(`x = len(a) + readint("n: ");`).Parse()
	assign := tree.Stmts[0].(*ast.AssignStmt)
	root := assign.Rhs.(*ast.ComplexExpr)

	_, ok := root.First.(*ast.LenExpr)
	assert.True(t, ok)

	read, ok := root.Second.(*ast.ReadExpr)
	assert.True(t, ok)
	assert.True(t, read.ReadsInt)
}

func TestParser_MissingSemicolonPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(`x = 1 y = 2;`).Parse()
	})
}

func TestParser_UnclosedBracePanics(t *testing.T) {
	assert.Panics(t, func() {
		New(`if x > 1 { println(x);`).Parse()
	})
}
