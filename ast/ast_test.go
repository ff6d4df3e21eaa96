/*
File    : mypl/ast/ast_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"strings"
	"testing"

	"github.com/akashmaji946/mypl/token"
	"github.com/stretchr/testify/assert"
)

func intTok(lex string) token.Token { return token.New(token.INT, lex, 1, 1) }
func idTok(lex string) token.Token  { return token.New(token.ID, lex, 1, 1) }

func TestToBoolExpr_SimpleExprPromotesNegation(t *testing.T) {
	simple := &SimpleExpr{Term: idTok("x"), Negated: true}
	be, err := ToBoolExpr(simple)
	assert.NoError(t, err)

	sb, ok := be.(*SimpleBoolExpr)
	assert.True(t, ok)
	assert.True(t, sb.Negated)

	leaf := sb.Expr.(*SimpleExpr)
	assert.False(t, leaf.Negated, "negation should move to the wrapper, not stay on the leaf")
}

func TestToBoolExpr_ComplexExprNoConnector(t *testing.T) {
	ce := &ComplexExpr{
		First:  &SimpleExpr{Term: idTok("x")},
		Rel:    token.New(token.GREATER_THAN, ">", 1, 1),
		Second: &SimpleExpr{Term: intTok("5")},
	}
	be, err := ToBoolExpr(ce)
	assert.NoError(t, err)

	cb := be.(*ComplexBoolExpr)
	assert.False(t, cb.HasConnector)
	assert.Equal(t, token.GREATER_THAN, cb.Rel.Type)
}

func TestToBoolExpr_ConnectorChain(t *testing.T) {
	// x > 1 and y < 2, shaped as x > (1 and (y < 2))
	inner := &ComplexExpr{
		First:  &SimpleExpr{Term: idTok("y")},
		Rel:    token.New(token.LESS_THAN, "<", 1, 1),
		Second: &SimpleExpr{Term: intTok("2")},
	}
	connected := &ComplexExpr{
		First:  &SimpleExpr{Term: intTok("1")},
		Rel:    token.New(token.AND, "and", 1, 1),
		Second: inner,
	}
	outer := &ComplexExpr{
		First:  &SimpleExpr{Term: idTok("x")},
		Rel:    token.New(token.GREATER_THAN, ">", 1, 1),
		Second: connected,
	}
	be, err := ToBoolExpr(outer)
	assert.NoError(t, err)

	cb := be.(*ComplexBoolExpr)
	assert.True(t, cb.HasConnector)
	assert.Equal(t, token.AND, cb.Connector.Type)

	next, ok := cb.Next.(*ComplexBoolExpr)
	assert.True(t, ok)
	assert.False(t, next.HasConnector)
}

func TestToBoolExpr_ListExprIsError(t *testing.T) {
	_, err := ToBoolExpr(&ListExpr{})
	assert.ErrorIs(t, err, ErrNotBoolExpr)
}

func TestPrint_ContainsExpectedNodeLabels(t *testing.T) {
	list := &StmtList{
		Stmts: []Stmt{
			&PrintStmt{Which: token.New(token.PRINTLN, "println", 1, 1),
				Expr: &SimpleExpr{Term: intTok("1")}, Newline: true},
			&AssignStmt{Lhs: idTok("x"), Rhs: &SimpleExpr{Term: intTok("2")}},
		},
	}
	out := Print(list)
	assert.True(t, strings.Contains(out, "println"))
	assert.True(t, strings.Contains(out, "assign x"))
}
