/*
File    : mypl/ast/promote.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "errors"

// ErrNotBoolExpr is returned by ToBoolExpr when the given Expr cannot be
// reshaped into a boolean-expression tree (spec.md §4.2's "boolean
// expression promotion"). The original Python implementation detects
// this by comparing a freshly built wrapper against the sentinel value
// False, which conflates a legitimate falsy result with failure; this
// port uses an explicit error instead (spec.md §9 open question).
var ErrNotBoolExpr = errors.New("invalid boolean expression")

// ToBoolExpr reshapes an arithmetic-shaped Expr (as produced by the
// parser's expr()/exprcompile precedence climbing) into a BoolExpr, for
// use as the condition of an if/elseif/while. See spec.md §4.2:
//
//   - A SimpleExpr, IndexExpr, or LenExpr at the root becomes a
//     SimpleBoolExpr wrapping it; a leading `not` is carried up onto
//     the wrapper instead of staying on the leaf.
//   - A ComplexExpr at the root becomes a ComplexBoolExpr: First is the
//     left operand, Rel is the operator, and the right side is
//     interpreted recursively - if it is itself a ComplexExpr, its left
//     operand becomes Second, its operator becomes the connector (which
//     must be `and`/`or`), and its right side is promoted into the
//     chained BoolExpr; otherwise the right operand is Second directly
//     and there is no connector.
//   - A ListExpr can never be promoted: it is a syntactic error as a
//     condition.
func ToBoolExpr(e Expr) (BoolExpr, error) {
	switch n := e.(type) {
	case *SimpleExpr:
		negated := n.Negated
		leaf := *n
		leaf.Negated = false
		return &SimpleBoolExpr{Expr: &leaf, Negated: negated}, nil

	case *IndexExpr:
		negated := n.Negated
		leaf := *n
		leaf.Negated = false
		return &SimpleBoolExpr{Expr: &leaf, Negated: negated}, nil

	case *LenExpr:
		return &SimpleBoolExpr{Expr: n, Negated: false}, nil

	case *ComplexExpr:
		return complexToBoolExpr(n)

	default:
		return nil, ErrNotBoolExpr
	}
}

func complexToBoolExpr(n *ComplexExpr) (BoolExpr, error) {
	first := n.First

	// The original implementation hoists first.negated onto the bool
	// expr here, but never consults it during evaluation; this port
	// drops the field entirely rather than carry dead state (see
	// ComplexBoolExpr's doc comment), so the leaf's own Negated, if
	// any, is simply discarded.
	switch f := first.(type) {
	case *SimpleExpr:
		leaf := *f
		leaf.Negated = false
		first = &leaf
	case *IndexExpr:
		leaf := *f
		leaf.Negated = false
		first = &leaf
	}

	cb := &ComplexBoolExpr{
		First: first,
		Rel:   n.Rel,
	}

	switch right := n.Second.(type) {
	case *ComplexExpr:
		if !right.Rel.Type.IsConnector() {
			return nil, ErrNotBoolExpr
		}
		cb.Second = right.First
		cb.HasConnector = true
		cb.Connector = right.Rel
		next, err := ToBoolExpr(right.Second)
		if err != nil {
			return nil, err
		}
		cb.Next = next

	case *SimpleExpr, *IndexExpr, *LenExpr, *ReadExpr, *ListExpr:
		cb.Second = right
		cb.HasConnector = false

	default:
		return nil, ErrNotBoolExpr
	}

	return cb, nil
}
