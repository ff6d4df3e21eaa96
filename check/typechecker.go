/*
File    : mypl/check/typechecker.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package check implements the static type checker: a read-only walk of
// the AST that rejects any program whose types don't line up, before
// the interpreter ever runs it. Like the interpreter, it dispatches over
// the closed ast node set with a type switch rather than a visitor.
//
// The checker reuses token.Type itself (INT, STRING, BOOL, ARRAY, NA)
// as the vocabulary of static types - the original implementation does
// the same, rather than defining a parallel DataType enum.
package check

import (
	"github.com/akashmaji946/mypl/ast"
	"github.com/akashmaji946/mypl/langerr"
	"github.com/akashmaji946/mypl/scope"
	"github.com/akashmaji946/mypl/token"
)

// Checker walks a program's StmtList, tracking the static type of the
// expression currently in hand in ctype, exactly as the interpreter
// tracks its runtime counterpart in cval.
type Checker struct {
	Sym   *scope.Table
	ctype token.Type
}

// New returns a Checker with its own symbol table.
func New() *Checker {
	return &Checker{Sym: scope.New()}
}

// Check type-checks list, returning the first positioned error
// encountered, or nil if the program is well-typed.
func Check(list *ast.StmtList) (err error) {
	defer langerr.Recover(&err)
	New().stmtList(list)
	return nil
}

func (c *Checker) stmtList(list *ast.StmtList) {
	c.Sym.Push()
	defer c.Sym.Pop()
	for _, s := range list.Stmts {
		c.stmt(s)
	}
}

func (c *Checker) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.PrintStmt:
		c.expr(n.Expr)
	case *ast.AssignStmt:
		c.assignStmt(n)
	case *ast.IfStmt:
		c.ifStmt(n)
	case *ast.WhileStmt:
		c.whileStmt(n)
	}
}

func (c *Checker) assignStmt(n *ast.AssignStmt) {
	name := n.Lhs.Lexeme
	isIndex := n.Index != nil

	if isIndex {
		c.expr(n.Index)
	}
	c.expr(n.Rhs)
	rhsType := c.ctype

	if c.Sym.Exists(name) {
		varType := c.Sym.Type(name)

		if isIndex {
			if varType != token.ARRAY && varType != token.STRING {
				langerr.Raise(n.Lhs.Line, n.Lhs.Column, "cannot access index on the type %s", varType)
			}
			return
		}

		if rhsType != varType && varType != token.NA && rhsType != token.NA {
			langerr.Raise(n.Lhs.Line, n.Lhs.Column, "expected %s for '%s', got %s", varType, name, rhsType)
		}
		c.Sym.SetType(name, rhsType)
		return
	}

	if isIndex {
		langerr.Raise(n.Lhs.Line, n.Lhs.Column, "cannot access index on nonexistent variable, %s", name)
	}
	c.Sym.Add(name)
	c.Sym.SetType(name, rhsType)
}

func (c *Checker) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.SimpleExpr:
		c.simpleExpr(n)
	case *ast.IndexExpr:
		c.indexExpr(n)
	case *ast.ListExpr:
		c.listExpr(n)
	case *ast.ComplexExpr:
		c.complexExpr(n)
	case *ast.LenExpr:
		c.expr(n.Expr)
		// The original implementation leaves ctype at whatever the
		// operand's type was rather than INT, even though len()
		// always produces an INT at runtime; that mismatch breaks
		// ordinary uses of a len() result in further arithmetic, so
		// this port corrects it.
		c.ctype = token.INT
	case *ast.ReadExpr:
		if n.ReadsInt {
			c.ctype = token.INT
		} else {
			c.ctype = token.STRING
		}
	}
}

func (c *Checker) simpleExpr(n *ast.SimpleExpr) {
	if n.Term.Type == token.ID {
		c.ctype = c.typeOrFail(n.Term)
		return
	}
	c.ctype = n.Term.Type
}

func (c *Checker) typeOrFail(id token.Token) token.Type {
	if c.Sym.Exists(id.Lexeme) {
		return c.Sym.Type(id.Lexeme)
	}
	langerr.Raise(id.Line, id.Column, "undefined variable '%s'", id.Lexeme)
	panic("unreachable")
}

func (c *Checker) indexExpr(n *ast.IndexExpr) {
	arrayType := c.typeOrFail(n.Identifier)
	if arrayType != token.ARRAY && arrayType != token.STRING {
		langerr.Raise(n.Identifier.Line, n.Identifier.Column,
			"expected an array or string type for index access on '%s', got %s", n.Identifier.Lexeme, arrayType)
	}

	c.expr(n.Index)
	if c.ctype != token.INT && c.ctype != token.NA {
		tok := n.Index.FirstToken()
		langerr.Raise(tok.Line, tok.Column, "expected INT, got %s", c.ctype)
	}

	c.ctype = token.NA
}

func (c *Checker) listExpr(n *ast.ListExpr) {
	var common token.Type
	for _, el := range n.Expressions {
		c.expr(el)
		if common == "" {
			common = c.ctype
		} else if c.ctype != common {
			tok := el.FirstToken()
			langerr.Raise(tok.Line, tok.Column, "expected %s, got %s", common, c.ctype)
		}
	}
	c.ctype = token.ARRAY
}

func (c *Checker) complexExpr(n *ast.ComplexExpr) {
	c.expr(n.First)
	leftType := c.ctype

	c.expr(n.Second)
	rightType := c.ctype

	switch {
	case leftType == rightType:
		// ctype already holds rightType, nothing to adjust.
	case leftType == token.STRING && rightType == token.INT:
		c.ctype = token.STRING
	case leftType == token.NA || rightType == token.NA:
		c.ctype = token.NA
	default:
		tok := n.Second.FirstToken()
		langerr.Raise(tok.Line, tok.Column, "expected %s, got %s", leftType, rightType)
	}

	switch leftType {
	case token.ARRAY:
		if n.Rel.Type != token.PLUS {
			langerr.Raise(n.Rel.Line, n.Rel.Column, "cannot perform %s on ARRAY type", n.Rel.Type)
		}
	case token.INT:
		if !checkRelInt(n.Rel.Type) {
			langerr.Raise(n.Rel.Line, n.Rel.Column, "cannot perform %s on INT type", n.Rel.Type)
		}
	case token.STRING:
		if !checkRelString(n.Rel.Type) {
			langerr.Raise(n.Rel.Line, n.Rel.Column, "cannot perform %s on STRING type", n.Rel.Type)
		}
	case token.BOOL:
		if !checkRelBool(n.Rel.Type) {
			langerr.Raise(n.Rel.Line, n.Rel.Column, "cannot perform %s on BOOL type", n.Rel.Type)
		}
	}
}

func checkRelInt(t token.Type) bool {
	switch t {
	case token.PLUS, token.MINUS, token.MULTIPLY, token.DIVIDE, token.MODULUS,
		token.EQUAL, token.LESS_THAN, token.GREATER_THAN, token.LESS_THAN_EQUAL,
		token.GREATER_THAN_EQUAL, token.NOT_EQUAL:
		return true
	default:
		return false
	}
}

func checkRelString(t token.Type) bool { return t == token.PLUS }

func checkRelBool(t token.Type) bool { return t == token.EQUAL || t == token.NOT_EQUAL }

func checkRelCompare(t token.Type) bool {
	switch t {
	case token.EQUAL, token.LESS_THAN, token.GREATER_THAN, token.LESS_THAN_EQUAL, token.GREATER_THAN_EQUAL, token.NOT_EQUAL:
		return true
	default:
		return false
	}
}

// BOOLEAN EXPRESSIONS

func (c *Checker) boolExpr(b ast.BoolExpr) {
	switch n := b.(type) {
	case *ast.SimpleBoolExpr:
		c.expr(n.Expr)
		if c.ctype != token.BOOL && c.ctype != token.NA {
			tok := n.Expr.FirstToken()
			langerr.Raise(tok.Line, tok.Column, "condition must be of BOOL type, instead got %s", c.ctype)
		}
	case *ast.ComplexBoolExpr:
		c.complexBoolExpr(n)
	}
}

func (c *Checker) complexBoolExpr(n *ast.ComplexBoolExpr) {
	c.expr(n.First)
	firstType := c.ctype

	c.expr(n.Second)
	secondType := c.ctype

	if firstType != secondType {
		tok := n.Second.FirstToken()
		langerr.Raise(tok.Line, tok.Column, "expected %s, got %s", firstType, secondType)
	}

	switch firstType {
	case token.INT:
		if !checkRelCompare(n.Rel.Type) {
			langerr.Raise(n.Rel.Line, n.Rel.Column, "cannot use %s to compare INT types", n.Rel.Type)
		}
	case token.BOOL:
		if !checkRelBool(n.Rel.Type) {
			langerr.Raise(n.Rel.Line, n.Rel.Column, "cannot use %s to compare BOOL types", n.Rel.Type)
		}
	default:
		tok := n.First.FirstToken()
		langerr.Raise(tok.Line, tok.Column, "encountered uncomparable type %s", firstType)
	}

	if n.HasConnector {
		c.boolExpr(n.Next)
	}

	c.ctype = token.BOOL
}

// IF / WHILE

func (c *Checker) ifStmt(n *ast.IfStmt) {
	c.boolExpr(n.IfPart.Cond)
	c.stmtList(n.IfPart.StmtList)

	for _, ei := range n.ElseIfs {
		c.boolExpr(ei.Cond)
		c.stmtList(ei.StmtList)
	}

	if n.HasElse {
		c.stmtList(n.ElseStmts)
	}
}

func (c *Checker) whileStmt(n *ast.WhileStmt) {
	c.boolExpr(n.Cond)
	c.stmtList(n.Body)
}
