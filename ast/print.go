/*
File    : mypl/ast/print.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 4

// Printer renders a StmtList as an indented tree, one line per node. It
// replaces the teacher's PrintingVisitor: rather than every node
// implementing Accept and calling back into a visitor, Printer walks the
// closed node set directly with a type switch - there is only ever one
// thing a Printer does with a node, so the double dispatch bought
// nothing.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// Print renders list and returns the accumulated text.
func Print(list *StmtList) string {
	p := &Printer{}
	p.stmtList(list)
	return p.buf.String()
}

func (p *Printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteString("\n")
}

func (p *Printer) stmtList(list *StmtList) {
	p.indent += indentSize
	for _, s := range list.Stmts {
		p.stmt(s)
	}
	p.indent -= indentSize
}

func (p *Printer) stmt(s Stmt) {
	switch n := s.(type) {
	case *PrintStmt:
		which := "print"
		if n.Newline {
			which = "println"
		}
		p.line("%s", which)
		p.indent += indentSize
		p.expr(n.Expr)
		p.indent -= indentSize

	case *AssignStmt:
		if n.Index != nil {
			p.line("assign %s[...]", n.Lhs.Lexeme)
			p.indent += indentSize
			p.expr(n.Index)
		} else {
			p.line("assign %s", n.Lhs.Lexeme)
			p.indent += indentSize
		}
		p.expr(n.Rhs)
		p.indent -= indentSize

	case *IfStmt:
		p.line("if")
		p.indent += indentSize
		p.boolExpr(n.IfPart.Cond)
		p.stmtList(n.IfPart.StmtList)
		for _, ei := range n.ElseIfs {
			p.line("elseif")
			p.indent += indentSize
			p.boolExpr(ei.Cond)
			p.stmtList(ei.StmtList)
			p.indent -= indentSize
		}
		if n.HasElse {
			p.line("else")
			p.stmtList(n.ElseStmts)
		}
		p.indent -= indentSize

	case *WhileStmt:
		p.line("while")
		p.indent += indentSize
		p.boolExpr(n.Cond)
		p.stmtList(n.Body)
		p.indent -= indentSize

	default:
		p.line("unknown statement %T", s)
	}
}

func (p *Printer) expr(e Expr) {
	switch n := e.(type) {
	case *SimpleExpr:
		neg := ""
		if n.Negated {
			neg = "not "
		}
		p.line("%s%s(%s)", neg, n.Term.Type, n.Term.Lexeme)

	case *IndexExpr:
		neg := ""
		if n.Negated {
			neg = "not "
		}
		p.line("%sindex %s[...]", neg, n.Identifier.Lexeme)
		p.indent += indentSize
		p.expr(n.Index)
		p.indent -= indentSize

	case *ListExpr:
		p.line("list (%d elements)", len(n.Expressions))
		p.indent += indentSize
		for _, el := range n.Expressions {
			p.expr(el)
		}
		p.indent -= indentSize

	case *ComplexExpr:
		p.line("binary %s", n.Rel.Type)
		p.indent += indentSize
		p.expr(n.First)
		p.expr(n.Second)
		p.indent -= indentSize

	case *LenExpr:
		p.line("len")
		p.indent += indentSize
		p.expr(n.Expr)
		p.indent -= indentSize

	case *ReadExpr:
		which := "readstr"
		if n.ReadsInt {
			which = "readint"
		}
		p.line("%s", which)
		p.indent += indentSize
		p.expr(n.Expr)
		p.indent -= indentSize

	default:
		p.line("unknown expression %T", e)
	}
}

func (p *Printer) boolExpr(b BoolExpr) {
	switch n := b.(type) {
	case *SimpleBoolExpr:
		neg := ""
		if n.Negated {
			neg = "not "
		}
		p.line("%sbool", neg)
		p.indent += indentSize
		p.expr(n.Expr)
		p.indent -= indentSize

	case *ComplexBoolExpr:
		p.line("bool %s", n.Rel.Type)
		p.indent += indentSize
		p.expr(n.First)
		p.expr(n.Second)
		p.indent -= indentSize
		if n.HasConnector {
			p.line("%s", n.Connector.Type)
			p.boolExpr(n.Next)
		}

	default:
		p.line("unknown bool expression %T", b)
	}
}
