/*
File    : mypl/interp/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp implements the tree-walking interpreter: the
// side-effecting twin of package check. It shares the same dispatch
// shape - a type switch over the closed ast node set - and the same
// scope.Table symbol table, run after Check has already accepted the
// program.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/akashmaji946/mypl/ast"
	"github.com/akashmaji946/mypl/langerr"
	"github.com/akashmaji946/mypl/scope"
	"github.com/akashmaji946/mypl/token"
	"github.com/akashmaji946/mypl/value"
)

// Interpreter walks a program's StmtList, evaluating each statement for
// effect. cval holds the value of the expression most recently
// evaluated - the same single-slot "current value" register the
// original implementation threads through its visitor.
type Interpreter struct {
	Sym *scope.Table
	Out io.Writer
	In  *bufio.Reader

	cval value.Value
}

// New returns an Interpreter writing to out and reading prompts from in.
func New(out io.Writer, in io.Reader) *Interpreter {
	return &Interpreter{Sym: scope.New(), Out: out, In: bufio.NewReader(in)}
}

// Run executes list from the top, returning the first positioned
// runtime error encountered, or nil if it ran to completion.
func (ip *Interpreter) Run(list *ast.StmtList) (err error) {
	defer langerr.Recover(&err)
	ip.stmtList(list)
	return nil
}

func (ip *Interpreter) stmtList(list *ast.StmtList) {
	ip.Sym.Push()
	defer ip.Sym.Pop()
	for _, s := range list.Stmts {
		ip.stmt(s)
	}
}

func (ip *Interpreter) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.PrintStmt:
		ip.printStmt(n)
	case *ast.AssignStmt:
		ip.assignStmt(n)
	case *ast.IfStmt:
		ip.ifStmt(n)
	case *ast.WhileStmt:
		ip.whileStmt(n)
	}
}

func (ip *Interpreter) printStmt(n *ast.PrintStmt) {
	ip.expr(n.Expr)
	fmt.Fprint(ip.Out, ip.cval.String())
	if n.Newline {
		fmt.Fprint(ip.Out, "\n")
	}
}

// EXPRESSIONS

func (ip *Interpreter) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.SimpleExpr:
		ip.simpleExpr(n)
	case *ast.IndexExpr:
		ip.indexExpr(n)
	case *ast.ListExpr:
		ip.listExpr(n)
	case *ast.ComplexExpr:
		ip.complexExpr(n)
	case *ast.LenExpr:
		ip.expr(n.Expr)
		ip.cval = value.Int{V: value.Len(ip.cval)}
	case *ast.ReadExpr:
		ip.readExpr(n)
	}
}

func (ip *Interpreter) simpleExpr(n *ast.SimpleExpr) {
	switch n.Term.Type {
	case token.ID:
		ip.cval = ip.Sym.Value(n.Term.Lexeme)
	case token.INT:
		i, _ := strconv.ParseInt(n.Term.Lexeme, 10, 64)
		ip.cval = value.Int{V: i}
	case token.BOOL:
		ip.cval = value.Bool{V: n.Term.Lexeme == "true"}
	case token.STRING:
		ip.cval = value.Str{V: n.Term.Lexeme}
	case token.DNE:
		ip.cval = value.Absent{}
	}
}

// readExpr writes the prompt expression, reads one line from In, and on
// ReadsInt parses it as an integer - a failed parse silently yields 0,
// matching the original implementation's behavior rather than raising a
// diagnostic.
func (ip *Interpreter) readExpr(n *ast.ReadExpr) {
	ip.expr(n.Expr)
	fmt.Fprint(ip.Out, ip.cval.String())

	line, _ := ip.In.ReadString('\n')
	line = trimNewline(line)

	if n.ReadsInt {
		i, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			i = 0
		}
		ip.cval = value.Int{V: i}
		return
	}
	ip.cval = value.Str{V: line}
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func (ip *Interpreter) indexExpr(n *ast.IndexExpr) {
	ip.expr(n.Index)
	idx := int(ip.cval.(value.Int).V)

	list := ip.Sym.Value(n.Identifier.Lexeme).(value.List)

	if idx < 0 || idx >= len(list.Elements) {
		tok := n.Index.FirstToken()
		langerr.Raise(tok.Line, tok.Column, "array index out of bounds! (idx: %d, len: %d)", idx, len(list.Elements))
	}

	ip.cval = list.Elements[idx]
}

func (ip *Interpreter) listExpr(n *ast.ListExpr) {
	elems := make([]value.Value, len(n.Expressions))
	for i, e := range n.Expressions {
		ip.expr(e)
		elems[i] = ip.cval
	}
	ip.cval = value.List{Elements: elems}
}

func (ip *Interpreter) complexExpr(n *ast.ComplexExpr) {
	ip.expr(n.First)
	l := ip.cval

	ip.expr(n.Second)
	r := ip.cval

	switch n.Rel.Type {
	case token.PLUS:
		if ls, ok := l.(value.Str); ok {
			ip.cval = value.Str{V: ls.V + castStr(r)}
		} else {
			ip.cval = addValues(n.Rel, l, r)
		}
	case token.MINUS:
		ip.cval = value.Int{V: asInt(n.Rel, l) - asInt(n.Rel, r)}
	case token.MULTIPLY:
		ip.cval = value.Int{V: asInt(n.Rel, l) * asInt(n.Rel, r)}
	case token.DIVIDE:
		divisor := asInt(n.Rel, r)
		if divisor == 0 {
			langerr.Raise(n.Rel.Line, n.Rel.Column, "division by zero")
		}
		// Integer truncation, matching what the type checker assumes:
		// INT/INT is always INT.
		ip.cval = value.Int{V: asInt(n.Rel, l) / divisor}
	case token.MODULUS:
		divisor := asInt(n.Rel, r)
		if divisor == 0 {
			langerr.Raise(n.Rel.Line, n.Rel.Column, "division by zero")
		}
		ip.cval = value.Int{V: asInt(n.Rel, l) % divisor}
	default:
		langerr.Raise(n.Rel.Line, n.Rel.Column, "unknown or invalid operator")
	}
}

func addValues(rel token.Token, l, r value.Value) value.Value {
	if list, ok := l.(value.List); ok {
		rlist, ok := r.(value.List)
		if !ok {
			langerr.Raise(rel.Line, rel.Column, "cannot concatenate ARRAY with non-ARRAY")
		}
		elems := make([]value.Value, 0, len(list.Elements)+len(rlist.Elements))
		elems = append(elems, list.Elements...)
		elems = append(elems, rlist.Elements...)
		return value.List{Elements: elems}
	}
	return value.Int{V: asInt(rel, l) + asInt(rel, r)}
}

func asInt(rel token.Token, v value.Value) int64 {
	i, ok := v.(value.Int)
	if !ok {
		langerr.Raise(rel.Line, rel.Column, "expected INT operand for %s", rel.Type)
	}
	return i.V
}

// castStr renders v the way string concatenation does: booleans as
// true/false, an absent value as the empty string, everything else via
// its normal String().
func castStr(v value.Value) string {
	return v.String()
}

// BOOLEAN EXPRESSIONS

func (ip *Interpreter) boolExpr(b ast.BoolExpr) value.Bool {
	switch n := b.(type) {
	case *ast.SimpleBoolExpr:
		ip.expr(n.Expr)
		result := value.Truthy(ip.cval)
		if n.Negated {
			result = !result
		}
		return value.Bool{V: result}
	case *ast.ComplexBoolExpr:
		return ip.complexBoolExpr(n)
	default:
		return value.Bool{V: false}
	}
}

func (ip *Interpreter) complexBoolExpr(n *ast.ComplexBoolExpr) value.Bool {
	ip.expr(n.First)
	l := ip.cval

	ip.expr(n.Second)
	r := ip.cval

	var result bool
	switch n.Rel.Type {
	case token.EQUAL:
		result = value.Equal(l, r)
	case token.NOT_EQUAL:
		result = !value.Equal(l, r)
	case token.LESS_THAN:
		result = compare(n.Rel, l, r) < 0
	case token.GREATER_THAN:
		result = compare(n.Rel, l, r) > 0
	case token.LESS_THAN_EQUAL:
		result = compare(n.Rel, l, r) <= 0
	case token.GREATER_THAN_EQUAL:
		result = compare(n.Rel, l, r) >= 0
	default:
		langerr.Raise(n.Rel.Line, n.Rel.Column, "unknown or invalid operator")
	}

	if !n.HasConnector {
		return value.Bool{V: result}
	}

	// Both sides of the connector are evaluated regardless of result -
	// there is no short-circuiting (spec's documented invariant).
	next := ip.boolExpr(n.Next)

	if n.Connector.Type == token.AND {
		return value.Bool{V: result && next.V}
	}
	return value.Bool{V: result || next.V}
}

func compare(rel token.Token, l, r value.Value) int {
	li, lok := l.(value.Int)
	ri, rok := r.(value.Int)
	if lok && rok {
		switch {
		case li.V < ri.V:
			return -1
		case li.V > ri.V:
			return 1
		default:
			return 0
		}
	}
	ls, lok := l.(value.Str)
	rs, rok := r.(value.Str)
	if lok && rok {
		switch {
		case ls.V < rs.V:
			return -1
		case ls.V > rs.V:
			return 1
		default:
			return 0
		}
	}
	langerr.Raise(rel.Line, rel.Column, "cannot order-compare operands of type %s", l.Type())
	panic("unreachable")
}

// ASSIGNMENT

func (ip *Interpreter) assignStmt(n *ast.AssignStmt) {
	name := n.Lhs.Lexeme

	if !ip.Sym.Exists(name) {
		ip.Sym.Add(name)
	}

	var indexed bool
	var idx int
	var appending bool

	if n.Index != nil {
		ip.expr(n.Index)
		if _, ok := ip.cval.(value.Absent); ok {
			appending = true
		} else {
			idx = int(ip.cval.(value.Int).V)
		}
		indexed = true
	}

	ip.expr(n.Rhs)
	val := ip.cval

	if !indexed {
		ip.Sym.SetValue(name, val)
		return
	}

	list := ip.Sym.Value(name).(value.List)
	if appending {
		list.Elements = append(list.Elements, val)
		ip.Sym.SetValue(name, list)
		return
	}

	if idx < 0 || idx >= len(list.Elements) {
		langerr.Raise(n.Lhs.Line, n.Lhs.Column, "array index out of bounds! (idx: %d, len: %d)", idx, len(list.Elements))
	}
	list.Elements[idx] = val
	ip.Sym.SetValue(name, list)
}

// IF / WHILE

func (ip *Interpreter) ifStmt(n *ast.IfStmt) {
	if ip.boolExpr(n.IfPart.Cond).V {
		ip.stmtList(n.IfPart.StmtList)
		return
	}

	for _, ei := range n.ElseIfs {
		if ip.boolExpr(ei.Cond).V {
			ip.stmtList(ei.StmtList)
			return
		}
	}

	if n.HasElse {
		ip.stmtList(n.ElseStmts)
	}
}

func (ip *Interpreter) whileStmt(n *ast.WhileStmt) {
	for ip.boolExpr(n.Cond).V {
		ip.stmtList(n.Body)
	}
}
