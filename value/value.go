/*
File    : mypl/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime value representation produced and
// consumed by the interpreter: a small tagged union of integer, string,
// boolean, list, and absent. It mirrors the shape of the teacher's
// objects.GoMixObject family (one interface, one concrete struct per
// kind) but closes the set down to exactly what spec.md's runtime needs.
package value

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/mypl/token"
)

// Value is implemented by every runtime value kind.
type Value interface {
	// Type reports the token.Type this value is tagged with (INT,
	// STRING, BOOL, ARRAY, or NA for Absent) - the type checker and interpreter reuse
	// the token vocabulary directly rather than defining a parallel
	// enum, following the original implementation's Token.token_from_native.
	Type() token.Type
	// String renders the value the way `print`/`println` do.
	String() string
}

// Int is a 64-bit signed integer value.
type Int struct{ V int64 }

func (Int) Type() token.Type { return token.INT }
func (i Int) String() string { return fmt.Sprintf("%d", i.V) }

// Str is a string value.
type Str struct{ V string }

func (Str) Type() token.Type { return token.STRING }
func (s Str) String() string { return s.V }

// Bool is a boolean value.
type Bool struct{ V bool }

func (Bool) Type() token.Type  { return token.BOOL }
func (b Bool) String() string {
	if b.V {
		return "true"
	}
	return "false"
}

// List is an ordered, mutable sequence of values. Lists are heterogeneous
// at this level - the type checker is what enforces a single element
// type per list - and support in-place index assignment and append
// (spec.md's `a[] = x` form).
type List struct{ Elements []Value }

func (List) Type() token.Type { return token.ARRAY }

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, el := range l.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(el.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Absent is spec.md's "absent" runtime tag. The interpreter produces one
// when it evaluates the DNE sentinel (the empty index of `a[] = x`); a
// variable bound but not yet assigned holds no Value at all, not Absent.
// Printing one yields the empty string, matching the original
// implementation's __cast_str(None).
type Absent struct{}

func (Absent) Type() token.Type { return token.NA }
func (Absent) String() string   { return "" }

// Truthy reports whether v should be treated as true by SimpleBoolExpr
// promotion: nonzero ints, nonempty strings/lists, and Bool.V itself.
// Absent is always falsy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Bool:
		return x.V
	case Int:
		return x.V != 0
	case Str:
		return x.V != ""
	case List:
		return len(x.Elements) != 0
	case Absent:
		return false
	default:
		return false
	}
}

// Len returns the element count of v, or -1 if v has no notion of
// length (spec.md's `len` on a scalar that isn't a string or list).
func Len(v Value) int64 {
	switch x := v.(type) {
	case Str:
		return int64(len(x.V))
	case List:
		return int64(len(x.Elements))
	default:
		return -1
	}
}

// Equal reports whether a and b are the same value, used by
// ComplexBoolExpr's == and != relations. Values of different concrete
// kinds are never equal, including Int vs Bool.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x.V == y.V
	case Str:
		y, ok := b.(Str)
		return ok && x.V == y.V
	case Bool:
		y, ok := b.(Bool)
		return ok && x.V == y.V
	case Absent:
		_, ok := b.(Absent)
		return ok
	case List:
		y, ok := b.(List)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
