/*
File    : mypl/check/typechecker_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package check

import (
	"testing"

	"github.com/akashmaji946/mypl/parser"
	"github.com/stretchr/testify/assert"
)

func checkSrc(t *testing.T, src string) error {
	t.Helper()
	tree := parser.New(src).Parse()
	return Check(tree)
}

func TestCheck_WellTypedProgram(t *testing.T) {
	err := checkSrc(t, `x = 1; y = 2; println(x + y);`)
	assert.NoError(t, err)
}

func TestCheck_UndefinedVariable(t *testing.T) {
	err := checkSrc(t, `println(y);`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable 'y'")
}

func TestCheck_MismatchedAssignTypeFails(t *testing.T) {
	err := checkSrc(t, `x = 1; x = "a";`)
	assert.Error(t, err)
}

func TestCheck_StringPlusIntIsString(t *testing.T) {
	err := checkSrc(t, `s = "n="; s = s + 42; println(s);`)
	assert.NoError(t, err)
}

func TestCheck_ArrayPlusNonArrayFails(t *testing.T) {
	err := checkSrc(t, `a = [1, 2]; x = a + 1;`)
	assert.Error(t, err)
}

func TestCheck_ListElementTypeMismatchFails(t *testing.T) {
	err := checkSrc(t, `a = [1, "two"];`)
	assert.Error(t, err)
}

func TestCheck_IndexOnNonArrayFails(t *testing.T) {
	err := checkSrc(t, `x = 1; y = x[0];`)
	assert.Error(t, err)
}

func TestCheck_LenResultUsableAsInt(t *testing.T) {
	// len() must yield INT, not the operand's own type, so arithmetic on
	// its result type-checks.
	err := checkSrc(t, `a = [1, 2, 3]; n = len(a) + 1; println(n);`)
	assert.NoError(t, err)
}

func TestCheck_WhileConditionMustBeBool(t *testing.T) {
	err := checkSrc(t, `x = 1; while x { x = x - 1; }`)
	assert.Error(t, err)
}

func TestCheck_IfConditionOk(t *testing.T) {
	err := checkSrc(t, `x = 1; if x > 0 { println(x); }`)
	assert.NoError(t, err)
}

func TestCheck_ComparingDifferentTypesFails(t *testing.T) {
	err := checkSrc(t, `if 1 == "a" { println(1); }`)
	assert.Error(t, err)
}

func TestCheck_BoolConnectorBothSidesChecked(t *testing.T) {
	err := checkSrc(t, `x = 1; if x > 0 and x == "a" { println(1); }`)
	assert.Error(t, err)
}
