/*
File    : mypl/scope/table_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/akashmaji946/mypl/token"
	"github.com/akashmaji946/mypl/value"
	"github.com/stretchr/testify/assert"
)

func TestTable_AddAndLookup(t *testing.T) {
	tb := New()
	assert.False(t, tb.Exists("x"))

	tb.Add("x")
	tb.SetType("x", token.INT)
	tb.SetValue("x", value.Int{V: 5})

	assert.True(t, tb.Exists("x"))
	assert.Equal(t, token.INT, tb.Type("x"))
	assert.Equal(t, value.Int{V: 5}, tb.Value("x"))
}

func TestTable_InnerFrameShadowsOuter(t *testing.T) {
	tb := New()
	tb.Add("x")
	tb.SetValue("x", value.Int{V: 1})

	tb.Push()
	tb.Add("x")
	tb.SetValue("x", value.Int{V: 2})
	assert.Equal(t, value.Int{V: 2}, tb.Value("x"))
	tb.Pop()

	assert.Equal(t, value.Int{V: 1}, tb.Value("x"))
}

func TestTable_OuterVisibleFromInner(t *testing.T) {
	tb := New()
	tb.Add("x")
	tb.SetValue("x", value.Int{V: 7})

	tb.Push()
	assert.True(t, tb.Exists("x"))
	assert.Equal(t, value.Int{V: 7}, tb.Value("x"))
	tb.SetValue("x", value.Int{V: 9})
	tb.Pop()

	assert.Equal(t, value.Int{V: 9}, tb.Value("x"))
}

func TestTable_PopDiscardsInnerBindings(t *testing.T) {
	tb := New()
	tb.Push()
	tb.Add("temp")
	assert.True(t, tb.Exists("temp"))
	tb.Pop()
	assert.False(t, tb.Exists("temp"))
}
