package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableDeclareRejectsRedeclaration(t *testing.T) {
	tbl := NewTable()
	assert.True(t, tbl.Declare("x", Float(1)))
	assert.False(t, tbl.Declare("x", Float(2)), "redeclaring an existing binding must fail")

	v, ok := tbl.Get("x")
	assert.True(t, ok)
	assert.Equal(t, Float(1), v)
}

func TestTableAssignRequiresExistingBinding(t *testing.T) {
	tbl := NewTable()
	assert.False(t, tbl.Assign("x", Float(1)), "assigning an undeclared name must fail")

	tbl.Declare("x", Float(1))
	assert.True(t, tbl.Assign("x", Float(2)))
	v, _ := tbl.Get("x")
	assert.Equal(t, Float(2), v)
}

func TestTableHasAndLen(t *testing.T) {
	tbl := NewTable()
	assert.False(t, tbl.Has("x"))
	tbl.Declare("x", Null())
	assert.True(t, tbl.Has("x"))
	assert.Equal(t, 1, tbl.Len())
}
