package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minky/internal/atom"
	"minky/internal/backtrace"
)

func TestRepresentScalars(t *testing.T) {
	assert.Equal(t, "null", Represent(Null()))
	assert.Equal(t, "true", Represent(Bool(true)))
	assert.Equal(t, "3", Represent(Float(3)))
	assert.Equal(t, "hello", Represent(String("hello")), "top-level strings are unquoted")
}

func TestRepresentListQuotesNestedStrings(t *testing.T) {
	l := NewList(Float(1), String("two"))
	assert.Equal(t, `[1, "two"]`, Represent(ListValue(l)))
}

func TestRepresentTableIsSortedByKey(t *testing.T) {
	tbl := NewTable()
	tbl.Declare("b", Float(2))
	tbl.Declare("a", Float(1))
	assert.Equal(t, "<Table {a: 1, b: 2}>", Represent(TableValue(tbl)))
}

func TestRepresentCommand(t *testing.T) {
	cmd := NewCommand("noop", func(ctx Evaluator, head atom.Atom, body []atom.Atom) (Signal, *backtrace.Backtrace) {
		return Complete(Null()), nil
	})
	assert.Equal(t, "<Command>", Represent(CommandOf(cmd)))
}

func TestRepresentClosure(t *testing.T) {
	c := NewClosure(testMark(), nil, nil)
	assert.Contains(t, Represent(ClosureOf(c)), "<Closure at row")
}
