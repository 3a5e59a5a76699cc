package context_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minky/internal/context"
	"minky/internal/value"
)

func runOK(t *testing.T, source string) value.Signal {
	t.Helper()
	ctx := context.New(nil)
	signal, err := ctx.RunCode("test", source)
	assert.Nil(t, err)
	return signal
}

// bound reads name from the scope table a program evaluates to: RunCode,
// like any block, completes with its own top-level scope table.
func bound(t *testing.T, signal value.Signal, name string) value.Value {
	t.Helper()
	if !assert.Equal(t, value.KindTable, signal.Value.Kind) {
		return value.Value{}
	}
	v, ok := signal.Value.TableValue.Get(name)
	assert.True(t, ok, "%q is not bound", name)
	return v
}

func TestVarAndResolve(t *testing.T) {
	signal := runOK(t, "var x 1\nvar y x")
	y := bound(t, signal, "y")
	assert.Equal(t, value.KindFloat, y.Kind)
	assert.Equal(t, 1.0, y.FloatValue)
}

func TestVarValuePositionRunsAsStatement(t *testing.T) {
	signal := runOK(t, "var x add 1 2")
	assert.Equal(t, 3.0, bound(t, signal, "x").FloatValue)
}

func TestRedeclarationIsError(t *testing.T) {
	ctx := context.New(nil)
	_, err := ctx.RunCode("test", "var x 1\nvar x 2")
	assert.NotNil(t, err)
}

func TestSetRequiresPriorDeclaration(t *testing.T) {
	ctx := context.New(nil)
	_, err := ctx.RunCode("test", "set x 1")
	assert.NotNil(t, err)
}

func TestSetMutatesOuterScopeThroughNestedBlock(t *testing.T) {
	signal := runOK(t, "var x 1\ntable\n  set x 2")
	assert.Equal(t, 2.0, bound(t, signal, "x").FloatValue)
}

func TestWhileBreakStopsLoop(t *testing.T) {
	signal := runOK(t, "var i 0\nwhile _ true\n  when (>= i 3) (break)\n  set i (add i 1)")
	assert.Equal(t, 3.0, bound(t, signal, "i").FloatValue)
}

func TestWhileContinueResumesLoop(t *testing.T) {
	signal := runOK(t, "var i 0\nvar sum 0\nwhile done (< i 5)\n  set i (add i 1)\n  when (= i 3)\n    continue\n  set sum (add sum i)")
	assert.Equal(t, 12.0, bound(t, signal, "sum").FloatValue)
}

func TestVarTableWithNestedChildrenBuildsPopulatedTable(t *testing.T) {
	signal := runOK(t, "var t table\n  var a 1\n  var b 2")
	tbl := bound(t, signal, "t")
	if assert.Equal(t, value.KindTable, tbl.Kind) {
		v, ok := tbl.TableValue.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1.0, v.FloatValue)
	}
}

func TestTableAsStatementHeadReadsBinding(t *testing.T) {
	signal := runOK(t, "var t table\n  var a 1\n  var b 2\nvar r t a")
	r := bound(t, signal, "r")
	assert.Equal(t, value.KindFloat, r.Kind)
	assert.Equal(t, 1.0, r.FloatValue)
}

func TestTableUsedAsHeadCannotLeakBreak(t *testing.T) {
	ctx := context.New(nil)
	_, err := ctx.RunCode("test", "var t table\n  var a 1\nt (break)")
	assert.NotNil(t, err)
}

func TestClosureCapturesEnclosingScope(t *testing.T) {
	signal := runOK(t, "var x 10\nvar f closure\n  parameter y\n  return (add x y)\nvar r (f 5)")
	assert.Equal(t, 15.0, bound(t, signal, "r").FloatValue)
}

func TestClosureArityMismatchIsError(t *testing.T) {
	ctx := context.New(nil)
	_, err := ctx.RunCode("test", "var f closure\n  parameter a b\n  return a\nf 1")
	assert.NotNil(t, err)
}

func TestListAssignmentAliasesNotCopies(t *testing.T) {
	signal := runOK(t, "var a list 1 2\nvar b a\nlist-push b 3\nvar n (list-length a)")
	assert.Equal(t, 3.0, bound(t, signal, "n").FloatValue)
}

func TestUndefinedIdentifierIsError(t *testing.T) {
	ctx := context.New(nil)
	_, err := ctx.RunCode("test", "nope")
	assert.NotNil(t, err)
}

func TestBacktickInterpolation(t *testing.T) {
	signal := runOK(t, "var name 'world'\nvar s 'hi `name`'")
	s := bound(t, signal, "s")
	assert.Equal(t, value.KindString, s.Kind)
	assert.Equal(t, "hi world", s.StringValue)
}
