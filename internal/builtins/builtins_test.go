package builtins_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"minky/internal/context"
	"minky/internal/value"
)

func run(t *testing.T, source string) (value.Signal, error) {
	t.Helper()
	ctx := context.New(nil)
	signal, err := ctx.RunCode("test", source)
	if err != nil {
		return signal, err
	}
	return signal, nil
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

func TestArithmeticFoldsVariadic(t *testing.T) {
	signal, err := run(t, "var r (add 1 2 3)")
	assert.Nil(t, err)
	assert.Equal(t, 6.0, bound(t, signal, "r").FloatValue)
}

func TestStringAddConcatenates(t *testing.T) {
	signal, err := run(t, "var r (add 'hi ' 1)")
	assert.Nil(t, err)
	r := bound(t, signal, "r")
	assert.Equal(t, value.KindString, r.Kind)
	assert.Equal(t, "hi 1", r.StringValue)
}

func TestFloatAddStringConcatenates(t *testing.T) {
	signal, err := run(t, "var r (add 1 ' apples')")
	assert.Nil(t, err)
	r := bound(t, signal, "r")
	assert.Equal(t, value.KindString, r.Kind)
	assert.Equal(t, "1 apples", r.StringValue)
}

func TestDivisionByZeroFollowsIEEE754(t *testing.T) {
	signal, err := run(t, "var r (div 1 0)")
	assert.Nil(t, err)
	assert.True(t, math.IsInf(bound(t, signal, "r").FloatValue, 1))

	signal, err = run(t, "var r (div -1 0)")
	assert.Nil(t, err)
	assert.True(t, math.IsInf(bound(t, signal, "r").FloatValue, -1))

	signal, err = run(t, "var r (div 0 0)")
	assert.Nil(t, err)
	assert.True(t, math.IsNaN(bound(t, signal, "r").FloatValue))
}

func TestChainedComparisonRequiresEveryAdjacentPair(t *testing.T) {
	signal, err := run(t, "var r (< 1 2 3)")
	assert.Nil(t, err)
	assert.True(t, bound(t, signal, "r").BoolValue)

	signal, err = run(t, "var r (< 1 3 2)")
	assert.Nil(t, err)
	r := bound(t, signal, "r")
	assert.Equal(t, value.KindBool, r.Kind)
	assert.False(t, r.BoolValue)
}

func TestEqualityAcrossVariantsIsFalseNotError(t *testing.T) {
	signal, err := run(t, "var r (= 1 'x')")
	assert.Nil(t, err)
	r := bound(t, signal, "r")
	assert.Equal(t, value.KindBool, r.Kind)
	assert.False(t, r.BoolValue)
}

func TestListGetOutOfRangeIsError(t *testing.T) {
	_, err := run(t, "var l list 1 2\nlist-get l 5")
	assert.NotNil(t, err)
}

func TestListPopDeclaresInSourceOrder(t *testing.T) {
	signal, err := run(t, "var l list 1 2 3\nlist-pop l a b\nvar r (add a b)")
	assert.Nil(t, err)
	assert.Equal(t, 5.0, bound(t, signal, "r").FloatValue)
}

func TestListPopUnderflowIsError(t *testing.T) {
	_, err := run(t, "var l list 1\nlist-pop l a b")
	assert.NotNil(t, err)
}

func TestReturnWithNoArgsYieldsNull(t *testing.T) {
	signal, err := run(t, "var f closure\n  return\nvar r (f)")
	assert.Nil(t, err)
	assert.True(t, bound(t, signal, "r").IsNull())
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	_, err := run(t, "break")
	assert.NotNil(t, err)
}

func TestContinueOutsideLoopIsError(t *testing.T) {
	_, err := run(t, "table\n  continue")
	assert.NotNil(t, err)
}

func TestWhenFalsyConditionSkipsBody(t *testing.T) {
	signal, err := run(t, "var r when false\n  add 1 2")
	assert.Nil(t, err)
	assert.True(t, bound(t, signal, "r").IsNull())
}

func TestArityMismatchOnUnaryCommand(t *testing.T) {
	_, err := run(t, "list-length")
	assert.NotNil(t, err)
}
