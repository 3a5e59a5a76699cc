package mark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minky/internal/mark"
)

func TestStringFormatsModuleLineColumn(t *testing.T) {
	line := &mark.Line{ModuleName: "test", Text: "var x 1", Row: 3}
	m := mark.New(line, 4, 5)
	assert.Equal(t, "test:3:5", m.String())
}

func TestWholeSpansEntireLine(t *testing.T) {
	line := &mark.Line{ModuleName: "test", Text: "println 1", Row: 1}
	m := mark.Whole(line)
	assert.Equal(t, 0, m.ColumnStart)
	assert.Equal(t, len(line.Text), m.ColumnEnd)
}

func TestCaretUnderlinesMarkedSpan(t *testing.T) {
	line := &mark.Line{ModuleName: "test", Text: "var x 1", Row: 1}
	m := mark.New(line, 4, 5)
	caret := m.Caret()
	assert.Equal(t, "var x 1\n    ^", caret)
}

func TestCaretClampsOutOfRangeColumns(t *testing.T) {
	line := &mark.Line{ModuleName: "test", Text: "x", Row: 1}
	m := mark.New(line, 0, 50)
	caret := m.Caret()
	assert.Equal(t, "x\n^", caret)
}

func TestCaretWidensEmptySpanByOne(t *testing.T) {
	line := &mark.Line{ModuleName: "test", Text: "abc", Row: 1}
	m := mark.New(line, 2, 2)
	caret := m.Caret()
	assert.Equal(t, "abc\n  ^", caret)
}
