package backtrace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"minky/internal/backtrace"
	"minky/internal/mark"
)

func testMark() *mark.Mark {
	line := &mark.Line{ModuleName: "test", Text: "nope", Row: 1}
	m := mark.New(line, 0, 4)
	return &m
}

func TestErrorReturnsFirstFrameMessage(t *testing.T) {
	b := backtrace.Error(backtrace.CodeUndefinedIdentifier, testMark(), "undefined identifier %q", "nope")
	assert.Equal(t, `undefined identifier "nope"`, b.Error())
	assert.Len(t, b.Frames, 1)
	assert.Equal(t, backtrace.LevelError, b.Frames[0].Level)
	assert.Equal(t, backtrace.CodeUndefinedIdentifier, b.Frames[0].Code)
}

func TestBugUsesInternalBugCode(t *testing.T) {
	b := backtrace.Bug(testMark(), "unreachable")
	assert.Equal(t, backtrace.LevelBug, b.Frames[0].Level)
	assert.Equal(t, backtrace.CodeInternalBug, b.Frames[0].Code)
}

func TestTraceAppendsFrameWithoutCode(t *testing.T) {
	b := backtrace.Error(backtrace.CodeTypeMismatch, testMark(), "type mismatch")
	b.Trace(*testMark())

	assert.Len(t, b.Frames, 2)
	assert.Equal(t, backtrace.LevelTrace, b.Frames[1].Level)
	assert.Equal(t, backtrace.Code(""), b.Frames[1].Code)
}

func TestErrorOnEmptyBacktraceIsUnknown(t *testing.T) {
	b := &backtrace.Backtrace{}
	assert.Equal(t, "unknown error", b.Error())
}

func TestRenderIncludesCodeAndLocation(t *testing.T) {
	b := backtrace.Error(backtrace.CodeUndefinedIdentifier, testMark(), "undefined identifier %q", "nope")
	rendered := backtrace.Render(b)

	assert.True(t, strings.Contains(rendered, string(backtrace.CodeUndefinedIdentifier)))
	assert.True(t, strings.Contains(rendered, "test:1:1"))
}

func TestRenderAddsTracebackSectionForMultipleFrames(t *testing.T) {
	b := backtrace.Error(backtrace.CodeTypeMismatch, testMark(), "boom")
	b.Trace(*testMark())
	rendered := backtrace.Render(b)

	assert.True(t, strings.Contains(rendered, "Traceback:"))
}

func TestRenderOnEmptyBacktraceIsEmptyString(t *testing.T) {
	b := &backtrace.Backtrace{}
	assert.Equal(t, "", backtrace.Render(b))
}
