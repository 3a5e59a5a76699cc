// Package backtrace is Minky's error channel. Every fallible core
// operation returns a *Backtrace instead of panicking; frames accumulate
// as the error unwinds through run_statement/run_statements so the
// user sees the call chain, not just the innermost failure.
package backtrace

import (
	"fmt"

	"minky/internal/mark"
)

// Code namespaces the error taxonomy of spec.md §7.
type Code string

const (
	CodeLexError              Code = "M0001"
	CodeParseError            Code = "M0002"
	CodeUndefinedIdentifier   Code = "M1001"
	CodeUnexpectedControlFlow Code = "M1002"
	CodeUnexpectedHead        Code = "M1003"
	CodeTypeMismatch          Code = "M2001"
	CodeArityMismatch         Code = "M2002"
	CodeRedeclaration         Code = "M2003"
	CodeUnassignedSet         Code = "M2004"
	CodeResourceError         Code = "M3001"
	CodeSubprocessError       Code = "M3002"
	CodeInternalBug           Code = "M9001"
)

// Level is the severity of a frame, mirroring the teacher's
// error/warning/note/help levels, trimmed to what the core emits.
type Level string

const (
	LevelError Level = "error"
	LevelTrace Level = "trace"
	LevelBug   Level = "bug"
)

// Frame is one entry of a Backtrace: a message, optionally a code, and
// optionally a source Mark (traceback frames have no code, only a mark).
type Frame struct {
	Level   Level
	Code    Code
	Message string
	Mark    *mark.Mark
}

// Backtrace is an ordered list of frames, innermost first.
type Backtrace struct {
	Frames []Frame
}

func New(level Level, code Code, m *mark.Mark, format string, args ...any) *Backtrace {
	return &Backtrace{Frames: []Frame{{
		Level:   level,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Mark:    m,
	}}}
}

// Error constructs a single-frame user-facing error.
func Error(code Code, m *mark.Mark, format string, args ...any) *Backtrace {
	return New(LevelError, code, m, format, args...)
}

// Bug constructs a single-frame internal-invariant-violation error.
func Bug(m *mark.Mark, format string, args ...any) *Backtrace {
	return New(LevelBug, CodeInternalBug, m, format, args...)
}

// Trace appends a call-site frame, the way the evaluator pushes the
// head's mark onto an error unwinding through run_statement.
func (b *Backtrace) Trace(m mark.Mark) *Backtrace {
	b.Frames = append(b.Frames, Frame{Level: LevelTrace, Mark: &m})
	return b
}

func (b *Backtrace) Error() string {
	if len(b.Frames) == 0 {
		return "unknown error"
	}
	return b.Frames[0].Message
}
