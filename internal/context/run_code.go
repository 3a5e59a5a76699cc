package context

import (
	"minky/internal/backtrace"
	"minky/internal/parser"
	"minky/internal/value"
)

// RunCode lexes, parses, and runs source as module moduleName in a fresh
// top-level scope; cmd/minky calls it on a script's own source. Like any
// block, a program that runs to completion yields its top-level scope
// table; BREAK/CONTINUE reaching the top level is an error.
func (c *Context) RunCode(moduleName, source string) (value.Signal, *backtrace.Backtrace) {
	program, err := parser.Parse(moduleName, source)
	if err != nil {
		return value.Signal{}, err
	}
	signal, err := c.RunStatements(program, value.NewTable())
	if err != nil {
		return value.Signal{}, err
	}
	if signal.IsLoopControl() {
		return value.Signal{}, backtrace.Error(backtrace.CodeUnexpectedControlFlow, &signal.Mark, "break/continue reached the top level")
	}
	return signal, nil
}
