package value

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
)

// CommandFunc is the shape every built-in takes: it receives the
// evaluator, the head atom (for marking errors at the call site), and
// the unresolved body atoms — resolving its own arguments is the
// command's job, per spec.md §4.3.
type CommandFunc func(ctx Evaluator, head atom.Atom, body []atom.Atom) (Signal, *backtrace.Backtrace)

// Command wraps a built-in. It is stateless and shared — every lookup
// of e.g. "print" yields the same *Command.
type Command struct {
	Name string
	Fn   CommandFunc
}

func NewCommand(name string, fn CommandFunc) *Command {
	return &Command{Name: name, Fn: fn}
}

func (c *Command) Represent() string { return "<Command>" }
