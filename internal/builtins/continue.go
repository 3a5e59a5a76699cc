package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Continue implements `continue`: emit Signal::CONTINUE. Grounded on
// original_source's standard/continue_fn.rs.
func Continue(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireCount(head, body, 0); err != nil {
		return value.Signal{}, err
	}
	return value.Continue(head.Mark), nil
}
