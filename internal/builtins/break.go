package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Break implements `break`: emit Signal::BREAK. Grounded on
// original_source's standard/break_fn.rs.
func Break(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireCount(head, body, 0); err != nil {
		return value.Signal{}, err
	}
	return value.Break(head.Mark), nil
}
