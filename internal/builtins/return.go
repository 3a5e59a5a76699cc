package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Return implements `return [expr]`: emit Signal::RETURN carrying the
// resolved expr, or NULL if none given. Grounded on original_source's
// standard/return_fn.rs.
func Return(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if len(body) == 0 {
		return value.Return(value.Null(), head.Mark), nil
	}
	if err := requireCount(head, body, 1); err != nil {
		return value.Signal{}, err
	}
	v, err := ctx.Resolve(body[0])
	if err != nil {
		return value.Signal{}, err
	}
	return value.Return(v, head.Mark), nil
}
