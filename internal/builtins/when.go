package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// When implements `when cond stmt...`: if cond is truthy, run the body
// in a fresh table scope; else yield NULL without evaluating the body.
// Grounded on original_source's standard/when_fn.rs.
func When(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireMinCount(head, body, 1); err != nil {
		return value.Signal{}, err
	}
	cond, err := ctx.Resolve(body[0])
	if err != nil {
		return value.Signal{}, err
	}
	if !cond.Truthy() {
		return value.Complete(value.Null()), nil
	}
	// Unlike `table`, a bare block is not itself a loop boundary: BREAK
	// and CONTINUE raised inside `when`'s body pass through untouched so
	// the nearest enclosing `while` can catch them (spec.md scenario:
	// `when (>= i 3) (break)` inside a `while` body).
	return ctx.RunStatements(body[1:], value.NewTable())
}
