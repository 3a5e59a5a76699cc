package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Closure implements `closure stmt...`: construct a CLOSURE capturing
// the current scope stack and the body statements verbatim, without
// running them. Grounded on original_source's standard/closure_fn.rs.
func Closure(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	c := value.NewClosure(head.Mark, body, ctx.CapturedScopes())
	return value.Complete(value.ClosureOf(c)), nil
}
