package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Sub implements `sub a b ...`: variadic left-fold of value.Sub.
// Grounded on original_source's standard/sub_fn.rs.
func Sub(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	return foldArith(ctx, head, body, value.Sub)
}
