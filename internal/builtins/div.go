package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Div implements `div a b ...`: variadic left-fold of value.Div.
// Grounded on original_source's standard/div_fn.rs.
func Div(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	return foldArith(ctx, head, body, value.Div)
}
