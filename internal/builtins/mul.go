package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Mul implements `mul a b ...`: variadic left-fold of value.Mul.
// Grounded on original_source's standard/mul_fn.rs.
func Mul(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	return foldArith(ctx, head, body, value.Mul)
}
