package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

type compareOp func(lhs, rhs value.Value) bool

// foldCompare implements the chained-comparison shape shared by `=`,
// `<`, `<=`, `>`, `>=`: resolve every argument, then require every
// adjacent pair to satisfy op, the way `1 < 2 < 3` reads as `1<2 and
// 2<3`. Grounded on original_source's standard/{eq,lt,le,gt,ge}_fn.rs.
func foldCompare(ctx value.Evaluator, head atom.Atom, body []atom.Atom, op compareOp) (value.Signal, *backtrace.Backtrace) {
	if err := requireMinCount(head, body, 2); err != nil {
		return value.Signal{}, err
	}
	vals := make([]value.Value, len(body))
	for i, a := range body {
		v, err := ctx.Resolve(a)
		if err != nil {
			return value.Signal{}, err
		}
		vals[i] = v
	}
	for i := 1; i < len(vals); i++ {
		if !op(vals[i-1], vals[i]) {
			return value.Complete(value.Bool(false)), nil
		}
	}
	return value.Complete(value.Bool(true)), nil
}

// Eq implements `= a b ...`.
func Eq(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	return foldCompare(ctx, head, body, value.Eq)
}

// Lt implements `< a b ...`.
func Lt(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	return foldCompare(ctx, head, body, value.Lt)
}

// Le implements `<= a b ...`.
func Le(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	return foldCompare(ctx, head, body, value.Le)
}

// Gt implements `> a b ...`.
func Gt(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	return foldCompare(ctx, head, body, value.Gt)
}

// Ge implements `>= a b ...`.
func Ge(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	return foldCompare(ctx, head, body, value.Ge)
}
