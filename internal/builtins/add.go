package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/mark"
	"minky/internal/value"
)

type arithOp func(lhs, rhs value.Value, m mark.Mark) (value.Value, *backtrace.Backtrace)

// Add implements `add a b ...`: variadic left-fold of value.Add over the
// resolved arguments. Grounded on original_source's standard/add_fn.rs.
func Add(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	return foldArith(ctx, head, body, value.Add)
}

func foldArith(ctx value.Evaluator, head atom.Atom, body []atom.Atom, op arithOp) (value.Signal, *backtrace.Backtrace) {
	if err := requireMinCount(head, body, 1); err != nil {
		return value.Signal{}, err
	}
	acc, err := ctx.Resolve(body[0])
	if err != nil {
		return value.Signal{}, err
	}
	for _, a := range body[1:] {
		v, err := ctx.Resolve(a)
		if err != nil {
			return value.Signal{}, err
		}
		acc, err = op(acc, v, a.Mark)
		if err != nil {
			return value.Signal{}, err
		}
	}
	return value.Complete(acc), nil
}
