package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// ListGet implements `list-get lst idx`. Grounded on original_source's
// standard/list_get_fn.rs.
func ListGet(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireCount(head, body, 2); err != nil {
		return value.Signal{}, err
	}
	lst, err := resolveList(ctx, body[0])
	if err != nil {
		return value.Signal{}, err
	}
	idx, err := resolveFloat(ctx, body[1])
	if err != nil {
		return value.Signal{}, err
	}
	v, ok := lst.Get(int(idx))
	if !ok {
		return value.Signal{}, backtrace.Error(backtrace.CodeTypeMismatch, &body[1].Mark, "index %d out of range", int(idx))
	}
	return value.Complete(v), nil
}
