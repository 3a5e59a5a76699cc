package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// ListLength implements `list-length lst`. Grounded on
// original_source's standard/list_length_fn.rs.
func ListLength(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireCount(head, body, 1); err != nil {
		return value.Signal{}, err
	}
	lst, err := resolveList(ctx, body[0])
	if err != nil {
		return value.Signal{}, err
	}
	return value.Complete(value.Float(float64(lst.Len()))), nil
}
