package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// ListPush implements `list-push lst v...`: push every resolved v onto
// lst, in source order. Grounded on original_source's
// standard/list_push_fn.rs.
func ListPush(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireMinCount(head, body, 2); err != nil {
		return value.Signal{}, err
	}
	lst, err := resolveList(ctx, body[0])
	if err != nil {
		return value.Signal{}, err
	}
	for _, a := range body[1:] {
		v, err := ctx.Resolve(a)
		if err != nil {
			return value.Signal{}, err
		}
		lst.Push(v)
	}
	return value.Complete(value.Null()), nil
}
