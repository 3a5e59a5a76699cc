package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// ListPop implements `list-pop lst ident...`: pop one value per
// identifier, in source order, declaring each as a fresh binding in the
// current scope. Grounded on original_source's
// standard/list_pop_fn.rs.
func ListPop(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireMinCount(head, body, 2); err != nil {
		return value.Signal{}, err
	}
	lst, err := resolveList(ctx, body[0])
	if err != nil {
		return value.Signal{}, err
	}
	scope := ctx.CurrentScope()
	for _, a := range body[1:] {
		name, err := requireIdentifier(a)
		if err != nil {
			return value.Signal{}, err
		}
		v, ok := lst.Pop()
		if !ok {
			return value.Signal{}, backtrace.Error(backtrace.CodeTypeMismatch, &a.Mark, "list-pop: list is empty")
		}
		if !scope.Declare(name, v) {
			return value.Signal{}, backtrace.Error(backtrace.CodeRedeclaration, &a.Mark, "redeclaration of %q", name)
		}
	}
	return value.Complete(value.Null()), nil
}
