package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// List implements `list a b ...`: resolve every arg, build a LIST.
// Grounded on original_source's standard/list_fn.rs.
func List(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	items := make([]value.Value, len(body))
	for i, a := range body {
		v, err := ctx.Resolve(a)
		if err != nil {
			return value.Signal{}, err
		}
		items[i] = v
	}
	return value.Complete(value.ListValue(value.NewList(items...))), nil
}
