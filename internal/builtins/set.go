package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Set implements `set ident expr...`: walk the scope stack innermost
// first and assign to the first scope holding ident; missing binding
// is an error. Grounded on original_source's standard/set_fn.rs, with
// the same multi-atom value position as `var` (resolveValueExpr).
func Set(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireMinCount(head, body, 2); err != nil {
		return value.Signal{}, err
	}
	name, err := requireIdentifier(body[0])
	if err != nil {
		return value.Signal{}, err
	}
	v, err := resolveValueExpr(ctx, body[1:])
	if err != nil {
		return value.Signal{}, err
	}
	for i := ctx.ScopeDepth() - 1; i >= 0; i-- {
		if ctx.ScopeAt(i).Assign(name, v) {
			return value.Complete(value.Null()), nil
		}
	}
	return value.Signal{}, backtrace.Error(backtrace.CodeUnassignedSet, &head.Mark, "%q is not declared", name)
}
