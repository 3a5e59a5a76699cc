package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Parameter implements `parameter ident...`: pop one slot per
// identifier, in source order, declaring it in the current scope.
// Underflow is an error here; leftover slots after the closure body
// finishes are checked by the caller (context.callClosure). Grounded on
// original_source's standard/parameter_fn.rs.
func Parameter(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	scope := ctx.CurrentScope()
	for _, a := range body {
		name, err := requireIdentifier(a)
		if err != nil {
			return value.Signal{}, err
		}
		v, ok := ctx.PopSlot()
		if !ok {
			return value.Signal{}, backtrace.Error(backtrace.CodeArityMismatch, &a.Mark, "missing argument for parameter %q", name)
		}
		if !scope.Declare(name, v) {
			return value.Signal{}, backtrace.Error(backtrace.CodeRedeclaration, &a.Mark, "redeclaration of %q", name)
		}
	}
	return value.Complete(value.Null()), nil
}
