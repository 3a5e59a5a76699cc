package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Table implements `table stmt...`: run the body in a fresh empty
// table-scope and yield the table itself. Grounded on original_source's
// standard/table_fn.rs.
func Table(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	sig, err := ctx.RunStatements(body, value.NewTable())
	if err != nil {
		return value.Signal{}, err
	}
	if sig.IsLoopControl() {
		return value.Signal{}, backtrace.Error(backtrace.CodeUnexpectedControlFlow, &sig.Mark, "break/continue outside a loop")
	}
	return sig, nil
}
