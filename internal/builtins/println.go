package builtins

import (
	"fmt"

	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Println is `print` plus a trailing newline. Grounded on
// original_source's standard/println_fn.rs.
func Println(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	rendered, err := representAll(ctx, body)
	if err != nil {
		return value.Signal{}, err
	}
	fmt.Println(rendered)
	return value.Complete(value.Null()), nil
}
