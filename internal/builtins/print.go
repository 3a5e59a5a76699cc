package builtins

import (
	"fmt"

	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Print implements `print ...`: resolve each arg, render via
// Represent, write to stdout with no trailing newline. Grounded on
// original_source's standard/print_fn.rs.
func Print(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	rendered, err := representAll(ctx, body)
	if err != nil {
		return value.Signal{}, err
	}
	fmt.Print(rendered)
	return value.Complete(value.Null()), nil
}

func representAll(ctx value.Evaluator, body []atom.Atom) (string, *backtrace.Backtrace) {
	out := ""
	for i, a := range body {
		v, err := ctx.Resolve(a)
		if err != nil {
			return "", err
		}
		if i > 0 {
			out += " "
		}
		out += value.Represent(v)
	}
	return out, nil
}
