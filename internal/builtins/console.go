package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Console implements `console cmd arg...`: launch an OS subprocess and
// capture its stdout, failing on non-zero exit. Arguments are passed
// verbatim, not re-quoted (REDESIGN FLAGS: the reference double-quotes
// every argument, which breaks arguments containing spaces).
// Grounded on original_source's standard/console_fn.rs.
func Console(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireMinCount(head, body, 1); err != nil {
		return value.Signal{}, err
	}
	name, err := resolveString(ctx, body[0])
	if err != nil {
		return value.Signal{}, err
	}
	args := make([]string, len(body)-1)
	for i, a := range body[1:] {
		s, err := resolveString(ctx, a)
		if err != nil {
			return value.Signal{}, err
		}
		args[i] = s
	}

	out, runErr := ctx.RunSubprocess(name, args)
	if runErr != nil {
		return value.Signal{}, backtrace.Error(backtrace.CodeSubprocessError, &head.Mark, "%s", runErr)
	}
	return value.Complete(value.String(out)), nil
}
