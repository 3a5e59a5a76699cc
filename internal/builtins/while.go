package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// While implements `while ident cond-expr stmt...`: each iteration
// re-evaluates cond-expr, binds it to ident in a fresh scope, then runs
// the body; BREAK terminates the loop with NULL, CONTINUE skips to the
// next iteration, RETURN passes through to the caller. Grounded on
// original_source's standard/while_fn.rs.
func While(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireMinCount(head, body, 2); err != nil {
		return value.Signal{}, err
	}
	name, err := requireIdentifier(body[0])
	if err != nil {
		return value.Signal{}, err
	}
	condExpr := body[1]
	loopBody := body[2:]

	for {
		cond, err := ctx.Resolve(condExpr)
		if err != nil {
			return value.Signal{}, err
		}
		if !cond.Truthy() {
			return value.Complete(value.Null()), nil
		}

		scope := value.NewTable()
		scope.Declare(name, cond)

		sig, err := ctx.RunStatements(loopBody, scope)
		if err != nil {
			return value.Signal{}, err
		}
		switch sig.Kind {
		case value.SignalBreak:
			return value.Complete(value.Null()), nil
		case value.SignalContinue:
			continue
		case value.SignalReturn:
			return sig, nil
		}
	}
}
