package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Var implements `var ident expr...`: run expr as a value position
// (§resolveValueExpr), declare ident in the top scope. Redeclaration is
// an error. Grounded on original_source's standard/var_fn.rs, with the
// value position generalized from a single atom to a sub-statement so a
// trailing block-taking command (`table`, `closure`) can carry its own
// indented children.
func Var(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
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
	if !ctx.CurrentScope().Declare(name, v) {
		return value.Signal{}, backtrace.Error(backtrace.CodeRedeclaration, &head.Mark, "redeclaration of %q", name)
	}
	return value.Complete(value.Null()), nil
}
