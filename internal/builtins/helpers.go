// Package builtins implements the command surface of spec.md §4.5, one
// file per command (the five comparisons share compare.go), grounded file-for-file on
// original_source/src/interpreter/standard/*_fn.rs. Every function has
// the shape value.CommandFunc: (ctx, head, body) -> (Signal, *Backtrace).
package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

func requireIdentifier(a atom.Atom) (string, *backtrace.Backtrace) {
	if a.Kind != atom.Identifier {
		return "", backtrace.Error(backtrace.CodeTypeMismatch, &a.Mark, "expecting an identifier")
	}
	return a.Text, nil
}

func requireCount(head atom.Atom, body []atom.Atom, n int) *backtrace.Backtrace {
	if len(body) != n {
		return backtrace.Error(backtrace.CodeArityMismatch, &head.Mark, "expected %d argument(s), got %d", n, len(body))
	}
	return nil
}

func requireMinCount(head atom.Atom, body []atom.Atom, n int) *backtrace.Backtrace {
	if len(body) < n {
		return backtrace.Error(backtrace.CodeArityMismatch, &head.Mark, "expected at least %d argument(s), got %d", n, len(body))
	}
	return nil
}

func resolveList(ctx value.Evaluator, a atom.Atom) (*value.List, *backtrace.Backtrace) {
	v, err := ctx.Resolve(a)
	if err != nil {
		return nil, err
	}
	if v.Kind != value.KindList {
		return nil, backtrace.Error(backtrace.CodeTypeMismatch, &a.Mark, "expecting a list")
	}
	return v.ListValue, nil
}

func resolveString(ctx value.Evaluator, a atom.Atom) (string, *backtrace.Backtrace) {
	v, err := ctx.Resolve(a)
	if err != nil {
		return "", err
	}
	if v.Kind != value.KindString {
		return "", backtrace.Error(backtrace.CodeTypeMismatch, &a.Mark, "expecting a string")
	}
	return v.StringValue, nil
}

// resolveValueExpr treats a value position as a statement when it spans
// more than one atom: `var t table` with indentation-nested children
// attaches them to `table` as trailing body atoms the same way a
// top-level `table` statement gets its own block, so the whole
// `table ...` tail runs as a sub-statement rather than requiring an
// explicit parenthesized wrapper. A single atom keeps the plain Resolve
// path, so `var x 1` and `var x (add 1 2)` are unaffected.
func resolveValueExpr(ctx value.Evaluator, exprAtoms []atom.Atom) (value.Value, *backtrace.Backtrace) {
	if len(exprAtoms) == 1 {
		return ctx.Resolve(exprAtoms[0])
	}
	signal, err := ctx.RunStatement(exprAtoms)
	if err != nil {
		return value.Value{}, err
	}
	switch signal.Kind {
	case value.SignalComplete, value.SignalReturn:
		return signal.Value, nil
	default:
		return value.Value{}, backtrace.Error(backtrace.CodeUnexpectedControlFlow, &exprAtoms[0].Mark, "break/continue cannot be used in a value position")
	}
}

func resolveFloat(ctx value.Evaluator, a atom.Atom) (float64, *backtrace.Backtrace) {
	v, err := ctx.Resolve(a)
	if err != nil {
		return 0, err
	}
	if v.Kind != value.KindFloat {
		return 0, backtrace.Error(backtrace.CodeTypeMismatch, &a.Mark, "expecting a float")
	}
	return v.FloatValue, nil
}
