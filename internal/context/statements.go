package context

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// RunStatement resolves the head of a non-empty statement and
// dispatches on its Kind (spec.md §4.1): a COMMAND is invoked, a
// CLOSURE follows the call protocol (§4.3), a TABLE is pushed as a new
// scope and the remaining atoms run inside it, anything else is
// UnexpectedHead.
func (c *Context) RunStatement(statement []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if len(statement) == 0 {
		return value.Complete(value.Null()), nil
	}
	head := statement[0]
	body := statement[1:]

	headValue, err := c.Resolve(head)
	if err != nil {
		return value.Signal{}, err
	}

	switch headValue.Kind {
	case value.KindCommand:
		signal, cmdErr := headValue.CommandValue.Fn(c, head, body)
		if cmdErr != nil {
			return value.Signal{}, cmdErr.Trace(head.Mark)
		}
		return signal, nil

	case value.KindClosure:
		signal, callErr := c.callClosure(headValue.ClosureValue, body)
		if callErr != nil {
			return value.Signal{}, callErr.Trace(head.Mark)
		}
		return signal, nil

	case value.KindTable:
		signal, tableErr := c.runTableAccess(body, headValue.TableValue)
		if tableErr != nil {
			return value.Signal{}, tableErr.Trace(head.Mark)
		}
		if signal.IsLoopControl() {
			return value.Signal{}, backtrace.Error(backtrace.CodeUnexpectedControlFlow, &head.Mark, "break/continue cannot escape a table block")
		}
		return signal, nil

	default:
		return value.Signal{}, backtrace.Error(backtrace.CodeUnexpectedHead, &head.Mark, "%s is not callable", headValue.Kind)
	}
}

// RunStatements executes atoms, which must each be a Statement atom,
// in a fresh scope (spec.md §4.1). It implements value.Evaluator for
// builtins that recurse into nested blocks (`table`, `when`, `while`).
func (c *Context) RunStatements(statements []atom.Atom, scope *value.Table) (value.Signal, *backtrace.Backtrace) {
	return c.runStatementsInScope(statements, scope)
}

// runTableAccess handles a TABLE value used directly as a statement
// head (spec.md scenario: `var t table (...)`, then `t a` reads `a` from
// within `t`). Unlike the `table` builtin's block form, the trailing
// atoms here are the current statement's own inline arguments, not a
// nested indented block — so a bare leaf atom (identifier, literal,
// parenthesized sub-statement) is resolved directly against the pushed
// scope rather than required to already be a Statement atom. The value
// of the last atom wins, the way a table's final scope table would if
// every entry were instead a nested `var`.
func (c *Context) runTableAccess(body []atom.Atom, scope *value.Table) (value.Signal, *backtrace.Backtrace) {
	c.pushScope(scope)
	result := value.Complete(value.TableValue(scope))
	for _, a := range body {
		var signal value.Signal
		var err *backtrace.Backtrace
		if a.Kind == atom.Statement {
			signal, err = c.RunStatement(a.Statement)
		} else {
			v, resolveErr := c.Resolve(a)
			if resolveErr != nil {
				err = resolveErr
			} else {
				signal = value.Complete(v)
			}
		}
		if err != nil {
			c.popScope()
			return value.Signal{}, err
		}
		if signal.Kind != value.SignalComplete {
			c.popScope()
			return signal, nil
		}
		result = signal
	}
	c.popScope()
	return result, nil
}

func (c *Context) runStatementsInScope(statements []atom.Atom, scope *value.Table) (value.Signal, *backtrace.Backtrace) {
	c.pushScope(scope)
	for _, a := range statements {
		if a.Kind != atom.Statement {
			c.popScope()
			return value.Signal{}, backtrace.Error(backtrace.CodeParseError, &a.Mark, "expecting a statement")
		}
		signal, err := c.RunStatement(a.Statement)
		if err != nil {
			c.popScope()
			return value.Signal{}, err
		}
		if signal.Kind != value.SignalComplete {
			c.popScope()
			return signal, nil
		}
	}
	table := c.popScope()
	return value.Complete(value.TableValue(table)), nil
}
