package context

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// callClosure implements the call protocol of spec.md §4.3:
//  1. the caller evaluates each body atom in reverse order, pushing
//     results onto the argument-slot channel (so `parameter a b c`
//     pops a, then b, then c, in source order);
//  2. a fresh invocation frame's scope stack is set to the closure's
//     captured scopes;
//  3. the closure body runs in a new local scope atop that stack;
//  4. RETURN unwraps to its value, bare COMPLETE(table) yields the
//     table, BREAK/CONTINUE escaping the body are an error;
//  5. the caller's scope stack and slot channel are restored
//     regardless of outcome.
//
// Grounded on original_source's src/interpreter/closure.rs call_mut,
// which swaps parent_scopes in and back out around the nested run.
func (c *Context) callClosure(cl *value.Closure, callArgs []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	args := make([]value.Value, 0, len(callArgs))
	for i := len(callArgs) - 1; i >= 0; i-- {
		v, err := c.Resolve(callArgs[i])
		if err != nil {
			return value.Signal{}, err
		}
		args = append(args, v)
	}

	savedScopes := c.scopes
	savedSlots := c.slots
	c.scopes = append([]*value.Table{}, cl.CapturedScopes...)
	c.slots = args

	signal, err := c.runStatementsInScope(cl.Body, value.NewTable())

	leftoverSlots := len(c.slots)
	c.scopes = savedScopes
	c.slots = savedSlots

	if err != nil {
		return value.Signal{}, err
	}
	if leftoverSlots != 0 {
		return value.Signal{}, backtrace.Error(backtrace.CodeArityMismatch, &cl.DefiningMark, "closure left %d unconsumed argument(s)", leftoverSlots)
	}

	switch signal.Kind {
	case value.SignalReturn:
		return value.Complete(signal.Value), nil
	case value.SignalComplete:
		return signal, nil
	default:
		return value.Signal{}, backtrace.Error(backtrace.CodeUnexpectedControlFlow, &signal.Mark, "break/continue cannot escape a closure call")
	}
}
