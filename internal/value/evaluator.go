package value

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
)

// Evaluator is the surface a built-in Command needs from the
// interpreter to do its job — resolving sub-atoms, recursing into
// nested statement blocks, reading/mutating the scope stack, and
// draining the argument-slot channel. *context.Context implements it.
//
// Declaring the interface here (rather than in context, which Command
// would then need to import) keeps the dependency arrow one-directional:
// value does not import context, context imports value and builtins,
// and builtins only ever sees the interface, never the concrete type.
type Evaluator interface {
	// Resolve evaluates a single atom to a Value (spec.md §4.1).
	Resolve(a atom.Atom) (Value, *backtrace.Backtrace)

	// RunStatement resolves and dispatches a single statement's own
	// head/body atoms, without pushing a new scope. `var`/`set` use this
	// to let a value position spanning more than one atom (e.g. `var t
	// table` with indentation-nested children attached to `table`) run
	// as its own statement, the same way any other statement does.
	RunStatement(statement []atom.Atom) (Signal, *backtrace.Backtrace)

	// RunStatements executes a block of statement-atoms in a fresh
	// scope, per spec.md §4.1.
	RunStatements(statements []atom.Atom, scope *Table) (Signal, *backtrace.Backtrace)

	// CurrentScope returns the top of the scope stack, pushing an empty
	// table first if the stack is empty (mirrors the reference's
	// lazily-initialized scopes vector).
	CurrentScope() *Table

	// ScopeDepth and ScopeAt give builtins like `set` read/write access
	// to walk the stack innermost-first without exposing its storage.
	ScopeDepth() int
	ScopeAt(i int) *Table

	// CapturedScopes snapshots the current scope stack for `closure` to
	// store as its lexical environment.
	CapturedScopes() []*Table

	// PushSlot/PopSlot/SlotsLen drive the argument_slots calling
	// convention (spec.md §4.3): closures push in reverse, `parameter`
	// pops in source order.
	PushSlot(v Value)
	PopSlot() (Value, bool)
	SlotsLen() int

	// RequestCode fetches source text for `import`, via the resource
	// loader (spec.md §6).
	RequestCode(path []string) (string, *backtrace.Backtrace)

	// RunSubprocess backs `console` (spec.md §4.5).
	RunSubprocess(name string, args []string) (string, error)
}
