// Package context implements the evaluator of spec.md §4: the Context
// that owns the standard table, the scope stack, and the argument-slot
// channel, and the two mutually recursive operations Resolve and
// RunStatement(s). Grounded on original_source's
// src/interpreter/context.rs, which is the reference's most evolved
// Context — the one actually wired into run_code.
package context

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/builtins"
	"minky/internal/resource"
	"minky/internal/value"
)

// Context is per-interpretation state (spec.md §3). It is not safe for
// concurrent use — by design: the interpreter is single-threaded for
// the duration of one RunCode call (spec.md §5).
type Context struct {
	standard map[string]value.Value
	scopes   []*value.Table
	slots    []value.Value
	loader   resource.Loader
}

// New builds a Context with the full standard table (spec.md §4.5) and
// the given resource loader. A nil loader defaults to a
// resource.FilesystemLoader rooted at the current directory.
func New(loader resource.Loader) *Context {
	if loader == nil {
		loader = resource.NewFilesystemLoader(nil)
	}
	standard := make(map[string]value.Value, len(builtins.All()))
	for name, cmd := range builtins.All() {
		standard[name] = value.CommandOf(cmd)
	}
	return &Context{standard: standard, loader: loader}
}

func (c *Context) CurrentScope() *value.Table {
	if len(c.scopes) == 0 {
		c.scopes = append(c.scopes, value.NewTable())
	}
	return c.scopes[len(c.scopes)-1]
}

func (c *Context) ScopeDepth() int { return len(c.scopes) }

func (c *Context) ScopeAt(i int) *value.Table { return c.scopes[i] }

func (c *Context) CapturedScopes() []*value.Table {
	snapshot := make([]*value.Table, len(c.scopes))
	copy(snapshot, c.scopes)
	return snapshot
}

func (c *Context) PushSlot(v value.Value) { c.slots = append(c.slots, v) }

func (c *Context) PopSlot() (value.Value, bool) {
	if len(c.slots) == 0 {
		return value.Value{}, false
	}
	v := c.slots[len(c.slots)-1]
	c.slots = c.slots[:len(c.slots)-1]
	return v, true
}

func (c *Context) SlotsLen() int { return len(c.slots) }

func (c *Context) RequestCode(pathComponents []string) (string, *backtrace.Backtrace) {
	return c.loader.GetCode(resource.Path(pathComponents))
}

// pushScope/popScope give the package-internal RunStatements a scoped
// acquisition pattern so every push is paired with a pop on every exit
// path, the discipline spec.md §5 requires.
func (c *Context) pushScope(t *value.Table) { c.scopes = append(c.scopes, t) }

func (c *Context) popScope() *value.Table {
	n := len(c.scopes)
	t := c.scopes[n-1]
	c.scopes = c.scopes[:n-1]
	return t
}
