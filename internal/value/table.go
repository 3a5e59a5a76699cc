package value

// Table backs both the TABLE value variant and every scope on the
// scope stack — spec.md §3 makes no distinction between the two, a
// table used as a scope is simply a table. Grounded on
// original_source's src/interpreter/variant/table.rs.
//
// A *Table is a shared handle: copying the Value wrapping it aliases
// the same bindings. No lock guards the map: the interpreter is
// single-threaded for the life of one Context (spec.md §5), so a
// blocking mutex would only add deadlock risk when an outer frame
// holds a table reference across a re-entrant inner evaluation that
// touches the same table (spec.md §9).
type Table struct {
	bindings map[string]Value
}

func NewTable() *Table {
	return &Table{bindings: make(map[string]Value)}
}

// Get reads name, reporting whether it was bound.
func (t *Table) Get(name string) (Value, bool) {
	v, ok := t.bindings[name]
	return v, ok
}

func (t *Table) Has(name string) bool {
	_, ok := t.bindings[name]
	return ok
}

// Declare binds name, returning false if it was already bound (the
// caller — the `var` builtin — turns that into a Redeclaration error).
func (t *Table) Declare(name string, v Value) bool {
	if _, exists := t.bindings[name]; exists {
		return false
	}
	t.bindings[name] = v
	return true
}

// Assign overwrites an existing binding, returning false if name was
// never declared (the caller — `set` — turns that into UnassignedSet).
func (t *Table) Assign(name string, v Value) bool {
	if _, exists := t.bindings[name]; !exists {
		return false
	}
	t.bindings[name] = v
	return true
}

func (t *Table) Len() int { return len(t.bindings) }

// Each iterates bindings in map order (spec.md: "insertion order not
// guaranteed").
func (t *Table) Each(fn func(name string, v Value)) {
	for name, v := range t.bindings {
		fn(name, v)
	}
}
