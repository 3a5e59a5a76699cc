package value

import (
	"fmt"

	"minky/internal/atom"
	"minky/internal/mark"
)

// Closure is a user-defined callable: a body of statements plus the
// scope stack that was live when `closure ...` was evaluated — its
// lexical environment. Grounded on original_source's
// src/interpreter/closure.rs (parent_scopes) and
// src/interpreter/variant/closure.rs.
//
// CapturedScopes holds the same *Table pointers the defining scope
// stack held, not copies, so mutations made after capture (through any
// other alias) are visible to the closure body — the "lexical capture"
// law of spec.md §8.
type Closure struct {
	DefiningMark   mark.Mark
	Body           []atom.Atom
	CapturedScopes []*Table
}

func NewClosure(defining mark.Mark, body []atom.Atom, capturedScopes []*Table) *Closure {
	scopes := make([]*Table, len(capturedScopes))
	copy(scopes, capturedScopes)
	return &Closure{DefiningMark: defining, Body: body, CapturedScopes: scopes}
}

func (c *Closure) Represent() string {
	return fmt.Sprintf("<Closure at row %d, in '%s'>", c.DefiningMark.Line.Row, c.DefiningMark.Line.ModuleName)
}

// SameIdentity implements the equality rule of spec.md §3: identity is
// the defining mark plus pointer-equal captured scopes.
func (c *Closure) SameIdentity(other *Closure) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}
	a, b := c.DefiningMark.Line, other.DefiningMark.Line
	if a != b && (a == nil || b == nil || *a != *b) {
		return false
	}
	if c.DefiningMark.ColumnStart != other.DefiningMark.ColumnStart {
		return false
	}
	if len(c.CapturedScopes) != len(other.CapturedScopes) {
		return false
	}
	for i, s := range c.CapturedScopes {
		if s != other.CapturedScopes[i] {
			return false
		}
	}
	return true
}
