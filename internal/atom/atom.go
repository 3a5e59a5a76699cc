// Package atom defines the parsed-program tree the evaluator consumes:
// leaves (null/bool/float/string/identifier) and nested statements,
// each carrying a mark.Mark. Grounded on original_source's
// src/parser/atom.rs AtomValue enum.
package atom

import "minky/internal/mark"

type Kind int

const (
	Null Kind = iota
	Bool
	Float
	String
	Identifier
	Statement
)

// Atom is a leaf or nested node of the parsed program. Exactly one of
// the typed fields is meaningful, selected by Kind.
type Atom struct {
	Kind       Kind
	Mark       mark.Mark
	BoolValue  bool
	FloatValue float64
	Text       string // String or Identifier payload
	Statement  []Atom // non-empty when Kind == Statement
}

func NewNull(m mark.Mark) Atom { return Atom{Kind: Null, Mark: m} }

func NewBool(b bool, m mark.Mark) Atom { return Atom{Kind: Bool, Mark: m, BoolValue: b} }

func NewFloat(f float64, m mark.Mark) Atom { return Atom{Kind: Float, Mark: m, FloatValue: f} }

func NewString(s string, m mark.Mark) Atom { return Atom{Kind: String, Mark: m, Text: s} }

func NewIdentifier(name string, m mark.Mark) Atom { return Atom{Kind: Identifier, Mark: m, Text: name} }

func NewStatement(statement []Atom, m mark.Mark) Atom {
	return Atom{Kind: Statement, Mark: m, Statement: statement}
}

// Head returns the first atom of a statement. Panics if a is not a
// non-empty Statement; callers are expected to have checked Kind first.
func (a Atom) Head() Atom { return a.Statement[0] }

// Body returns everything after the head.
func (a Atom) Body() []Atom { return a.Statement[1:] }
