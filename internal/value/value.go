// Package value implements Minky's runtime value model: the tagged
// variant of spec.md §3 (NULL/BOOL/FLOAT/STRING/LIST/TABLE/COMMAND/
// CLOSURE), the shared-mutable container types LIST and TABLE alias
// rather than copy, and the Signal control-flow channel, which lives
// here rather than its own package because a Command's callback type
// must return a Signal while a Signal's payload is a Value — keeping
// both in one package avoids an import cycle the reference's single
// crate never had to worry about.
//
// Grounded on original_source's src/interpreter/variant.rs and the
// per-variant files under src/interpreter/variant/.
package value

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindFloat
	KindString
	KindList
	KindTable
	KindCommand
	KindClosure
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindTable:
		return "table"
	case KindCommand:
		return "command"
	case KindClosure:
		return "closure"
	default:
		return "unknown"
	}
}

// Value is a tagged union over exactly one payload field, selected by
// Kind. NULL/BOOL/FLOAT/STRING are value-semantic (copying a Value
// copies the payload); LIST/TABLE/CLOSURE hold pointers, so copying the
// Value aliases the same underlying container, matching spec.md's
// "assigning a value copies the handle, not the contents".
type Value struct {
	Kind         Kind
	BoolValue    bool
	FloatValue   float64
	StringValue  string
	ListValue    *List
	TableValue   *Table
	CommandValue *Command
	ClosureValue *Closure
}

func Null() Value                { return Value{Kind: KindNull} }
func Bool(b bool) Value          { return Value{Kind: KindBool, BoolValue: b} }
func Float(f float64) Value      { return Value{Kind: KindFloat, FloatValue: f} }
func String(s string) Value      { return Value{Kind: KindString, StringValue: s} }
func ListValue(l *List) Value    { return Value{Kind: KindList, ListValue: l} }
func TableValue(t *Table) Value  { return Value{Kind: KindTable, TableValue: t} }
func CommandOf(c *Command) Value { return Value{Kind: KindCommand, CommandValue: c} }
func ClosureOf(c *Closure) Value { return Value{Kind: KindClosure, ClosureValue: c} }

func (v Value) IsNull() bool { return v.Kind == KindNull }

// Truthy is used by `when`/`while`: NULL and BOOL(false) are falsy,
// every other value (including FLOAT(0)) is truthy, matching the
// reference's while_fn which only special-cases BOOL and NULL.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindBool:
		return v.BoolValue
	case KindNull:
		return false
	default:
		return true
	}
}
