package value

import (
	"minky/internal/backtrace"
	"minky/internal/mark"
)

// Add, Sub, Mul, Div dispatch on the left operand's Kind, the way
// original_source's interpreter/variant_ops.rs traits (VariantAdd,
// VariantSub, ...) dispatch per-variant. Add additionally supports
// STRING + anything and FLOAT + STRING as concatenation (spec.md §4.5:
// "string concat for `add` when lhs is `STRING`"; the FLOAT/STRING case
// mirrors original_source's variant/float.rs VariantAdd::add, whose
// Variant::STRAND branch concatenates rather than erroring).
func Add(lhs, rhs Value, m mark.Mark) (Value, *backtrace.Backtrace) {
	switch lhs.Kind {
	case KindFloat:
		if rhs.Kind == KindString {
			return String(Represent(lhs) + rhs.StringValue), nil
		}
		if rhs.Kind != KindFloat {
			return Value{}, typeMismatch(m, "add", lhs, rhs)
		}
		return Float(lhs.FloatValue + rhs.FloatValue), nil
	case KindString:
		return String(lhs.StringValue + Represent(rhs)), nil
	default:
		return Value{}, typeMismatch(m, "add", lhs, rhs)
	}
}

func Sub(lhs, rhs Value, m mark.Mark) (Value, *backtrace.Backtrace) {
	if lhs.Kind != KindFloat || rhs.Kind != KindFloat {
		return Value{}, typeMismatch(m, "sub", lhs, rhs)
	}
	return Float(lhs.FloatValue - rhs.FloatValue), nil
}

func Mul(lhs, rhs Value, m mark.Mark) (Value, *backtrace.Backtrace) {
	if lhs.Kind != KindFloat || rhs.Kind != KindFloat {
		return Value{}, typeMismatch(m, "mul", lhs, rhs)
	}
	return Float(lhs.FloatValue * rhs.FloatValue), nil
}

func Div(lhs, rhs Value, m mark.Mark) (Value, *backtrace.Backtrace) {
	if lhs.Kind != KindFloat || rhs.Kind != KindFloat {
		return Value{}, typeMismatch(m, "div", lhs, rhs)
	}
	return Float(lhs.FloatValue / rhs.FloatValue), nil
}

// Eq is total: different variants are simply unequal, never an error
// (spec.md §4.6).
func Eq(lhs, rhs Value) bool {
	if lhs.Kind != rhs.Kind {
		return false
	}
	switch lhs.Kind {
	case KindNull:
		return true
	case KindBool:
		return lhs.BoolValue == rhs.BoolValue
	case KindFloat:
		return lhs.FloatValue == rhs.FloatValue
	case KindString:
		return lhs.StringValue == rhs.StringValue
	case KindList:
		return lhs.ListValue == rhs.ListValue
	case KindTable:
		return lhs.TableValue == rhs.TableValue
	case KindCommand:
		return lhs.CommandValue == rhs.CommandValue
	case KindClosure:
		return lhs.ClosureValue.SameIdentity(rhs.ClosureValue)
	default:
		return false
	}
}

// Lt/Le/Gt/Ge are only meaningful between two FLOATs or two STRINGs;
// every other pairing yields false rather than an error (spec.md §4.5:
// "For non-ordered variants, only `=` is meaningful; others yield
// `false`").
func Lt(lhs, rhs Value) bool { return ordered(lhs, rhs, func(a, b float64) bool { return a < b }, func(a, b string) bool { return a < b }) }
func Le(lhs, rhs Value) bool {
	return ordered(lhs, rhs, func(a, b float64) bool { return a <= b }, func(a, b string) bool { return a <= b })
}
func Gt(lhs, rhs Value) bool { return ordered(lhs, rhs, func(a, b float64) bool { return a > b }, func(a, b string) bool { return a > b }) }
func Ge(lhs, rhs Value) bool {
	return ordered(lhs, rhs, func(a, b float64) bool { return a >= b }, func(a, b string) bool { return a >= b })
}

func ordered(lhs, rhs Value, onFloat func(a, b float64) bool, onString func(a, b string) bool) bool {
	if lhs.Kind != rhs.Kind {
		return false
	}
	switch lhs.Kind {
	case KindFloat:
		return onFloat(lhs.FloatValue, rhs.FloatValue)
	case KindString:
		return onString(lhs.StringValue, rhs.StringValue)
	default:
		return false
	}
}

func typeMismatch(m mark.Mark, op string, lhs, rhs Value) *backtrace.Backtrace {
	return backtrace.Error(backtrace.CodeTypeMismatch, &m, "cannot %s %s and %s", op, lhs.Kind, rhs.Kind)
}
