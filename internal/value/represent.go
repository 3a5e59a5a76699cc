package value

import (
	"sort"
	"strconv"
	"strings"
)

// Represent produces the canonical human-readable form used by
// print/println, string interpolation, and error messages: strings
// quoted inside list/table renderings, unquoted at top level; lists as
// "[e1, e2, ...]"; tables as "<Table {k: v, ...}>"; closures/commands
// per their own Represent methods. It is total — it never errors for a
// non-cyclic value (spec.md §8); a table or list that contains itself
// recurses forever, the accepted tradeoff of spec.md §9's reference-counting
// design (no cycle detection).
func Represent(v Value) string {
	return represent(v, false)
}

func represent(v Value, nested bool) string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.BoolValue {
			return "true"
		}
		return "false"
	case KindFloat:
		return strconv.FormatFloat(v.FloatValue, 'g', -1, 64)
	case KindString:
		if nested {
			return strconv.Quote(v.StringValue)
		}
		return v.StringValue
	case KindList:
		parts := make([]string, v.ListValue.Len())
		for i, item := range v.ListValue.Items() {
			parts[i] = represent(item, true)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindTable:
		names := make([]string, 0, v.TableValue.Len())
		v.TableValue.Each(func(name string, _ Value) { names = append(names, name) })
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, name := range names {
			val, _ := v.TableValue.Get(name)
			parts[i] = name + ": " + represent(val, true)
		}
		return "<Table {" + strings.Join(parts, ", ") + "}>"
	case KindCommand:
		return v.CommandValue.Represent()
	case KindClosure:
		return v.ClosureValue.Represent()
	default:
		return "?"
	}
}
