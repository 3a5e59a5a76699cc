package context

import (
	"strings"

	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/value"
)

// Resolve converts an atom to a Value without treating it as a
// statement head (spec.md §4.1).
func (c *Context) Resolve(a atom.Atom) (value.Value, *backtrace.Backtrace) {
	switch a.Kind {
	case atom.Null:
		return value.Null(), nil
	case atom.Bool:
		return value.Bool(a.BoolValue), nil
	case atom.Float:
		return value.Float(a.FloatValue), nil
	case atom.String:
		return c.resolveString(a)
	case atom.Identifier:
		return c.resolveIdentifier(a)
	case atom.Statement:
		signal, err := c.RunStatement(a.Statement)
		if err != nil {
			return value.Value{}, err
		}
		switch signal.Kind {
		case value.SignalComplete, value.SignalReturn:
			return signal.Value, nil
		default:
			return value.Value{}, backtrace.Error(backtrace.CodeUnexpectedControlFlow, &a.Mark, "break/continue cannot be used in expression position")
		}
	default:
		return value.Value{}, backtrace.Bug(&a.Mark, "unknown atom kind")
	}
}

func (c *Context) resolveIdentifier(a atom.Atom) (value.Value, *backtrace.Backtrace) {
	if v, ok := c.standard[a.Text]; ok {
		return v, nil
	}
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if v, ok := c.scopes[i].Get(a.Text); ok {
			return v, nil
		}
	}
	return value.Value{}, backtrace.Error(backtrace.CodeUndefinedIdentifier, &a.Mark, "identifier %q is not defined", a.Text)
}

// resolveString implements §4.5's interpolation rule: text between
// matched backticks is re-resolved as an identifier and stringified
// via Represent; an empty backtick pair ("``") escapes to a literal
// pair of backticks (original_source's context.rs resolve_variant); a
// lone backtick is an error.
func (c *Context) resolveString(a atom.Atom) (value.Value, *backtrace.Backtrace) {
	text := strings.ReplaceAll(a.Text, `\\`, "\x00")
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, "\x00", `\`)

	parts := strings.Split(text, "`")
	if len(parts)%2 == 0 {
		return value.Value{}, backtrace.Error(backtrace.CodeParseError, &a.Mark, "unterminated '`' in string")
	}

	var result strings.Builder
	for i, part := range parts {
		if i%2 == 0 {
			result.WriteString(part)
			continue
		}
		if part == "" {
			result.WriteString("``")
			continue
		}
		v, err := c.resolveIdentifier(atom.NewIdentifier(strings.TrimSpace(part), a.Mark))
		if err != nil {
			return value.Value{}, err
		}
		result.WriteString(value.Represent(v))
	}
	return value.String(result.String()), nil
}
