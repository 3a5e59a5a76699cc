// Package resource implements the loader collaborator spec.md §6
// treats as external: mapping a module path to source text. Grounded
// on original_source's src/interpreter/resource.rs and
// resource/system_resource.rs.
package resource

import (
	"strings"

	"minky/internal/backtrace"
)

// Path is a list of string components; its serialised form uses "::"
// as separator (spec.md §6).
type Path []string

func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return strings.Split(s, "::")
}

func (p Path) String() string { return strings.Join(p, "::") }

// Normalize resolves "." and ".." components against prefix,
// rejecting any attempt to escape above prefix's root (spec.md §6).
func Normalize(prefix Path, p Path) (Path, *backtrace.Backtrace) {
	result := append(Path{}, prefix...)
	for _, component := range p {
		switch component {
		case ".":
			continue
		case "..":
			if len(result) == 0 {
				return nil, backtrace.Error(backtrace.CodeResourceError, nil, "import path escapes root")
			}
			result = result[:len(result)-1]
		case "":
			continue
		default:
			result = append(result, component)
		}
	}
	return result, nil
}
