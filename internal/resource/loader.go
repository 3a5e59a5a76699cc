package resource

import "minky/internal/backtrace"

// Loader fetches source text for a logical module path. Resolving
// relative imports happens against Prefix, the loader's directory-like
// root (spec.md §6).
type Loader interface {
	GetCode(path Path) (string, *backtrace.Backtrace)
	Prefix() Path
	SetPrefix(path Path)
}
