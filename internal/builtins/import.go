package builtins

import (
	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/parser"
	"minky/internal/resource"
	"minky/internal/value"
)

// Import implements `import module-path`: resolve the path string,
// fetch its source through the resource loader, parse it, and run it in
// the current interpreter. Lives in builtins rather than context
// because the dependency arrow runs builtins -> parser, not the other
// way, while context already depends on builtins; doing the fetch here
// keeps that arrow one-directional. Grounded on original_source's
// standard/import_fn.rs.
func Import(ctx value.Evaluator, head atom.Atom, body []atom.Atom) (value.Signal, *backtrace.Backtrace) {
	if err := requireCount(head, body, 1); err != nil {
		return value.Signal{}, err
	}
	v, err := ctx.Resolve(body[0])
	if err != nil {
		return value.Signal{}, err
	}
	if v.Kind != value.KindString {
		return value.Signal{}, backtrace.Error(backtrace.CodeTypeMismatch, &body[0].Mark, "import expects a string path")
	}
	path := resource.ParsePath(v.StringValue)
	if len(path) == 0 {
		return value.Signal{}, backtrace.Error(backtrace.CodeResourceError, &body[0].Mark, "empty import path")
	}
	moduleName := path[len(path)-1]

	source, reqErr := ctx.RequestCode(path)
	if reqErr != nil {
		return value.Signal{}, reqErr
	}
	program, parseErr := parser.Parse(moduleName, source)
	if parseErr != nil {
		return value.Signal{}, parseErr
	}
	return ctx.RunStatements(program, value.NewTable())
}
