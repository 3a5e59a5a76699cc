package builtins

import "minky/internal/value"

// All returns the full standard table (spec.md §4.5): every built-in
// command, name to implementation. Each call builds fresh entries;
// context.New copies them into a Context's read-only standard table.
// Grounded on original_source's
// src/interpreter/standard/mod.rs register_standard_library.
func All() map[string]*value.Command {
	entries := []*value.Command{
		value.NewCommand("var", Var),
		value.NewCommand("set", Set),
		value.NewCommand("print", Print),
		value.NewCommand("println", Println),
		value.NewCommand("add", Add),
		value.NewCommand("sub", Sub),
		value.NewCommand("mul", Mul),
		value.NewCommand("div", Div),
		value.NewCommand("=", Eq),
		value.NewCommand("<", Lt),
		value.NewCommand("<=", Le),
		value.NewCommand(">", Gt),
		value.NewCommand(">=", Ge),
		value.NewCommand("list", List),
		value.NewCommand("list-get", ListGet),
		value.NewCommand("list-length", ListLength),
		value.NewCommand("list-push", ListPush),
		value.NewCommand("list-pop", ListPop),
		value.NewCommand("table", Table),
		value.NewCommand("closure", Closure),
		value.NewCommand("parameter", Parameter),
		value.NewCommand("return", Return),
		value.NewCommand("break", Break),
		value.NewCommand("continue", Continue),
		value.NewCommand("when", When),
		value.NewCommand("while", While),
		value.NewCommand("import", Import),
		value.NewCommand("console", Console),
	}
	table := make(map[string]*value.Command, len(entries))
	for _, c := range entries {
		table[c.Name] = c
	}
	return table
}
