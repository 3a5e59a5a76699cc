// Package repl is a line-oriented front end over context.Context, in
// the shape of the teacher's REPL: read, parse+run, print, loop.
// Rewritten against the real lexer/parser/context packages — the
// teacher's version imported an unresolvable "kanso-lang/lexer" and
// "kanso-lang/parser".
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"minky/internal/backtrace"
	"minky/internal/context"
	"minky/internal/parser"
	"minky/internal/resource"
	"minky/internal/value"
)

const Prompt = ">> "
const Continuation = ".. "

const moduleName = "<repl>"

// Start reads one block of lines (ended by a blank line) at a time,
// evaluates it against a single persistent Context and scope, and
// prints the Represent form of the resulting signal's value; a block
// that runs to completion yields the session's scope table, so that
// table is what is printed. Unlike cmd/minky, the
// session survives an error: the backtrace is rendered and the loop
// continues.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	ctx := context.New(resource.NewFilesystemLoader(nil))
	scope := value.NewTable()
	dim := color.New(color.Faint).SprintFunc()

	for {
		fmt.Fprint(out, Prompt)
		block, ok := readBlock(scanner, out)
		if !ok {
			return
		}
		if block == "" {
			continue
		}

		program, parseErr := parser.Parse(moduleName, block)
		if parseErr != nil {
			fmt.Fprint(out, backtrace.Render(parseErr))
			continue
		}

		signal, err := ctx.RunStatements(program, scope)
		if err != nil {
			fmt.Fprint(out, backtrace.Render(err))
			continue
		}
		fmt.Fprintln(out, dim(value.Represent(signal.Value)))
	}
}

// readBlock accumulates lines until a blank line or EOF, echoing a
// continuation prompt for every subsequent line — indentation is
// significant, so a statement's body keeps typing until the user signals
// the end of the block with an empty line.
func readBlock(scanner *bufio.Scanner, out io.Writer) (string, bool) {
	var lines []string
	for {
		if !scanner.Scan() {
			return joinLines(lines), len(lines) > 0
		}
		line := scanner.Text()
		if line == "" {
			return joinLines(lines), true
		}
		lines = append(lines, line)
		fmt.Fprint(out, Continuation)
	}
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
