// Command minky-repl starts an interactive Minky session over
// internal/repl.
package main

import (
	"os"

	"minky/internal/repl"
)

func main() {
	repl.Start(os.Stdin, os.Stdout)
}
