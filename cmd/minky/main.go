// Command minky runs a Minky script. Grounded on original_source's
// src/bin/minky.rs and spec.md §6: no args prints usage and exits 0;
// otherwise the script runs with its own CLI arguments pre-pushed onto
// argument_slots as STRING values, so a top-level `parameter` can
// receive them. A "minky.manifest" file beside the script, if present,
// can override the resource loader's import prefix (see
// internal/manifest).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"minky/internal/backtrace"
	"minky/internal/context"
	"minky/internal/manifest"
	"minky/internal/resource"
	"minky/internal/value"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: minky <script-path> [script-args...]")
		return 0
	}

	scriptPath := args[1]
	source, readErr := os.ReadFile(scriptPath)
	if readErr != nil {
		fmt.Fprintf(os.Stderr, "minky: %s\n", readErr)
		return 1
	}

	scriptDir := filepath.Dir(scriptPath)
	prefix := resource.Path{scriptDir}
	if manifestPrefix, ok := readManifestPrefix(scriptDir); ok {
		prefix = resource.Path{manifestPrefix}
	}

	loader := resource.NewFilesystemLoader(prefix)
	ctx := context.New(loader)

	for i := len(args) - 1; i >= 2; i-- {
		ctx.PushSlot(value.String(args[i]))
	}

	moduleName := filepath.Base(scriptPath)
	_, err := ctx.RunCode(moduleName, string(source))
	if err != nil {
		fmt.Fprint(os.Stderr, backtrace.Render(err))
		return 1
	}
	return 0
}

// readManifestPrefix looks for "minky.manifest" alongside the script and
// returns its "prefix" directive, if any.
func readManifestPrefix(scriptDir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(scriptDir, "minky.manifest"))
	if err != nil {
		return "", false
	}
	prefix, _, parseErr := manifest.Parse(string(data))
	if parseErr != nil || prefix == "" {
		return "", false
	}
	return filepath.Join(scriptDir, prefix), true
}
