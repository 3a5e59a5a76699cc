package context

import "os/exec"

// RunSubprocess backs the `console` builtin (spec.md §4.5). Per
// REDESIGN FLAGS, arguments are passed to the subprocess verbatim —
// the reference's re-quoting of every argument is not reproduced.
func (c *Context) RunSubprocess(name string, args []string) (string, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.Output()
	return string(output), err
}
