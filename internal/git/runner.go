// Package git records a version bump in version control: stage, commit,
// tag, push. Commands are always built as explicit argument lists, never
// split from a single string, so commit messages and addon names with
// spaces or punctuation are safe.
package git

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// Action is one git command, either executed or intended (dry run).
type Action struct {
	// Dir is the working directory the command runs in; empty means the
	// process's current directory.
	Dir string
	// Args is the full argv, starting with "git".
	Args []string
}

// String renders the action as a copy-pasteable shell command.
func (a Action) String() string {
	cmd := shellquote.Join(a.Args...)
	if a.Dir != "" {
		return fmt.Sprintf("%s  (in %s)", cmd, a.Dir)
	}
	return cmd
}

// Runner executes a single out-of-process command to completion and
// returns its combined output. Output is captured, not streamed.
type Runner interface {
	Run(dir string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec. The call blocks until the
// command exits; there is no timeout or cancellation path.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}
