package git

import (
	"fmt"
	"strings"
)

// GitError is the consolidated failure for one record call. A failing
// command aborts the remaining steps of that call only; a commit or tag
// already created is not rolled back.
type GitError struct {
	// Step is the command that failed, e.g. "commit".
	Step string
	// Dir is the working directory the command ran in.
	Dir string
	// Output is the captured command output.
	Output string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Step)
	if e.Dir != "" {
		msg += " in " + e.Dir
	}
	msg += ": " + e.Cause.Error()
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *GitError) Unwrap() error {
	return e.Cause
}
