package git

import (
	"fmt"
	"strings"

	"github.com/wowkit/tocbump/internal/debug"
)

// RecordOptions describes one commit/tag/push sequence.
type RecordOptions struct {
	// Version is the version being recorded; it is also the tag name,
	// with no prefix.
	Version string
	// Message overrides the generated commit message when non-empty.
	Message string
	// Scope names the addon being recorded, used in the generated commit
	// message. Empty means the whole repository.
	Scope string
	// Dir is the working directory for every command. Empty means the
	// process's current directory.
	Dir string
	// DryRun reports the intended commands without executing any.
	DryRun bool
}

// CommitMessage returns the message used for the commit: the explicit
// override, or a generated one naming the scope when present.
func (o RecordOptions) CommitMessage() string {
	if o.Message != "" {
		return o.Message
	}
	if o.Scope != "" {
		return fmt.Sprintf("Bump %s version to %s", o.Scope, o.Version)
	}
	return fmt.Sprintf("Bump version to %s", o.Version)
}

// Result describes what one record call did, or would do in dry-run mode.
type Result struct {
	// Actions lists the commands executed, or intended when dry-run.
	Actions []Action
	// Committed is true when pending changes were staged and committed.
	Committed bool
	// Tagged is true when the tag was created.
	Tagged bool
	// Pushed is true when branch and tag were pushed.
	Pushed bool
}

// Recorder drives the commit/tag/push sequence through a Runner.
type Recorder struct {
	runner Runner
}

// NewRecorder creates a Recorder over the given Runner.
func NewRecorder(runner Runner) *Recorder {
	return &Recorder{runner: runner}
}

// Record stages and commits any pending changes, creates a tag named
// after the version, and pushes the current branch and the tag. Each step
// runs only if the previous one succeeded. In dry-run mode nothing is
// executed and every intended command is reported in the same order.
func (r *Recorder) Record(opts RecordOptions) (*Result, error) {
	msg := opts.CommitMessage()

	status := []string{"git", "status", "--porcelain"}
	add := []string{"git", "add", "-A"}
	commit := []string{"git", "commit", "-m", msg}
	tag := []string{"git", "tag", opts.Version}
	push := []string{"git", "push", "origin", "HEAD", opts.Version}

	result := &Result{}

	if opts.DryRun {
		for _, args := range [][]string{status, add, commit, tag, push} {
			result.Actions = append(result.Actions, Action{Dir: opts.Dir, Args: args})
		}
		return result, nil
	}

	debug.DebugSection("git record")
	debug.DebugValue("version", opts.Version)
	debug.DebugValue("dir", opts.Dir)

	out, err := r.run(result, opts.Dir, status)
	if err != nil {
		return result, &GitError{Step: "status", Dir: opts.Dir, Output: out, Cause: err}
	}

	if strings.TrimSpace(out) != "" {
		if out, err := r.run(result, opts.Dir, add); err != nil {
			return result, &GitError{Step: "add", Dir: opts.Dir, Output: out, Cause: err}
		}
		if out, err := r.run(result, opts.Dir, commit); err != nil {
			return result, &GitError{Step: "commit", Dir: opts.Dir, Output: out, Cause: err}
		}
		result.Committed = true
	} else {
		debug.Debug("working tree clean, skipping commit")
	}

	if out, err := r.run(result, opts.Dir, tag); err != nil {
		return result, &GitError{Step: "tag", Dir: opts.Dir, Output: out, Cause: err}
	}
	result.Tagged = true

	if out, err := r.run(result, opts.Dir, push); err != nil {
		return result, &GitError{Step: "push", Dir: opts.Dir, Output: out, Cause: err}
	}
	result.Pushed = true

	return result, nil
}

func (r *Recorder) run(result *Result, dir string, args []string) (string, error) {
	result.Actions = append(result.Actions, Action{Dir: dir, Args: args})
	debug.Debug("running %v", args)
	return r.runner.Run(dir, args...)
}
