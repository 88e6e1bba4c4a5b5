package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/wowkit/tocbump/internal/addon"
	"github.com/wowkit/tocbump/internal/config"
	"github.com/wowkit/tocbump/internal/git"
	"github.com/wowkit/tocbump/internal/semver"
)

// BumpOptions describes one bump invocation.
type BumpOptions struct {
	// Fs is the filesystem records are read from and written to.
	Fs afero.Fs
	// Runner executes git commands.
	Runner git.Runner
	// Config is the loaded configuration.
	Config *config.Config
	// Explicit is a literal target version. Mutually exclusive with Kind.
	Explicit string
	// Kind is the bump kind when Explicit is empty. Defaults to patch.
	Kind semver.BumpKind
	// Addon targets one addon. Empty targets every whitelisted addon.
	Addon string
	// All explicitly targets every whitelisted addon.
	All bool
	// DryRun reports intended changes without writing files or running
	// git commands.
	DryRun bool
	// Message overrides the generated commit message.
	Message string
	// Verbose receives extra scan diagnostics when set.
	Verbose addon.VerboseFunc
	// OnCompute, when set, is invoked with the chosen highest version and
	// the computed next version for each addon, before any mutation.
	OnCompute func(addonName, highest, next string)
}

// FileOutcome is the per-record result of the rewrite.
type FileOutcome struct {
	// Path is the record's file path.
	Path string
	// OldVersion is the version the record carried at scan time.
	OldVersion string
	// NewVersion is the version written, or that would be written.
	NewVersion string
	// Written is true when the file was actually rewritten.
	Written bool
	// Err is the write failure, if any. One record's failure does not
	// stop the others.
	Err error
}

// AddonBump is the result for one addon scope.
type AddonBump struct {
	// Name is the addon name.
	Name string
	// Highest is the highest version found across the addon's records,
	// empty when none parsed.
	Highest string
	// Next is the version applied to the addon's records.
	Next string
	// Skipped is true when the addon had nothing to bump.
	Skipped bool
	// Files are the per-record outcomes.
	Files []FileOutcome
	// Git is the recorder result for this scope, nil when skipped.
	Git *git.Result
	// GitErr is the consolidated git failure for this scope. It aborts
	// only this scope; other addons are still attempted.
	GitErr error
}

// BumpResult contains the result of a bump invocation.
type BumpResult struct {
	// Addons are the per-addon results, one per targeted addon.
	Addons []AddonBump
	// Warnings are non-fatal scan problems.
	Warnings []string
}

// Bump validates the request, scans the addons root, computes the target
// version per addon, rewrites the records, and records each addon's bump
// in git. Every targeted addon is handled independently: file or git
// failures in one scope do not stop the others. Validation failures stop
// before any file is touched.
func Bump(opts BumpOptions) (*BumpResult, error) {
	if opts.Explicit == "" && opts.Addon == "" && !opts.All {
		return nil, NewArgumentError("no bump target: specify an addon name, \"all\", or an explicit version")
	}
	if opts.Explicit != "" && !semver.IsValid(opts.Explicit) {
		return nil, NewArgumentError(fmt.Sprintf("invalid version %q: expected major.minor.patch", opts.Explicit))
	}
	if opts.Addon != "" && !opts.Config.IsWhitelisted(opts.Addon) {
		return nil, NewTargetError(fmt.Sprintf("addon %q is not whitelisted", opts.Addon))
	}
	if opts.Kind == "" {
		opts.Kind = semver.BumpPatch
	}

	catalog, warnings, err := addon.Scan(opts.Fs, opts.Config, opts.Verbose)
	if err != nil {
		return nil, NewScanError(err)
	}

	targets := catalog.AddonNames()
	if opts.Addon != "" {
		targets = []string{opts.Addon}
	}

	recorder := git.NewRecorder(opts.Runner)
	result := &BumpResult{Warnings: warnings}

	for _, name := range targets {
		result.Addons = append(result.Addons, bumpAddon(catalog, name, recorder, opts))
	}
	return result, nil
}

// bumpAddon handles one addon scope: compute once, then reuse the same
// version for both the file rewrite and the tag.
func bumpAddon(catalog *addon.Catalog, name string, recorder *git.Recorder, opts BumpOptions) AddonBump {
	ab := AddonBump{Name: name}

	records := catalog.ForAddon(name)
	if len(records) == 0 {
		ab.Skipped = true
		return ab
	}

	versions := make([]string, len(records))
	for i, r := range records {
		versions[i] = r.Version
	}
	highest, ok := semver.Highest(versions)
	if ok {
		ab.Highest = highest.String()
	}

	if opts.Explicit != "" {
		ab.Next = opts.Explicit
	} else {
		if !ok {
			// No parsable version anywhere in this addon: nothing to
			// base a bump on. Reported, not fatal.
			ab.Skipped = true
			return ab
		}
		ab.Next = highest.Next(opts.Kind).String()
	}

	if opts.OnCompute != nil {
		opts.OnCompute(name, ab.Highest, ab.Next)
	}

	for _, r := range records {
		outcome := FileOutcome{
			Path:       r.Path,
			OldVersion: r.Version,
			NewVersion: ab.Next,
		}
		if !opts.DryRun {
			content := addon.ReplaceVersion(r.RawContent, ab.Next)
			if err := afero.WriteFile(opts.Fs, r.Path, []byte(content), 0644); err != nil {
				outcome.Err = err
			} else {
				outcome.Written = true
			}
		}
		ab.Files = append(ab.Files, outcome)
	}

	gitResult, err := recorder.Record(git.RecordOptions{
		Version: ab.Next,
		Message: opts.Message,
		Scope:   name,
		Dir:     filepath.Join(opts.Config.AddonsDirectory, name),
		DryRun:  opts.DryRun,
	})
	ab.Git = gitResult
	ab.GitErr = err

	return ab
}
