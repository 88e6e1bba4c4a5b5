package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wowkit/tocbump/internal/app"
	"github.com/wowkit/tocbump/internal/git"
	"github.com/wowkit/tocbump/internal/semver"
)

// bumpCmd represents the bump command
var bumpCmd = &cobra.Command{
	Use:   "bump <version|all|addon> [addon]",
	Short: "Bump addon versions and record the change in git",
	Long: `Bump the ## Version: field of addon TOC files and record the change
as a commit, a tag named after the new version, and a push.

Targets:
  bump 2.0.0            Set every whitelisted addon to 2.0.0
  bump 2.0.0 Alpha      Set only Alpha to 2.0.0
  bump all --minor      Compute the next minor version per addon,
                        independently for each addon
  bump Alpha --major    Compute and apply Alpha's next major version

Without --major/--minor/--patch the patch component is bumped. An
explicit version cannot be combined with a bump kind flag.

Each addon is tagged in its own directory, so one addon's git failure
does not stop the others. With --dry-run nothing is written and no git
command runs; every intended change is reported instead.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runBump,
}

// Bump command flags
var (
	bumpMajor    bool
	bumpMinor    bool
	bumpPatch    bool
	bumpDryRun   bool
	bumpDryAlias bool
	bumpVerbose  bool
	bumpMessage  string
)

func init() {
	// Flags for bump
	bumpCmd.Flags().BoolVar(&bumpMajor, FlagMajor, false, DescMajor)
	bumpCmd.Flags().BoolVar(&bumpMinor, FlagMinor, false, DescMinor)
	bumpCmd.Flags().BoolVar(&bumpPatch, FlagPatch, false, DescPatch)
	bumpCmd.Flags().BoolVarP(&bumpDryRun, FlagDryRun, "d", false, DescDryRun)
	bumpCmd.Flags().BoolVar(&bumpDryAlias, FlagDry, false, DescDryRun)
	bumpCmd.Flags().BoolVarP(&bumpVerbose, FlagVerbose, "v", false, DescVerbose)
	bumpCmd.Flags().StringVarP(&bumpMessage, FlagMessage, "m", "", DescMessage)
	// --dry is kept as a hidden alias of --dry-run.
	_ = bumpCmd.Flags().MarkHidden(FlagDry)
}

// bumpRequest is the parsed form of the bump arguments.
type bumpRequest struct {
	explicit string
	addon    string
	all      bool
	kind     semver.BumpKind
}

// parseBumpArgs resolves the positional arguments and kind flags into a
// bump request. Malformed or ambiguous combinations fail here, before
// anything is scanned or written.
func parseBumpArgs(args []string, major, minor, patch bool) (bumpRequest, error) {
	var req bumpRequest

	kindFlags := 0
	for _, set := range []bool{major, minor, patch} {
		if set {
			kindFlags++
		}
	}
	if kindFlags > 1 {
		return req, fmt.Errorf("--major, --minor, and --patch are mutually exclusive")
	}
	switch {
	case major:
		req.kind = semver.BumpMajor
	case minor:
		req.kind = semver.BumpMinor
	default:
		req.kind = semver.BumpPatch
	}

	if len(args) == 0 {
		return req, fmt.Errorf("bump requires a target: an explicit version, an addon name, or \"all\"")
	}

	first := args[0]
	switch {
	case first == "all":
		if len(args) > 1 {
			return req, fmt.Errorf("unexpected argument %q after \"all\"", args[1])
		}
		req.all = true
	case semver.IsValid(first):
		if kindFlags > 0 {
			return req, fmt.Errorf("an explicit version cannot be combined with --major/--minor/--patch")
		}
		req.explicit = first
		if len(args) == 2 {
			req.addon = args[1]
		}
	case looksLikeVersion(first):
		return req, fmt.Errorf("invalid version %q: expected major.minor.patch", first)
	default:
		if len(args) > 1 {
			return req, fmt.Errorf("unexpected argument %q after addon name", args[1])
		}
		req.addon = first
	}

	return req, nil
}

func runBump(cmd *cobra.Command, args []string) error {
	req, err := parseBumpArgs(args, bumpMajor, bumpMinor, bumpPatch)
	if err != nil {
		return err
	}

	dryRun := bumpDryRun || bumpDryAlias
	cfg := loadConfig(bumpVerbose)

	if dryRun {
		printInfo("Dry run: no files will be written, no git commands will run")
	}

	result, err := app.Bump(app.BumpOptions{
		Fs:       appFs,
		Runner:   git.ExecRunner{},
		Config:   cfg,
		Explicit: req.explicit,
		Kind:     req.kind,
		Addon:    req.addon,
		All:      req.all,
		DryRun:   dryRun,
		Message:  bumpMessage,
		Verbose:  verboseScan(bumpVerbose),
		OnCompute: func(name, highest, next string) {
			if highest == "" {
				printProgress(fmt.Sprintf("%s: -> %s", name, next))
				return
			}
			printProgress(fmt.Sprintf("%s: %s -> %s", name, highest, next))
		},
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		printWarning(w)
	}

	for _, ab := range result.Addons {
		if ab.Skipped {
			printWarning(fmt.Sprintf("%s: nothing to bump", ab.Name))
			continue
		}
		reportAddonBump(ab, dryRun)
	}

	return nil
}

func reportAddonBump(ab app.AddonBump, dryRun bool) {
	for _, f := range ab.Files {
		switch {
		case dryRun:
			printInfo(fmt.Sprintf("  would update %s: %s -> %s", f.Path, f.OldVersion, f.NewVersion))
		case f.Err != nil:
			printErrorMsg(fmt.Sprintf("failed to update %s: %v", f.Path, f.Err))
		default:
			printSuccess(fmt.Sprintf("updated %s: %s -> %s", f.Path, f.OldVersion, f.NewVersion))
		}
	}

	if dryRun {
		if ab.Git != nil {
			for _, a := range ab.Git.Actions {
				printInfo(fmt.Sprintf("  would run %s", a))
			}
		}
		return
	}

	if ab.GitErr != nil {
		printErrorMsg(fmt.Sprintf("%s: %v", ab.Name, ab.GitErr))
		return
	}
	if ab.Git != nil && ab.Git.Tagged {
		printSuccess(fmt.Sprintf("%s: tagged and pushed %s", ab.Name, ab.Next))
	}
}
