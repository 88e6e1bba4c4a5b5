package cli

import "regexp"

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig  = "config"
	FlagDryRun  = "dry-run"
	FlagDry     = "dry"
	FlagVerbose = "verbose"
	FlagMajor   = "major"
	FlagMinor   = "minor"
	FlagPatch   = "patch"
	FlagMessage = "message"
	FlagForce   = "force"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescConfig  = "Path to config file"
	DescDryRun  = "Report intended changes without writing files or running git"
	DescVerbose = "Show detailed configuration and scan diagnostics"
	DescMajor   = "Bump the major version (resets minor and patch)"
	DescMinor   = "Bump the minor version (resets patch)"
	DescPatch   = "Bump the patch version (default)"
	DescMessage = "Commit message (default: generated from addon and version)"
	DescForce   = "Overwrite existing configuration"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)

// versionLikePattern matches arguments that were clearly meant to be a
// version rather than an addon name, so a malformed version like "1.2"
// fails validation instead of being treated as an addon.
var versionLikePattern = regexp.MustCompile(`^[0-9][0-9.]*$`)

// looksLikeVersion reports whether the argument was intended as a version.
func looksLikeVersion(arg string) bool {
	return versionLikePattern.MatchString(arg)
}
