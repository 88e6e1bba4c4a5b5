package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wowkit/tocbump/internal/config"
	"github.com/wowkit/tocbump/internal/debug"
)

// Version information (set from cmd/tocbump via ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalConfigPath string
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
)

// appFs is the filesystem every command operates on. Tests swap in an
// in-memory filesystem.
var appFs afero.Fs = afero.NewOsFs()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tocbump",
	Short: "Addon TOC version management tool",
	Long: `tocbump keeps the ## Version: field of addon TOC files in sync and
records version bumps in git.

It scans the configured addons directory, restricted to the whitelisted
addon names in tocbump.json, and can show, list, and bump the versions it
finds. A bump rewrites the version line of every TOC file of the targeted
addon, then commits, tags, and pushes in that addon's directory.

Use "tocbump bump all --minor --dry-run" to preview what a minor bump of
every whitelisted addon would do without touching anything.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalConfigPath, FlagConfig, "c", config.DefaultConfigPath, DescConfig)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(whitelistCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(bumpCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// loadConfig loads the configuration file, falling back to defaults with
// a warning when it is missing or unparsable.
func loadConfig(verbose bool) *config.Config {
	cfg, warn := config.NewLoader(appFs).LoadOrDefault(globalConfigPath)
	if warn != nil {
		printWarning(fmt.Sprintf("using default configuration: %v", warn))
	}
	printVerbose(verbose, fmt.Sprintf("configuration file: %s", globalConfigPath))
	printVerbose(verbose, fmt.Sprintf("addons directory: %s", cfg.AddonsDirectory))
	printVerbose(verbose, fmt.Sprintf("whitelisted addons: %d", len(cfg.WhitelistedAddons)))
	return cfg
}

// verboseScan adapts printVerbose into a scan diagnostics callback.
func verboseScan(verbose bool) func(format string, args ...interface{}) {
	if !verbose {
		return nil
	}
	return func(format string, args ...interface{}) {
		printVerbose(true, fmt.Sprintf(format, args...))
	}
}
