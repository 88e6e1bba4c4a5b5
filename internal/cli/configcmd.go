package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whitelistCmd represents the whitelist command
var whitelistCmd = &cobra.Command{
	Use:   "whitelist",
	Short: "Show the configured addon whitelist",
	Args:  cobra.NoArgs,
	RunE:  runWhitelist,
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the loaded configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var (
	whitelistVerbose bool
	configVerbose    bool
)

func init() {
	whitelistCmd.Flags().BoolVarP(&whitelistVerbose, FlagVerbose, "v", false, DescVerbose)
	configCmd.Flags().BoolVarP(&configVerbose, FlagVerbose, "v", false, DescVerbose)
}

func runWhitelist(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(whitelistVerbose)

	if len(cfg.WhitelistedAddons) == 0 {
		printInfo("Whitelist is empty")
		return nil
	}
	for _, name := range cfg.WhitelistedAddons {
		printInfo(name)
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(configVerbose)

	printInfo(fmt.Sprintf("Configuration file: %s", globalConfigPath))
	printInfo(fmt.Sprintf("Addons directory:   %s", cfg.AddonsDirectory))
	printInfo(fmt.Sprintf("Whitelisted addons (%d):", len(cfg.WhitelistedAddons)))
	for _, name := range cfg.WhitelistedAddons {
		printInfo("  " + name)
	}
	return nil
}
