package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/wowkit/tocbump/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file interactively",
	Long: `Create tocbump.json by prompting for the addons directory and the
addon whitelist. The other commands are argument-driven and never
prompt; init is the only interactive command.

Examples:
  tocbump init
  tocbump init --config ./wow/tocbump.json
  tocbump init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, FlagForce, "f", false, DescForce)
}

func runInit(cmd *cobra.Command, args []string) error {
	if exists, _ := aferoExists(globalConfigPath); exists && !initForce {
		printInfo(fmt.Sprintf("Configuration already exists at %s", globalConfigPath))
		printInfo("(use --force to overwrite)")
		return nil
	}

	cfg := config.DefaultConfig()

	dirPrompt := &survey.Input{
		Message: "Addons directory",
		Default: config.DefaultAddonsDirectory,
		Help:    "Root directory whose subdirectories are the addons",
	}
	if err := survey.AskOne(dirPrompt, &cfg.AddonsDirectory, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	printInfo("Enter whitelisted addon names, one per prompt. Leave empty to finish.")
	for {
		var name string
		prompt := &survey.Input{
			Message: fmt.Sprintf("Addon #%d", len(cfg.WhitelistedAddons)+1),
			Help:    "Name of an addon subdirectory to manage",
		}
		if err := survey.AskOne(prompt, &name); err != nil {
			return err
		}
		if name == "" {
			break
		}
		cfg.WhitelistedAddons = append(cfg.WhitelistedAddons, name)
	}

	if err := config.Save(appFs, globalConfigPath, cfg); err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Created: %s", globalConfigPath))
	printInfo("")
	printInfo("Next steps:")
	printInfo("  1. Run: tocbump list")
	printInfo("  2. Run: tocbump bump all --dry-run")

	return nil
}

// aferoExists reports whether the path exists on the command filesystem.
func aferoExists(path string) (bool, error) {
	if _, err := appFs.Stat(path); err != nil {
		return false, err
	}
	return true, nil
}
