package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wowkit/tocbump/internal/app"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [addon]",
	Short: "Show discovered TOC files and their versions",
	Long: `Show every discovered TOC file grouped by addon, with the version each
file carries. When the files of one addon disagree on the version the
group is flagged with a warning; nothing is changed.

Examples:
  tocbump show
  tocbump show Alpha
  tocbump show --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var showVerbose bool

func init() {
	showCmd.Flags().BoolVarP(&showVerbose, FlagVerbose, "v", false, DescVerbose)
}

func runShow(cmd *cobra.Command, args []string) error {
	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	cfg := loadConfig(showVerbose)

	result, err := app.ShowVersions(app.ShowOptions{
		Fs:      appFs,
		Config:  cfg,
		Addon:   filter,
		Verbose: verboseScan(showVerbose),
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		printWarning(w)
	}

	if len(result.Groups) == 0 {
		if filter != "" {
			printWarning(fmt.Sprintf("no TOC files found for %s", filter))
		} else {
			printInfo("No TOC files found")
		}
		return nil
	}

	for _, g := range result.Groups {
		printInfo(g.Name)
		for _, r := range g.Records {
			printInfo(fmt.Sprintf("  %s  %s", r.Path, r.Version))
		}
		if g.Inconsistent {
			printWarning(fmt.Sprintf("%s has inconsistent versions: %s", g.Name, strings.Join(g.Versions, ", ")))
		}
	}

	return nil
}
