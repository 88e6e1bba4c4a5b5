package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wowkit/tocbump/internal/app"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List whitelisted addons found on disk",
	Long: `List the distinct whitelisted addons found in the addons directory,
with the number of TOC files each contains. Whitelisted addons without a
directory on disk are omitted.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listVerbose bool

func init() {
	listCmd.Flags().BoolVarP(&listVerbose, FlagVerbose, "v", false, DescVerbose)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(listVerbose)

	result, err := app.ListAddons(app.ShowOptions{
		Fs:      appFs,
		Config:  cfg,
		Verbose: verboseScan(listVerbose),
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		printWarning(w)
	}

	if len(result.Addons) == 0 {
		printInfo("No addons found")
		return nil
	}

	for _, a := range result.Addons {
		suffix := "files"
		if a.Files == 1 {
			suffix = "file"
		}
		printInfo(fmt.Sprintf("%s (%d %s)", a.Name, a.Files, suffix))
	}

	return nil
}
