package distilreport

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/distilreport/internal/tui"
)

// browseCmd opens the interactive table browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the summary tables interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Browse(loadPage(cmd.OutOrStdout(), activeConfig()))
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
