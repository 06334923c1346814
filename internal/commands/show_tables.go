package distilreport

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/distilreport/internal/tui"
)

// showTablesCmd prints the summary tables to the terminal.
var showTablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the summary tables with highlighted ranks",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		page := loadPage(out, activeConfig())
		fmt.Fprint(out, tui.RenderPage(page))
	},
}

func init() {
	showCmd.AddCommand(showTablesCmd)
}
