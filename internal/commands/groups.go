package distilreport

import "github.com/spf13/cobra"

// showCmd groups subcommands that display configuration and results.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying configuration and results",
	Long:  `The 'show' command groups subcommands that display the effective configuration or the summary tables.`,
}

// listCmd groups listing subcommands.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
}
