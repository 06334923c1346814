// internal/commands/plots.go
package distilreport

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/distilreport/internal/plots"
	"github.com/mwiater/distilreport/internal/results"
)

// plotsCmd renders every chart into a directory.
var plotsCmd = &cobra.Command{
	Use:   "plots",
	Short: "Render one bar chart per group into the plots directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := activeConfig()
		records, err := results.Load(cfg.CSVPath)
		if err != nil {
			return err
		}

		written, err := plots.Renderer{OutputDir: cfg.PlotsDirPath(), MethodOrder: cfg.TrainingMethods}.WriteAll(records)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, w := range written {
			fmt.Fprintf(out, "  %s\n", w.Path)
		}
		fmt.Fprintf(out, "%s %d charts to %s\n", successText("Wrote"), len(written), cfg.PlotsDirPath())
		return nil
	},
}

func init() {
	plotsCmd.Flags().String("plots-dir", "", "chart output directory (default <outputDir>/static/images/plots)")
	_ = viper.BindPFlag("plotsDir", plotsCmd.Flags().Lookup("plots-dir"))
	rootCmd.AddCommand(plotsCmd)
}
