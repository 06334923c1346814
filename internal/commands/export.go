// internal/commands/export.go
package distilreport

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/distilreport/internal/report"
	"github.com/mwiater/distilreport/internal/results"
	"github.com/mwiater/distilreport/web"
)

// exportCmd writes the static site.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the report, assets and charts as a static site",
	Long:  `Render index.html, copy the static assets and pre-render every chart into the output directory so the report can be browsed without a server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := activeConfig()
		noPlots, _ := cmd.Flags().GetBool("no-plots")
		analysisPath, _ := cmd.Flags().GetString("analysis-output")

		records, loadErr := results.Load(cfg.CSVPath)
		if loadErr != nil {
			fmtWarn(cmd.OutOrStdout(), "Could not load %s: %v", cfg.CSVPath, loadErr)
		}

		res, err := report.Exporter{
			OutputDir:    cfg.OutputDir,
			PlotsDir:     cfg.PlotsDir,
			Assets:       web.Assets,
			StaticDir:    cfg.StaticDir,
			SkipPlots:    noPlots,
			AnalysisPath: analysisPath,
			Options:      reportOptions(cfg),
		}.Export(records, loadErr)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", successText("Report written to"), res.IndexPath)
		fmt.Fprintf(out, "Charts written: %d\n", len(res.Charts))
		if res.AnalysisPath != "" {
			fmt.Fprintf(out, "Analysis JSON written to %s\n", res.AnalysisPath)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("output", "", "output directory (default static_site)")
	exportCmd.Flags().Bool("no-plots", false, "skip chart generation")
	exportCmd.Flags().String("analysis-output", "", "also write the summary tables as JSON to this path")
	_ = viper.BindPFlag("outputDir", exportCmd.Flags().Lookup("output"))
	rootCmd.AddCommand(exportCmd)
}
