// internal/commands/inspect.go
package distilreport

import (
	"fmt"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/distilreport/internal/results"
)

// inspectCmd dumps classified records for debugging the labeling rules.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dump classified records and flag rows with missing labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := activeConfig()
		combination, _ := cmd.Flags().GetString("combination")

		records, err := results.Load(cfg.CSVPath)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), failText(err.Error()))
			return err
		}

		out := cmd.OutOrStdout()
		matched, missingArch, missingMethod, fallback := 0, 0, 0, 0
		for _, rec := range records {
			if combination != "" && !strings.EqualFold(rec.ModelCombination, combination) {
				continue
			}
			matched++
			if rec.StudentModelArch == "" {
				missingArch++
			}
			if rec.TrainingMethod == "" {
				missingMethod++
			} else if !results.IsKnownMethod(rec.TrainingMethod) {
				fallback++
			}
			_, _ = pp.Fprintln(out, rec)
		}

		fmt.Fprintf(out, "%s %d of %d records\n", successText("Matched"), matched, len(records))
		if missingArch > 0 {
			fmt.Fprintln(out, warnText(fmt.Sprintf("Warning: %d records have an empty student_model_arch", missingArch)))
		}
		if missingMethod > 0 {
			fmt.Fprintln(out, warnText(fmt.Sprintf("Warning: %d records have an empty training_method", missingMethod)))
		}
		if fallback > 0 {
			fmt.Fprintln(out, warnText(fmt.Sprintf("Warning: %d records carry an unrecognized model_type as training_method", fallback)))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().String("combination", "", "only show records with this model_combination")
	rootCmd.AddCommand(inspectCmd)
}
