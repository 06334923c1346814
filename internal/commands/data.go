// internal/commands/data.go
package distilreport

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"

	"github.com/mwiater/distilreport/internal/appconfig"
	"github.com/mwiater/distilreport/internal/logging"
	"github.com/mwiater/distilreport/internal/report"
	"github.com/mwiater/distilreport/internal/results"
)

var (
	successText = color.New(color.FgGreen).SprintFunc()
	warnText    = color.New(color.FgYellow).SprintFunc()
	failText    = color.New(color.FgRed).SprintFunc()
)

func init() {
	// Debug dumps follow the same terminal detection as status lines.
	pp.ColoringEnabled = !color.NoColor
}

// activeConfig returns the loaded config or the defaults when
// PersistentPreRunE has not run.
func activeConfig() appconfig.Config {
	if cfg := GetConfig(); cfg != nil {
		return *cfg
	}
	return appconfig.Defaults()
}

// readNotes returns the notes file contents, or nil when unset or unreadable.
func readNotes(cfg appconfig.Config) []byte {
	if cfg.NotesPath == "" {
		return nil
	}
	data, err := os.ReadFile(cfg.NotesPath)
	if err != nil {
		logging.LogEvent("[notes] Skipping %s: %v", cfg.NotesPath, err)
		return nil
	}
	return data
}

// reportOptions builds report options shared by every command.
func reportOptions(cfg appconfig.Config) report.Options {
	return report.Options{
		Title:       cfg.Title,
		MethodOrder: cfg.TrainingMethods,
		Notes:       readNotes(cfg),
	}
}

// loadPage loads the CSV and builds the report page, printing a warning on
// load failure. The page always comes back, carrying an error panel when
// loading failed.
func loadPage(out io.Writer, cfg appconfig.Config) report.Page {
	records, err := results.Load(cfg.CSVPath)
	if err != nil {
		fmtWarn(out, "Could not load %s: %v", cfg.CSVPath, err)
	}
	return report.Build(records, err, reportOptions(cfg))
}

func fmtWarn(out io.Writer, format string, args ...any) {
	_, _ = color.New(color.FgYellow).Fprintf(out, format+"\n", args...)
}
