package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  CSV Path:         %s\n", cfg.CSVPath)
	fmt.Fprintf(out, "  Training Methods: %s\n", strings.Join(cfg.TrainingMethods, ", "))
	fmt.Fprintf(out, "  Listen Address:   %s:%d\n", cfg.Host, cfg.Port)
	fmt.Fprintf(out, "  Output Dir:       %s\n", cfg.OutputDir)
	fmt.Fprintf(out, "  Plots Dir:        %s\n", cfg.PlotsDirPath())
	fmt.Fprintf(out, "  Static Dir:       %s\n", orNone(cfg.StaticDir))
	fmt.Fprintf(out, "  Notes Path:       %s\n", orNone(cfg.NotesPath))
	fmt.Fprintf(out, "  Title:            %s\n", cfg.Title)
	fmt.Fprintf(out, "  Log File:         %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Debug:            %v\n", cfg.Debug)
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
