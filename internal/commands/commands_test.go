package distilreport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCommandWritesSite(t *testing.T) {
	configPath := writeTempFile(t, "config.json", `{}`)
	useConfig(t, configPath)
	csvPath := writeTempFile(t, "results.csv", sampleCSV)
	outDir := filepath.Join(t.TempDir(), "site")

	out := runRoot(t, "--config", configPath, "--csv", csvPath, "--logFile", filepath.Join(t.TempDir(), "x.log"),
		"export", "--output", outDir)

	if !strings.Contains(out, "Report written to") {
		t.Fatalf("expected success line:\n%s", out)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("index.html not written: %v", err)
	}
	if !strings.Contains(string(data), "ETTh1 (H=96)") {
		t.Fatalf("index.html missing group table")
	}
	if _, err := os.Stat(filepath.Join(outDir, "static", "css", "report.css")); err != nil {
		t.Fatalf("expected embedded stylesheet: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "static", "images", "plots", "ETTh1_H96_T_DLinear_S_PatchTST_mae.png")); err != nil {
		t.Fatalf("expected chart: %v", err)
	}
}

func TestShowTablesCommand(t *testing.T) {
	configPath := writeTempFile(t, "config.json", `{}`)
	useConfig(t, configPath)
	csvPath := writeTempFile(t, "results.csv", sampleCSV)

	out := runRoot(t, "--config", configPath, "--csv", csvPath, "--logFile", filepath.Join(t.TempDir(), "x.log"), "show", "tables")
	for _, want := range []string{"ETTh1 (H=96)", "DLinear", "0.4000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowTablesMissingCSV(t *testing.T) {
	configPath := writeTempFile(t, "config.json", `{}`)
	useConfig(t, configPath)

	out := runRoot(t, "--config", configPath, "--csv", filepath.Join(t.TempDir(), "nope.csv"), "--logFile", filepath.Join(t.TempDir(), "x.log"), "show", "tables")
	if !strings.Contains(out, "Failed to load or process data.") {
		t.Fatalf("expected error panel:\n%s", out)
	}
}

func TestInspectCommand(t *testing.T) {
	configPath := writeTempFile(t, "config.json", `{}`)
	useConfig(t, configPath)
	csvPath := writeTempFile(t, "results.csv", sampleCSV)

	out := runRoot(t, "--config", configPath, "--csv", csvPath, "--logFile", filepath.Join(t.TempDir(), "x.log"),
		"inspect", "--combination", "PatchTST")
	if !strings.Contains(out, "Matched 2 of 5 records") {
		t.Fatalf("expected match summary:\n%s", out)
	}
	if !strings.Contains(out, "unrecognized model_type") {
		t.Fatalf("expected fallback warning:\n%s", out)
	}
}

func TestListCommands(t *testing.T) {
	configPath := writeTempFile(t, "config.json", `{}`)
	useConfig(t, configPath)

	out := runRoot(t, "--config", configPath, "--logFile", filepath.Join(t.TempDir(), "x.log"), "list", "commands")
	for _, want := range []string{"Commands and Subcommands:", "distilreport serve", "distilreport show tables", "distilreport export"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
