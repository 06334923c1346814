package distilreport

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/mwiater/distilreport/internal/logging"
)

const sampleCSV = `dataset,horizon,split,model_combination,model_type,metric,value
ETTh1,96,test,DLinear-PatchTST,Teacher,mae,0.41
ETTh1,96,test,DLinear-PatchTST,Student_TaskOnly,mae,0.45
ETTh1,96,test,DLinear-PatchTST,Student_RDT,mae,0.40
ETTh1,96,test,PatchTST,PatchTST,mae,0.50
ETTh1,96,test,PatchTST,Mystery,mae,0.55
`

func resetFlag(cmdFlag string) {
	flag := rootCmd.PersistentFlags().Lookup(cmdFlag)
	if flag == nil {
		return
	}
	_ = flag.Value.Set(flag.DefValue)
	flag.Changed = false
}

func resetFlags() {
	for _, name := range []string{"csv", "logFile", "debug", "notes", "staticDir", "title"} {
		resetFlag(name)
	}
	if flag := rootCmd.PersistentFlags().Lookup("methods"); flag != nil {
		flag.Changed = false
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func useConfig(t *testing.T, path string) {
	t.Helper()
	prevCfgFile := cfgFile
	cfgFile = path
	viper.SetConfigFile(path)
	t.Cleanup(func() {
		cfgFile = prevCfgFile
		viper.SetConfigFile(prevCfgFile)
		currentConfig = nil
		resetFlags()
	})
	t.Cleanup(func() { _ = logging.Close() })
}

func TestPersistentPreRunEUsesFlagValues(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "distilreport.log")
	configPath := writeTempFile(t, "config.json", `{"title": "From File", "port": 6000}`)
	useConfig(t, configPath)

	_ = rootCmd.PersistentFlags().Set("csv", "data/results.csv")
	_ = rootCmd.PersistentFlags().Set("methods", "TaskOnly,RDT")
	_ = rootCmd.PersistentFlags().Set("logFile", logPath)
	_ = rootCmd.PersistentFlags().Set("debug", "true")

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}

	if currentConfig == nil || currentConfig.ConfigPath != configPath {
		t.Fatalf("expected config loaded with path %s, got %+v", configPath, currentConfig)
	}
	if currentConfig.CSVPath != "data/results.csv" {
		t.Fatalf("expected csv flag to flow into config, got %s", currentConfig.CSVPath)
	}
	if strings.Join(currentConfig.TrainingMethods, ",") != "TaskOnly,RDT" {
		t.Fatalf("expected methods flag to flow into config, got %v", currentConfig.TrainingMethods)
	}
	if currentConfig.Title != "From File" || currentConfig.Port != 6000 {
		t.Fatalf("expected file values, got title=%q port=%d", currentConfig.Title, currentConfig.Port)
	}
	if !currentConfig.Debug {
		t.Fatalf("expected debug enabled")
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("expected log file to be created: %v", err)
	}
}

func TestPersistentPreRunEInvalidConfig(t *testing.T) {
	configPath := writeTempFile(t, "config.json", `{"port": "not-a-number"}`)
	useConfig(t, configPath)
	_ = rootCmd.PersistentFlags().Set("logFile", filepath.Join(t.TempDir(), "x.log"))

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err == nil {
		t.Fatalf("expected error for schema violation")
	}
}

func TestPersistentPreRunEMissingConfigUsesDefaults(t *testing.T) {
	useConfig(t, filepath.Join(t.TempDir(), "missing.json"))
	_ = rootCmd.PersistentFlags().Set("logFile", filepath.Join(t.TempDir(), "x.log"))

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}
	if currentConfig.ConfigPath != "" {
		t.Fatalf("expected no config path, got %q", currentConfig.ConfigPath)
	}
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	configPath := writeTempFile(t, "config.json", `{"csvPath": "from-file.csv"}`)
	useConfig(t, configPath)
	t.Setenv("DISTILREPORT_CSVPATH", "from-env.csv")
	initConfig()
	_ = rootCmd.PersistentFlags().Set("logFile", filepath.Join(t.TempDir(), "x.log"))

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}
	if currentConfig.CSVPath != "from-env.csv" {
		t.Fatalf("expected env override, got %s", currentConfig.CSVPath)
	}
}

func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs([]string{})
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestShowConfigCommandOutput(t *testing.T) {
	configPath := writeTempFile(t, "config.json", `{"title": "Sweep"}`)
	useConfig(t, configPath)

	out := runRoot(t, "--config", configPath, "--logFile", filepath.Join(t.TempDir(), "x.log"), "show", "config")
	if !strings.Contains(out, "Config file: "+configPath) {
		t.Fatalf("expected config path in output:\n%s", out)
	}
	if !strings.Contains(out, "Title:            Sweep") {
		t.Fatalf("expected title in output:\n%s", out)
	}
}
