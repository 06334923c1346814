// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/distilreport/internal/results"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultCSVPath is the results file read when none is configured.
	DefaultCSVPath = "results/collected_partial_summary.csv"
	// DefaultHost is the interface the server binds to.
	DefaultHost = "127.0.0.1"
	// DefaultPort is the server port.
	DefaultPort = 5001
	// DefaultOutputDir receives the static export.
	DefaultOutputDir = "static_site"
	// DefaultLogFile is the log file used when none is configured.
	DefaultLogFile = "distilreport.log"
	// DefaultTitle is the report heading.
	DefaultTitle = "Model Performance Analysis"
)

// ErrNoConfig is returned by Load when the config file does not exist.
var ErrNoConfig = errors.New("no configuration file found")

// Config represents the top-level application configuration.
type Config struct {
	CSVPath         string   `json:"csvPath"`
	TrainingMethods []string `json:"trainingMethods"`
	Host            string   `json:"host"`
	Port            int      `json:"port"`
	OutputDir       string   `json:"outputDir"`
	PlotsDir        string   `json:"plotsDir,omitempty"`
	StaticDir       string   `json:"staticDir,omitempty"`
	NotesPath       string   `json:"notesPath,omitempty"`
	Title           string   `json:"title"`
	LogFile         string   `json:"logFile,omitempty"`
	Debug           bool     `json:"debug"`
	ConfigPath      string   `json:"-"`
}

// Defaults returns a Config populated with every default value.
func Defaults() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields with their defaults.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.CSVPath) == "" {
		c.CSVPath = DefaultCSVPath
	}
	c.TrainingMethods = splitMethods(c.TrainingMethods)
	if len(c.TrainingMethods) == 0 {
		c.TrainingMethods = append([]string(nil), results.DefaultMethodOrder...)
	}
	if strings.TrimSpace(c.Host) == "" {
		c.Host = DefaultHost
	}
	if c.Port <= 0 {
		c.Port = DefaultPort
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = DefaultOutputDir
	}
	if strings.TrimSpace(c.Title) == "" {
		c.Title = DefaultTitle
	}
}

// PlotsDirPath returns the chart directory, defaulting to
// <OutputDir>/static/images/plots.
func (c Config) PlotsDirPath() string {
	if path := strings.TrimSpace(c.PlotsDir); path != "" {
		return path
	}
	return filepath.Join(c.OutputDir, "static", "images", "plots")
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return DefaultLogFile
}

// Validate checks values that the schema cannot express.
func (c Config) Validate() error {
	seen := make(map[string]struct{}, len(c.TrainingMethods))
	for _, m := range c.TrainingMethods {
		if _, dup := seen[m]; dup {
			return fmt.Errorf("invalid configuration: training method %q listed more than once", m)
		}
		seen[m] = struct{}{}
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid configuration: port %d out of range", c.Port)
	}
	return nil
}

// Load reads, validates and decodes the configuration at path, applying defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w at %q", ErrNoConfig, path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := ValidateJSON(data); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	config.ApplyDefaults()
	config.ConfigPath = path
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// splitMethods flattens comma-separated entries, as produced by environment
// variables, and trims blanks.
func splitMethods(in []string) []string {
	var out []string
	for _, entry := range in {
		for _, part := range strings.Split(entry, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
