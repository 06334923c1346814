// internal/commands/root.go
package distilreport

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/distilreport/internal/appconfig"
	"github.com/mwiater/distilreport/internal/logging"
	"github.com/mwiater/distilreport/internal/results"
)

// envPrefix prefixes environment overrides, e.g. DISTILREPORT_CSVPATH.
const envPrefix = "DISTILREPORT"

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "distilreport",
	Short: "distilreport — comparison reports for distillation experiment results",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := ensureConfigLoaded()
		if err != nil {
			return err
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ApplyDefaults()
		cfg.ConfigPath = configPath
		if err := cfg.Validate(); err != nil {
			return err
		}
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := appconfig.Defaults()
	viper.SetDefault("csvPath", defaults.CSVPath)
	viper.SetDefault("trainingMethods", defaults.TrainingMethods)
	viper.SetDefault("host", defaults.Host)
	viper.SetDefault("port", defaults.Port)
	viper.SetDefault("outputDir", defaults.OutputDir)
	viper.SetDefault("plotsDir", "")
	viper.SetDefault("staticDir", "")
	viper.SetDefault("notesPath", "")
	viper.SetDefault("title", defaults.Title)
	viper.SetDefault("logFile", appconfig.DefaultLogFile)
	viper.SetDefault("debug", false)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().String("csv", defaults.CSVPath, "path to the results CSV")
	rootCmd.PersistentFlags().StringSlice("methods", results.DefaultMethodOrder, "training method column and bar order")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().String("notes", "", "markdown file rendered above the tables")
	rootCmd.PersistentFlags().String("staticDir", "", "directory served and exported ahead of the embedded assets")
	rootCmd.PersistentFlags().String("title", defaults.Title, "report title")

	_ = viper.BindPFlag("csvPath", rootCmd.PersistentFlags().Lookup("csv"))
	_ = viper.BindPFlag("trainingMethods", rootCmd.PersistentFlags().Lookup("methods"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("notesPath", rootCmd.PersistentFlags().Lookup("notes"))
	_ = viper.BindPFlag("staticDir", rootCmd.PersistentFlags().Lookup("staticDir"))
	_ = viper.BindPFlag("title", rootCmd.PersistentFlags().Lookup("title"))
}

// initConfig loads .env, points viper at the config file and enables
// environment overrides.
func initConfig() {
	_ = godotenv.Load()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
}

// ensureConfigLoaded validates and reads the config file when one exists and
// returns its path, or "" when running on defaults.
func ensureConfigLoaded() (string, error) {
	if cfgFile == "" {
		return "", nil
	}
	if _, err := appconfig.Load(cfgFile); err != nil {
		if errors.Is(err, appconfig.ErrNoConfig) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return viper.ConfigFileUsed(), nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
