package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/winfind/internal/config"
	"github.com/mj1618/winfind/internal/output"
	"github.com/mj1618/winfind/internal/version"
	"github.com/spf13/cobra"

	// Window backends register themselves with the platform package.
	_ "github.com/mj1618/winfind/internal/platform/fixture"
	_ "github.com/mj1618/winfind/internal/platform/x11"
)

var rootCmd = &cobra.Command{
	Use:          "winfind",
	Short:        "Locate and order desktop windows for UI tests",
	Long:         "A CLI tool that lists open windows, ranks them by proximity to a target window, and picks one by index, title, or scene so tests can aim input at it.",
	SilenceUsage: true,
}

// settings is the effective configuration, resolved before each command runs.
var settings = config.Default()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/winfind/config.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "Window backend: x11, fixture")
	rootCmd.PersistentFlags().String("fixture", "", "Desktop fixture file for the fixture backend")
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json (default: yaml on a terminal, json when piped)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		settings = cfg

		logger, err := config.NewLogger(os.Stderr, cfg.LogLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)

		format, err := output.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}

// loadSettings reads the config file and applies explicitly set flags on top.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	flags := rootCmd.PersistentFlags()

	path, _ := flags.GetString("config")
	required := path != ""
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	if flags.Changed("backend") {
		cfg.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("fixture") {
		cfg.Fixture, _ = flags.GetString("fixture")
		// A fixture on the command line implies the fixture backend.
		if !flags.Changed("backend") {
			cfg.Backend = "fixture"
		}
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
