// Package commands implements the CLI commands for mkt.
package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mkt/cmd"
	"github.com/thoreinstein/mkt/internal/config"
	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/logging"
	"github.com/thoreinstein/mkt/internal/paths"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: $XDG_CONFIG_HOME/mkt/config.yaml)")

	rootCmd.Version = cmd.Info().Version
	rootCmd.SetVersionTemplate("mkt version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	_, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "mkt",
	Short: "Create, extend and validate Claude plugin marketplaces",
	Long: `mkt manages Claude plugin marketplaces: a directory holding
.claude-plugin/marketplace.json and the skill directories it references.

It scaffolds new marketplaces, appends plugin entries that bundle skills,
and validates the manifest and every referenced SKILL.md.`,
	Example: `  # Create a marketplace in the current directory
  mkt init my-marketplace

  # Register a plugin bundling two skills
  mkt add my-marketplace --name code-tools \
    --description "Tools for reviewing and refactoring code" \
    --skills skills/review,skills/refactor

  # Validate, failing on warnings
  mkt validate my-marketplace --strict

  See Also: mkt init, mkt add, mkt validate, mkt config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging installs the run's logger as the slog default and in the
// command context.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"),
			"Pass either -q or -v")
	}
	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Pass --log-format text or --log-format json")
	}

	opts := logging.Options{
		Verbosity: verbosity,
		Quiet:     quiet,
		Format:    format,
		Out:       cmd.ErrOrStderr(),
	}
	// Flags take precedence over MKT_DEBUG.
	if opts.Verbosity == 0 {
		switch os.Getenv("MKT_DEBUG") {
		case "1", "true":
			opts.Verbosity = 2
		case "2":
			opts.Verbosity = 3
		}
	}

	if logFile != "" {
		path, err := resolveLogFile(logFile)
		if err != nil {
			return errors.NewUserError(err, "Check the --log-file path")
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		opts.File = f
	}

	logger := logging.Build(opts)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// resolveLogFile expands "~" and places bare file names in the mkt log
// directory, creating it if needed.
func resolveLogFile(name string) (string, error) {
	path, err := paths.ExpandHome(name)
	if err != nil {
		return "", err
	}
	if filepath.Base(path) != path {
		return path, nil
	}
	if err := paths.EnsureDir(paths.LogDir(), 0); err != nil {
		return "", errors.Wrap(err, "creating log directory")
	}
	return filepath.Join(paths.LogDir(), path), nil
}

// checkConfig reports a config load failure, except for commands that must
// work without a usable config.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "gen-doc", "config":
		return nil
	}
	if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
