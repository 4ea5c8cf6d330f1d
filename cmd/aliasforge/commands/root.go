// Package commands implements the CLI commands for aliasforge.
package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/config"
	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/logging"
	"github.com/aliasforge/aliasforge/internal/shell"
)

// shellFlag holds the value of the --shell flag.
var shellFlag string

// storeFlag holds the value of the --store flag.
var storeFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// cfg holds the loaded configuration.
var cfg *config.Config

func init() {
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().StringVarP(&shellFlag, "shell", "s", "",
		`target shell: zsh, bash, fish, powershell, cmd (default: detected)`)
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "",
		"path to the alias collection file")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "aliasforge",
	Short: "Define shell aliases once, export them everywhere",
	Long: `aliasforge manages a single collection of named command aliases and
exports it into per-shell configuration files (zsh, bash, fish,
PowerShell, cmd).

Exports are written into a clearly delimited managed block inside each
config file, so your surrounding content is never touched and
re-exporting is idempotent. A timestamped backup is taken before every
write, and any backup can be rolled back byte-for-byte.

Use the --shell flag to target a specific shell, or omit it to use the
shell detected from your environment.`,
	Example: `  # Add an alias and export it to your shell's config
  aliasforge add gs "git status"
  aliasforge export shell

  # Pull existing aliases out of a live shell
  aliasforge import shell zsh

  # Roll back the last write to ~/.zshrc
  aliasforge backup restore ~/.zshrc

  See Also: aliasforge doctor, aliasforge config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validateShellFlag(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("ALIASFORGE_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1 // Debug
				case "2":
					v = 2 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctx)

	return nil
}

// validateShellFlag checks that a specified shell is valid.
func validateShellFlag(cmd *cobra.Command, _ []string) error {
	// Skip validation for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	// Check for config load errors first
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	// If no shell specified, that's fine - we'll use the detected shell
	if shellFlag == "" {
		return nil
	}

	if !shell.Valid(shellFlag) {
		err := errors.Newf("invalid shell %q (valid: %s)",
			shellFlag, strings.Join(shell.IDs(), ", "))
		return errors.NewUserError(err, "Run 'aliasforge --help' to see valid shells")
	}

	return nil
}

// targetShell resolves the shell to operate on: explicit argument first,
// then the --shell flag, then the configured default, then detection.
func targetShell(arg string) (shell.Shell, error) {
	id := arg
	if id == "" {
		id = shellFlag
	}
	if id == "" && cfg != nil {
		id = cfg.DefaultShell
	}
	if id == "" {
		id = shell.Detect().DefaultShellID
	}
	return shell.Get(id)
}

// storePath resolves the alias collection file path from flag or config.
func storePath() string {
	if storeFlag != "" {
		return storeFlag
	}
	if cfg != nil {
		return cfg.Store.Path
	}
	return ""
}

// retentionCount resolves the backup retention count from config.
func retentionCount() int {
	if cfg != nil && cfg.Backup.RetentionCount > 0 {
		return cfg.Backup.RetentionCount
	}
	return 0
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
