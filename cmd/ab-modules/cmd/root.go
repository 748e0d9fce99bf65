package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/ab-modules/internal/config"
	"github.com/oshokin/ab-modules/internal/logger"
	"github.com/oshokin/ab-modules/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// envPath to the optional dotenv file.
	envPath string
	// logLevel overrides the configured log level when set.
	logLevel string

	// rootCmd is the base command; every feature is a subcommand.
	rootCmd = &cobra.Command{
		Use:   "ab-modules",
		Short: "Calculator, audit log and threshold alarm.",
		Long: `ab-modules combines three small components: an integer calculator,
an append-only operation log and an alarm that latches once a result exceeds a threshold.

Run the classic demo, evaluate single expressions locally, or serve the components over gRPC
and query them remotely.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// Execute runs the CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	err := rootCmd.Execute()

	logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVar(&envPath, "env-file", config.DefaultEnvFilename, "path to optional dotenv file")
	rootCmd.PersistentFlags().
		StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(demoCmd, calcCmd, serveCmd, historyCmd, alarmCmd, watchCmd)
}

// setup loads the dotenv file and applies the log level before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(envPath); err != nil {
		return err
	}

	level := logLevel
	if level == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		level = cfg.LogLevel
	}

	parsed, ok := logger.ParseLogLevel(level)
	if !ok {
		return fmt.Errorf("%w: unknown log level %q", errInvalidFlag, level)
	}

	logger.SetLevel(parsed)

	return nil
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}
