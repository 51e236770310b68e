// Package cmd implements the CLI entrypoint for the supervision root.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"rootsv/logging"
	"rootsv/platform"
)

// Version information set at build time.
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// Global flags
var (
	globalLog       string
	globalLogFormat string
	globalDebug     bool
)

// rootCmd is the base command. Run (the default action, with no
// subcommand) is what a kernel actually execs as PID 1; the other
// subcommands (version, usage) only print information and do not talk
// to a running root.
var rootCmd = &cobra.Command{
	Use:   "rootsv",
	Short: "minimal process-1 supervision root",
	Long: `rootsv is a minimal PID 1 / per-user session supervision root.

Run with no arguments it performs one-shot boot bring-up, spawns and
reaps the service manager and its logger, and arbitrates signal- and
FIFO-driven state transitions until a terminal verb is latched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return nil
	},
	RunE: runSupervise,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalLog, "log", "", "set the log file path")
	rootCmd.PersistentFlags().StringVar(&globalLogFormat, "log-format", "text", "set the format for log output (text or json)")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "enable debug logging")
}

func setupLogging() {
	logOutput := os.Stderr
	if globalLog != "" {
		if f, err := os.OpenFile(globalLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600); err == nil {
			logOutput = f
		}
	}

	logLevel := slog.LevelInfo
	if globalDebug {
		logLevel = slog.LevelDebug
	}

	logger := logging.NewLogger(logging.Config{
		Level:  logLevel,
		Format: globalLogFormat,
		Output: logOutput,
		Mode:   platform.DetectMode(),
	})
	logging.SetDefault(logger)
}
