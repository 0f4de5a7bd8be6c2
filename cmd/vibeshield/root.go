package vibeshield

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vibeshield/vibeshield/internal/logging"
	"github.com/vibeshield/vibeshield/internal/report"
)

var (
	flagLogLevel string
	flagNoColor  bool
	flagConfig   string

	version = "0.1.0"

	logger = logging.Discard()
)

// rootCmd is the base Cobra command for the VibeShield CLI.
var rootCmd = &cobra.Command{
	Use:           "vibeshield",
	Short:         "Find hard-coded credentials in source files",
	Long:          "VibeShield scans source files for hard-coded API keys and tokens, combining provider patterns with entropy scoring, and suggests environment variables to move them to.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if !logging.ValidLevel(flagLogLevel) {
			return fmt.Errorf("unknown log level %q", flagLogLevel)
		}
		logger = logging.New(cmd.ErrOrStderr(), flagLogLevel)
		return nil
	},
}

// exitError ends a command with a specific process exit code after its
// output has been written.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// exitWith returns nil for ExitClean and an exitError otherwise.
func exitWith(code int) error {
	if code == report.ExitClean {
		return nil
	}
	return exitError{code: code}
}

// Execute runs the VibeShield CLI. It should be called by the main package.
func Execute() {
	os.Exit(execute())
}

func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := rootCmd.ExecuteContext(ctx)
	var ee exitError
	switch {
	case err == nil:
		return report.ExitClean
	case errors.As(err, &ee):
		return ee.code
	default:
		fmt.Fprintln(rootCmd.ErrOrStderr(), "error:", err)
		return report.ExitFailure
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "log level: debug|info|warn|error (logs go to stderr)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .vibeshield.yml next to the target, then the global config)")
}

// log returns the logger configured for the current invocation.
func log() *slog.Logger { return logger }
