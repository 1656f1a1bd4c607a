// Package cmd implements the keypad command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/rybkr/keypad/internal/logging"
	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	logLevel  string
	logFormat string
}

// NewRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "keypad",
		Short: "Count button presses through a chain of robot keypads",
		Long: `keypad computes how many buttons a human must press on a directional
keypad so that a chain of robots, each driving the next keypad down, types a
door code on a numeric keypad.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := logging.ParseLevel(opts.logLevel); !ok {
				return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", opts.logLevel)
			}
			if !logging.ValidFormat(opts.logFormat) {
				return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", opts.logFormat)
			}
			logger := logging.New(opts.logLevel, opts.logFormat, cmd.ErrOrStderr())
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Logging level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", logging.FormatText, "Log output format: text or json")

	rootCmd.AddCommand(newSolveCmd(opts))
	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newProfileCmd())

	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
