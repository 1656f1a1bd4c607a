package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rybkr/keypad/internal/batch"
	"github.com/rybkr/keypad/internal/config"
	"github.com/rybkr/keypad/internal/logging"
	"github.com/spf13/cobra"
)

var errNoCodes = errors.New("no codes given: pass them as arguments, with --file, or in a --config run file")

type solveOptions struct {
	depth      int
	workers    int
	codesFile  string
	configFile string
	verbose    bool
	strict     bool
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	opts := &solveOptions{}

	solveCmd := &cobra.Command{
		Use:   "solve [CODE...]",
		Short: "Sum the complexity of door codes",
		Long: `Compute the complexity of each door code (human presses times the code's
numeric value) through a chain of directional keypads, and print the sum.

Examples:
  keypad solve 029A 980A 179A 456A 379A
  keypad solve --depth 25 --file codes.txt
  keypad solve --config run.toml --workers 4 --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, root, opts, args)
		},
	}

	solveCmd.Flags().IntVarP(&opts.depth, "depth", "d", batch.DefaultDepth, "Number of directional keypads operated by robots")
	solveCmd.Flags().IntVarP(&opts.workers, "workers", "w", batch.DefaultWorkers, "Number of codes scored concurrently")
	solveCmd.Flags().StringVarP(&opts.codesFile, "file", "f", "", "File with one code per line ('#' starts a comment)")
	solveCmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "TOML or YAML run file")
	solveCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show press count and numeric value per code")
	solveCmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error if any code fails")

	return solveCmd
}

// resolveConfig layers defaults, the run file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, root *rootOptions, opts *solveOptions, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("depth") {
		cfg.Depth = opts.depth
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("log-level") || opts.configFile == "" {
		cfg.Logging.Level = root.logLevel
	}
	if flags.Changed("log-format") || opts.configFile == "" {
		cfg.Logging.Format = root.logFormat
	}

	if opts.codesFile != "" {
		codes, err := readCodesFile(opts.codesFile)
		if err != nil {
			return nil, err
		}
		cfg.Codes = append(cfg.Codes, codes...)
	}
	cfg.Codes = append(cfg.Codes, args...)

	if len(cfg.Codes) == 0 {
		return nil, errNoCodes
	}
	// Bad codes are reported per code by the runner, not rejected up front.
	codes := cfg.Codes
	cfg.Codes = nil
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Codes = codes
	return cfg, nil
}

func runSolve(cmd *cobra.Command, root *rootOptions, opts *solveOptions, args []string) error {
	cfg, err := resolveConfig(cmd, root, opts, args)
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()))
	logging.FromContext(ctx).Debug("Solve configuration resolved.", "depth", cfg.Depth, "workers", cfg.Workers, "codes", len(cfg.Codes))

	runner := batch.New(cfg.RunnerOptions())
	report := runner.Run(ctx, cfg.Codes)

	if err := report.Write(cmd.OutOrStdout(), opts.verbose); err != nil {
		return err
	}
	if opts.strict {
		return report.Err()
	}
	return nil
}

// readCodesFile reads one code per line. Blank lines and text after '#' are
// ignored.
func readCodesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open codes file: %w", err)
	}
	defer f.Close()

	codes, err := readCodes(f)
	if err != nil {
		return nil, fmt.Errorf("read codes file %s: %w", path, err)
	}
	return codes, nil
}

func readCodes(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			codes = append(codes, line)
		}
	}
	return codes, scanner.Err()
}
