// Package batch scores door codes: it routes each code on the numeric keypad
// and asks the chain evaluator how many human presses that takes through the
// configured number of directional keypads.
package batch

import (
	"context"
	"errors"

	"github.com/rybkr/keypad/internal/chain"
	"github.com/rybkr/keypad/internal/keypad"
	"github.com/rybkr/keypad/internal/logging"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMalformedCode = errors.New("malformed door code")
	ErrInvalidDepth  = chain.ErrInvalidDepth
	ErrOverflow      = chain.ErrOverflow
)

// Runner evaluates door codes at a fixed depth. Every code evaluated by the
// same Runner shares one memo table.
type Runner struct {
	options *Options
	eval    *chain.Evaluator
}

// New creates a runner. If options is nil, DefaultOptions(DefaultDepth) is used.
func New(options *Options) *Runner {
	if options == nil {
		options = DefaultOptions(DefaultDepth)
	}
	return &Runner{
		options: options,
		eval:    chain.New(nil),
	}
}

// Depth returns the number of directional keypads the runner evaluates through.
func (r *Runner) Depth() int {
	return r.options.Depth
}

// Evaluator returns the runner's chain evaluator.
func (r *Runner) Evaluator() *chain.Evaluator {
	return r.eval
}

// DoorMoves validates code and returns the moves the first robot makes on the
// numeric keypad to type it.
func DoorMoves(code string) (string, error) {
	if _, err := ParseCode(code); err != nil {
		return "", err
	}
	return keypad.RouteKeys(keypad.Numeric, code)
}

// PressCount returns how many buttons the human presses to type code.
func (r *Runner) PressCount(code string) (int, error) {
	moves, err := DoorMoves(code)
	if err != nil {
		return 0, err
	}
	return r.eval.Length(moves, r.options.Depth)
}

// TotalCost returns the code's complexity: its press count multiplied by its
// numeric value.
func (r *Runner) TotalCost(code string) (int, error) {
	val, err := ParseCode(code)
	if err != nil {
		return 0, err
	}
	n, err := r.PressCount(code)
	if err != nil {
		return 0, err
	}
	return chain.Mul(n, val)
}

// Sum returns the total cost of every code, stopping at the first error.
func (r *Runner) Sum(codes []string) (int, error) {
	total := 0
	for _, code := range codes {
		cost, err := r.TotalCost(code)
		if err != nil {
			return 0, err
		}
		if total, err = chain.Add(total, cost); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// evaluate scores one code into a Result. It never fails; errors are carried
// in the Result.
func (r *Runner) evaluate(code string) Result {
	res := Result{Code: code}

	val, err := ParseCode(code)
	if err != nil {
		res.Err = err
		return res
	}
	res.Value = val

	n, err := r.PressCount(code)
	if err != nil {
		res.Err = err
		return res
	}
	res.Presses = n
	if res.Complexity, err = chain.Mul(n, val); err != nil {
		res.Err = err
	}
	return res
}

// Run scores every code and keeps going when one fails. Failures are logged
// at warn level through the context logger and recorded in the report.
// With Options.Workers > 1 codes are scored concurrently; the report keeps
// input order either way.
func (r *Runner) Run(ctx context.Context, codes []string) *Report {
	logger := logging.FromContext(ctx)
	logger.Debug("Batch started.", "codes", len(codes), "depth", r.options.Depth, "workers", r.options.Workers)

	results := make([]Result, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.options.Workers, 1))

	for i, code := range codes {
		if err := gctx.Err(); err != nil {
			results[i] = Result{Code: code, Err: err}
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Code: code, Err: err}
				return nil
			}
			results[i] = r.evaluate(code)
			return nil
		})
	}
	// Workers never return an error.
	_ = g.Wait()

	report := newReport(r.options.Depth, results)
	for _, res := range report.Results {
		if res.Err != nil {
			logger.Warn("Code evaluation failed.", "code", res.Code, "error", res.Err)
			continue
		}
		logger.Debug("Code evaluated.", "code", res.Code, "presses", res.Presses, "value", res.Value, "complexity", res.Complexity)
	}
	logger.Debug("Batch finished.", "total", report.Total, "failed", report.Failed, "cache_entries", r.eval.Cache().Len())

	return report
}
