package batch

import (
	"fmt"
	"io"

	"github.com/rybkr/keypad/internal/chain"
)

// Result is the outcome of scoring one code.
type Result struct {
	Code       string
	Value      int // Numeric part of the code
	Presses    int // Human button presses needed
	Complexity int // Presses * Value
	Err        error
}

// Report collects the results of one batch in input order.
type Report struct {
	Depth   int
	Results []Result
	Total   int // Sum of Complexity over successful codes
	Failed  int
}

func newReport(depth int, results []Result) *Report {
	rep := &Report{Depth: depth, Results: results}
	for i, res := range results {
		if res.Err != nil {
			rep.Failed++
			continue
		}
		total, err := chain.Add(rep.Total, res.Complexity)
		if err != nil {
			results[i].Err = err
			rep.Failed++
			continue
		}
		rep.Total = total
	}
	return rep
}

// Err returns the first per-code error, or nil if every code succeeded.
func (r *Report) Err() error {
	for _, res := range r.Results {
		if res.Err != nil {
			return fmt.Errorf("code %q: %w", res.Code, res.Err)
		}
	}
	return nil
}

// Write prints one line per code followed by the total. With verbose set the
// press count and numeric value are shown as well.
func (r *Report) Write(w io.Writer, verbose bool) error {
	for _, res := range r.Results {
		var err error
		switch {
		case res.Err != nil:
			_, err = fmt.Fprintf(w, "%s: error: %v\n", res.Code, res.Err)
		case verbose:
			_, err = fmt.Fprintf(w, "%s: %d presses * %d = %d\n", res.Code, res.Presses, res.Value, res.Complexity)
		default:
			_, err = fmt.Fprintf(w, "%s: %d\n", res.Code, res.Complexity)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "total (depth %d): %d\n", r.Depth, r.Total)
	return err
}
