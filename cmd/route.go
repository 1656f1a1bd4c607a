package cmd

import (
	"fmt"

	"github.com/rybkr/keypad/internal/batch"
	"github.com/rybkr/keypad/internal/chain"
	"github.com/rybkr/keypad/internal/logging"
	"github.com/spf13/cobra"
)

func newRouteCmd() *cobra.Command {
	var depth int

	routeCmd := &cobra.Command{
		Use:   "route CODE",
		Short: "Print the literal press sequence at every keypad level",
		Long: `Print the moves made on each keypad while typing CODE, starting with the
robot at the door keypad and ending with the human. The sequences grow
quickly, so --depth is limited.

Examples:
  keypad route 029A
  keypad route 379A --depth 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			moves, err := batch.DoorMoves(code)
			if err != nil {
				return err
			}

			levels, err := chain.New(nil).Levels(moves, depth)
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("Route expanded.", "code", code, "levels", len(levels))

			out := cmd.OutOrStdout()
			for d, level := range levels {
				if _, err := fmt.Fprintf(out, "%s (%d): %s\n", levelName(d, depth), len(level), level); err != nil {
					return err
				}
			}
			return nil
		},
	}

	routeCmd.Flags().IntVarP(&depth, "depth", "d", batch.DefaultDepth, fmt.Sprintf("Number of directional keypads (at most %d)", chain.DefaultMaxExpandDepth))

	return routeCmd
}

// levelName labels the keypad whose presses are shown at level d.
func levelName(d, depth int) string {
	if d == depth {
		return "human"
	}
	return fmt.Sprintf("robot %d", d+1)
}
