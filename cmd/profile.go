package cmd

import (
	"fmt"

	"github.com/rybkr/keypad/internal/batch"
	"github.com/rybkr/keypad/internal/chain"
	"github.com/spf13/cobra"
)

// deepDepth is the chain length of the large puzzle.
const deepDepth = 25

func newProfileCmd() *cobra.Command {
	var depth int

	profileCmd := &cobra.Command{
		Use:   "profile CODE",
		Short: "Print the press count of a code at every depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := batch.DoorMoves(args[0])
			if err != nil {
				return err
			}

			counts, err := chain.New(nil).Profile(moves, depth)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for d, n := range counts {
				if _, err := fmt.Fprintf(out, "depth %2d: %d\n", d, n); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(out, "growth: %.3f\n", chain.GrowthFactor(counts))
			return err
		},
	}

	profileCmd.Flags().IntVarP(&depth, "depth", "d", deepDepth, "Deepest chain to report")

	return profileCmd
}
