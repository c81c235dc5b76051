package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/declanmills/cube/internal/cube"
)

// optimizeCmd exposes Ops.Shorten (and, with --expand, Ops.Expand first)
// directly, so the cancellation rules in spec.md §4.2 can be exercised
// and inspected without going through the search engine.
var optimizeCmd = &cobra.Command{
	Use:   "optimize <moves>",
	Short: "Shorten a move sequence by cancelling inverse pairs and triple-repeats",
	Long: `Optimize parses a MoveSequence and applies shorten (collapse a run of
three identical primitives into its inverse, then cancel a trailing
move/inverse pair, repeating until stable). Pass --expand to materialize
named composites into primitives first.

Examples:
  cube optimize "R R"        # R R (nothing cancels)
  cube optimize "R R'"       # (empty)
  cube optimize "R R R"      # R'
  cube optimize "(Sexy) (Sexy)'" --expand`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expand, _ := cmd.Flags().GetBool("expand")

		parsed, err := cube.ParseMoves(args[0], algorithmDB)
		if err != nil {
			return err
		}
		before := parsed.Weight()

		if expand {
			parsed = parsed.Expand()
		}
		optimized := parsed.Shorten()

		fmt.Printf("Original:  %s (%d moves)\n", args[0], before)
		if optimized.Len() == 0 {
			fmt.Println("Optimized: (empty - all moves cancel out)")
		} else {
			fmt.Printf("Optimized: %s (%d moves)\n", optimized.String(), optimized.Weight())
		}
		if saved := before - optimized.Weight(); saved > 0 {
			fmt.Printf("Saved %d move(s)\n", saved)
		}
		return nil
	},
}

func init() {
	optimizeCmd.Flags().Bool("expand", false, "expand named composites into primitives before shortening")
}
