package cli

import (
	"github.com/spf13/cobra"

	"github.com/declanmills/cube/internal/cube"
	"github.com/declanmills/cube/internal/search"
)

// findCmd is a direct entry point into the generic search engine over
// explicit CubeSnapshot flags, for quick exploratory queries that don't
// warrant writing out a full Input document (see solveCmd for the
// document-driven form, which is the one the method drivers and scripted
// tests use).
var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Search for a move sequence between two explicit cube snapshots",
	Long: `Find runs the generic bidirectional search engine between a --start
CubeSnapshot (defaults to solved) and a --target CubeSnapshot (defaults to
solved), over the move classes enabled by --faces/--wide/--slices/--rotations.

Examples:
  cube find --start "..." --target "..." --faces UDFBLR --max-depth 9
  cube find --target "$(cat cross.snap)" --faces UD --max-depth 8 -n 3`,
	Run: func(cmd *cobra.Command, args []string) {
		startSnap, _ := cmd.Flags().GetString("start")
		targetSnap, _ := cmd.Flags().GetString("target")

		start := cube.Solved()
		if startSnap != "" {
			parsed, err := cube.ParseSnapshot(startSnap)
			if err != nil {
				printError(err)
				return
			}
			start = parsed
		}
		target := cube.Solved()
		if targetSnap != "" {
			parsed, err := cube.ParseSnapshot(targetSnap)
			if err != nil {
				printError(err)
				return
			}
			target = parsed
		}

		if _, ok := cube.ValidateBalance(start, target); !ok {
			printError(cube.ErrColorBalance)
			return
		}

		faces, _ := cmd.Flags().GetString("faces")
		wide, _ := cmd.Flags().GetString("wide")
		slices, _ := cmd.Flags().GetString("slices")
		rotations, _ := cmd.Flags().GetString("rotations")
		allowed := alphabetFromFlags(faces, wide, slices, rotations)
		if len(allowed) == 0 {
			printError(cube.ErrNoMovesSpecified)
			return
		}

		stop := startProfiling(flagString(cmd, "profile"))
		defer stop()

		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		numSolutions, _ := cmd.Flags().GetInt("n")
		verbose, _ := cmd.Flags().GetBool("verbose")
		cfg := search.Config{Log: newLogger(cmd.Flags()), Verbose: verbose}

		solutions := search.Search(start, target, allowed, maxDepth, numSolutions, cfg)
		if len(solutions) == 0 {
			printError(errSearchExhausted)
			return
		}
		printSolutions(solutions)
	},
}

func init() {
	findCmd.Flags().String("start", "", "start CubeSnapshot (54 tokens); defaults to solved")
	findCmd.Flags().String("target", "", "target CubeSnapshot (54 tokens); defaults to solved")
	findCmd.Flags().String("faces", "UDFBLR", "face letters to enable (e.g. UDFBLR)")
	findCmd.Flags().String("wide", "", "wide-move face letters to enable")
	findCmd.Flags().String("slices", "", "slice letters to enable (M, E, S)")
	findCmd.Flags().String("rotations", "", "rotation axis letters to enable (x, y, z)")
	findCmd.Flags().Int("max-depth", 9, "maximum search depth")
	findCmd.Flags().IntP("n", "n", 1, "maximum number of solutions to return")
	addSearchFlags(findCmd.Flags())
}
