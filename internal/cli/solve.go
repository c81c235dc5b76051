package cli

import (
	"github.com/spf13/cobra"

	"github.com/declanmills/cube/internal/cube"
	"github.com/declanmills/cube/internal/input"
	"github.com/declanmills/cube/internal/method"
	"github.com/declanmills/cube/internal/search"
)

var algorithmDB = cube.NewAlgorithmDB()

var solveCmd = &cobra.Command{
	Use:   "solve [input-file]",
	Short: "Solve a cube read from an Input document",
	Long: `Solve reads an Input document (Init/Goal/Scramble sections) from a file
argument, or from stdin if the argument is omitted or "-", and searches for
a move sequence from the initial state to the goal.

By default it runs the generic bidirectional search over the move classes
enabled by --faces/--wide/--slices/--rotations. Pass --cfop or --roux to
run a method driver instead (in which case the move-class flags are
ignored, matching the fixed alphabets each stage already specifies).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		doc, err := readInputDoc(arg)
		if err != nil {
			printError(err)
			return
		}
		parsed, err := input.Parse(doc, algorithmDB)
		if err != nil {
			printError(err)
			return
		}
		if _, ok := cube.ValidateBalance(parsed.Init, parsed.Goal); !ok {
			printError(cube.ErrColorBalance)
			return
		}

		stop := startProfiling(flagString(cmd, "profile"))
		defer stop()

		log := newLogger(cmd.Flags())
		verbose, _ := cmd.Flags().GetBool("verbose")
		cfg := search.Config{Log: log, Verbose: verbose}

		useCFOP, _ := cmd.Flags().GetBool("cfop")
		useRoux, _ := cmd.Flags().GetBool("roux")

		if useCFOP || useRoux {
			var stages []method.Stage
			if useCFOP {
				stages = method.LayerByLayer(algorithmDB)
			} else {
				stages = method.Block()
			}
			ops, err := method.Drive(parsed.Init, stages, cfg)
			if err != nil {
				printError(err)
				return
			}
			printSolution(ops)
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

		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		numSolutions, _ := cmd.Flags().GetInt("n")

		solutions := search.Search(parsed.Init, parsed.Goal, allowed, maxDepth, numSolutions, cfg)
		if len(solutions) == 0 {
			printError(errSearchExhausted)
			return
		}
		printSolutions(solutions)
	},
}

func init() {
	solveCmd.Flags().String("faces", "UDFBLR", "face letters to enable in generic search (e.g. UDFBLR)")
	solveCmd.Flags().String("wide", "", "wide-move face letters to enable")
	solveCmd.Flags().String("slices", "", "slice letters to enable (M, E, S)")
	solveCmd.Flags().String("rotations", "", "rotation axis letters to enable (x, y, z)")
	solveCmd.Flags().Int("max-depth", 9, "maximum search depth")
	solveCmd.Flags().IntP("n", "n", 1, "maximum number of solutions to return")
	solveCmd.Flags().Bool("cfop", false, "solve with the CFOP method driver instead of generic search")
	solveCmd.Flags().Bool("roux", false, "solve with the Roux method driver instead of generic search")
	addSearchFlags(solveCmd.Flags())
}
