package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/declanmills/cube/internal/cube"
	"github.com/declanmills/cube/internal/render"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves> [input-file]",
	Short: "Apply a move sequence to a cube and display the result",
	Long: `Twist applies a MoveSequence to a starting cube (the Init section of an
Input document given as the second argument, or stdin, or the solved cube
if neither is given) and prints the resulting state. It does not solve
anything; it is for exploring algorithms and patterns.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]

		start := cube.Solved()
		arg := ""
		if len(args) == 2 {
			arg = args[1]
		}
		doc, err := readInputDoc(arg)
		if err != nil {
			printError(err)
			return
		}
		if doc != "" {
			parsed, err := parseStartOnly(doc)
			if err != nil {
				printError(err)
				return
			}
			start = parsed
		}

		ops, err := cube.ParseMoves(moves, algorithmDB)
		if err != nil {
			printError(err)
			return
		}

		final := ops.Apply(start)
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			fmt.Print(render.Cube(final))
			fmt.Printf("solved: %v\n", final == cube.Solved())
		}
		printResult(result{OK: true, Solution: &solution{Algorithm: ops.String(), Length: ops.Weight()}})
	},
}

func init() {
	twistCmd.Flags().BoolP("quiet", "q", false, "suppress the terminal render, only print JSON")
}
