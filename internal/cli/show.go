package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/declanmills/cube/internal/cube"
	"github.com/declanmills/cube/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [input-file]",
	Short: "Render a cube's Init state",
	Long: `Show parses an Input document's Init (or Scramble) section from a file
argument, or stdin if omitted, and prints it as a colored unfolded cross.
With no input at all it prints the solved cube.`,
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
		var c cube.Cube
		if doc == "" {
			c = cube.Solved()
		} else {
			c, err = parseStartOnly(doc)
			if err != nil {
				printError(err)
				return
			}
		}
		fmt.Print(render.Cube(c))
	},
}
