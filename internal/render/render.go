// Package render prints a Cube as a colored unfolded cross in the
// terminal, using one lipgloss.Style per Color. This replaces the
// teacher's raw-ANSI-escape ColoredString/UnicodeString approach with the
// pack's lipgloss idiom (see SeamusWaldron/gocube_ble_library).
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/declanmills/cube/internal/cube"
)

// swatches maps each concrete Color (plus Other/Wildcard) to the
// lipgloss style used to render one facelet. Foreground is always black
// or white for legibility against the background swatch.
var swatches = map[cube.Color]lipgloss.Style{
	cube.White:    lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cube.Yellow:   lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	cube.Red:      lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0")),
	cube.Orange:   lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	cube.Blue:     lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	cube.Green:    lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
	cube.Other:    lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("255")),
	cube.Wildcard: lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("255")),
}

// Sticker renders a single facelet as a styled two-character block. Used
// directly by callers that want to build a custom layout (e.g. CLI
// highlight modes).
func Sticker(c cube.Color) string {
	style, ok := swatches[c]
	if !ok {
		return string(c.Letter()) + " "
	}
	return style.Render(string(c.Letter()) + " ")
}

// Cube renders c as an unfolded cross: Up on top, Front|Right|Back|Left
// across the middle band, Down on the bottom - matching Cube.String's
// layout but with colored stickers instead of letters.
func Cube(c cube.Cube) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 6)

	writeFace := func(f cube.Face) {
		for r := 0; r < 3; r++ {
			b.WriteString(indent)
			for col := 0; col < 3; col++ {
				b.WriteString(Sticker(f.At(r, col)))
			}
			b.WriteByte('\n')
		}
	}

	writeFace(c.Up)
	for r := 0; r < 3; r++ {
		for _, f := range []cube.Face{c.Front, c.Right, c.Back, c.Left} {
			for col := 0; col < 3; col++ {
				b.WriteString(Sticker(f.At(r, col)))
			}
		}
		b.WriteByte('\n')
	}
	writeFace(c.Down)
	return b.String()
}
