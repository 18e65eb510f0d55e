package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubelab/cubesim"
)

// Sticker styles keyed by color rune.
var stickerStyles = map[byte]lipgloss.Style{
	'r': lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0")),
	'g': lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("0")),
	'b': lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("15")),
	'y': lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	'o': lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	'w': lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
}

var renderErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196"))

// sticker renders one facelet as a colored two-column cell.
func sticker(c cubesim.Color) string {
	style, ok := stickerStyles[c.Rune()]
	if !ok {
		return "??"
	}
	return style.Render(" " + c.String() + " ")
}

// faceRow renders one row of three facelets from a face.
func faceRow(c *cubesim.Cube, face cubesim.CubeFace, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(sticker(c.Facelets[face][row*3+col]))
	}
	return b.String()
}

// RenderCube renders the cube as an unfolded net with colored stickers:
//
//	      U
//	L  F  R  B
//	      D
func RenderCube(c *cubesim.Cube) string {
	var b strings.Builder
	pad := strings.Repeat(" ", 10)

	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(faceRow(c, cubesim.CubeFaceU, row))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	middle := []cubesim.CubeFace{cubesim.CubeFaceL, cubesim.CubeFaceF, cubesim.CubeFaceR, cubesim.CubeFaceB}
	for row := 0; row < 3; row++ {
		for i, face := range middle {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(faceRow(c, face, row))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(faceRow(c, cubesim.CubeFaceD, row))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderState renders a serialized cube state string. A malformed state
// produces a visible placeholder instead of a panic.
func RenderState(state string) string {
	c, err := cubesim.Deserialize(state)
	if err != nil {
		return renderErrorStyle.Render(fmt.Sprintf("(invalid cube state: %v)", err)) + "\n"
	}
	return RenderCube(c)
}
