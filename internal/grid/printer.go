package grid

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Print renders the grid to stdout as a boxed N x N table with a major
// divider every R rows / C columns (one per region boundary), generalizing
// the teacher's fixed 3x3-box 9x9 printer to an arbitrary region shape.
func (g *Grid) Print() {
	top, minor, major, bottom := g.borders()

	color.HiWhite(top)
	for r := 0; r < g.N; r++ {
		if r != 0 {
			if r%g.R == 0 {
				color.HiWhite(major)
			} else {
				color.HiWhite(minor)
			}
		}
		g.printRow(r)
	}
	color.HiWhite(bottom)
}

// borders builds the box-drawing border lines for a grid whose regions are
// C cells wide and R cells tall; a major divider falls every C columns
// horizontally and every R rows vertically.
func (g *Grid) borders() (top, minor, major, bottom string) {
	joinMajor := func(corner, majorJoin string) string {
		group := strings.Repeat("───"+corner, g.C-1) + "───"
		groups := make([]string, g.R)
		for i := range groups {
			groups[i] = group
		}
		return strings.Join(groups, majorJoin)
	}

	top = "┌" + joinMajor("┬", "╥") + "┐"
	bottom = "└" + joinMajor("┴", "╨") + "┘"
	minor = "├" + joinMajor("┼", "╫") + "┤"
	major = "╞" + joinMajor("╪", "╬") + "╡"
	return
}

func (g *Grid) printRow(r int) {
	var sb strings.Builder
	for c := 0; c < g.N; c++ {
		if c%g.C == 0 {
			if c == 0 {
				sb.WriteString("│")
			} else {
				sb.WriteString("║")
			}
		} else {
			sb.WriteString("│")
		}

		cell := g.cells[r][c]
		if cell.isSet {
			sb.WriteString(color.HiWhiteString(" %s ", g.valueString(cell.value)))
		} else {
			sb.WriteString(color.HiBlackString(" · "))
		}
	}
	sb.WriteString("│")
	fmt.Println(sb.String())
}

func (g *Grid) valueString(v int) string {
	if v < 10 {
		return string(rune('0' + v))
	}
	return string(rune('A' + v - 10))
}
