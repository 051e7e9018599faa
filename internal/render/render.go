package render

import (
	"fmt"
	"strings"

	"sudokugame/internal/domain"
)

// Grid renders a 9x9 grid with box-drawing borders for terminal output.
// Empty cells print as dots.
func Grid(g *domain.Grid) string {
	seg := strings.Repeat("─", 7)
	top := "┌" + seg + "┬" + seg + "┬" + seg + "┐\n"
	mid := "├" + seg + "┼" + seg + "┼" + seg + "┤\n"
	bottom := "└" + seg + "┴" + seg + "┴" + seg + "┘\n"

	var b strings.Builder
	b.WriteString(top)
	for r := 0; r < 9; r++ {
		b.WriteString("│ ")
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				b.WriteString("· ")
			} else {
				fmt.Fprintf(&b, "%d ", g[r][c])
			}
			if c%3 == 2 && c < 8 {
				b.WriteString("│ ")
			}
		}
		b.WriteString("│\n")
		if r%3 == 2 && r < 8 {
			b.WriteString(mid)
		}
	}
	b.WriteString(bottom)
	return b.String()
}
