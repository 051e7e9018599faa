package validator

import "sudokugame/internal/domain"

// ConflictGrid recomputes which cells of the working grid violate the
// row/column/box uniqueness constraint. Within each of the 27 units, every
// position of a value occurring two or more times is marked; a cell marked
// by any unit stays marked (boolean OR across units). Empty cells never
// conflict.
func ConflictGrid(working *domain.Grid) [9][9]bool {
	var marks [9][9]bool
	var unit [9]domain.CellCoord

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			unit[c] = domain.CellCoord{Row: r, Col: c}
		}
		markDuplicates(working, unit, &marks)
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			unit[r] = domain.CellCoord{Row: r, Col: c}
		}
		markDuplicates(working, unit, &marks)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			i := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					unit[i] = domain.CellCoord{Row: br*3 + dr, Col: bc*3 + dc}
					i++
				}
			}
			markDuplicates(working, unit, &marks)
		}
	}
	return marks
}

// Conflicts returns the conflicting cells of the working grid as a list,
// row-major.
func Conflicts(working *domain.Grid) []domain.CellCoord {
	marks := ConflictGrid(working)
	var out []domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if marks[r][c] {
				out = append(out, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

func markDuplicates(g *domain.Grid, unit [9]domain.CellCoord, marks *[9][9]bool) {
	var byValue [10][]domain.CellCoord
	for _, cell := range unit {
		v := g[cell.Row][cell.Col]
		// out-of-range values can only come from a corrupted record; they
		// never participate in conflicts
		if v < 1 || v > 9 {
			continue
		}
		byValue[v] = append(byValue[v], cell)
	}
	for v := 1; v <= 9; v++ {
		if len(byValue[v]) < 2 {
			continue
		}
		for _, cell := range byValue[v] {
			marks[cell.Row][cell.Col] = true
		}
	}
}
