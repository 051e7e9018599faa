package hint

import (
	"context"
	"fmt"

	"sudokugame/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles over the
// working grid (givens plus player entries).
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first empty cell with exactly one legal candidate.
func (h *Singles) Hint(ctx context.Context, working *domain.Grid) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if working[r][c] != 0 {
				continue
			}
			v, ok := soleCandidate(working, r, c)
			if ok {
				return domain.Hint{
					Cell:    domain.CellCoord{Row: r, Col: c},
					Value:   v,
					Message: fmt.Sprintf("Single: only %d fits here", v),
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(g *domain.Grid, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if allowed(g, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}

func allowed(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
