package usecase

import (
	"sudokugame/internal/domain"
	"sudokugame/internal/game"
)

// View is the read-only projection a rendering collaborator consumes after
// every command. Display already folds in the reveal overlay.
type View struct {
	Display    [9][9]uint8      `json:"display"`
	Givens     [9][9]bool       `json:"givens"`
	Notes      [9][9][]uint8    `json:"notes"`
	Conflicts  [9][9]bool       `json:"conflicts"`
	WrongMarks [9][9]bool       `json:"wrongMarks"`
	Selection  domain.CellCoord `json:"selection"`
	Difficulty string           `json:"difficulty"`
	Revealed   bool             `json:"revealed"`
	Remaining  int              `json:"remaining"`
	CanUndo    bool             `json:"canUndo"`
	Solved     bool             `json:"solved"`
}

func snapshot(g *game.Game) View {
	v := View{
		Selection:  g.Selection(),
		Difficulty: g.Difficulty().String(),
		Revealed:   g.Revealed(),
		Remaining:  g.RemainingCells(),
		CanUndo:    g.CanUndo(),
		Solved:     g.IsSolved(),
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v.Display[r][c] = g.DisplayValue(r, c)
			v.Givens[r][c] = g.IsGiven(r, c)
			v.Notes[r][c] = g.CellNotes(r, c)
			v.Conflicts[r][c] = g.IsConflict(r, c)
			v.WrongMarks[r][c] = g.HasWrongMark(r, c)
		}
	}
	return v
}
