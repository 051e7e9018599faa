package game

import (
	"sudokugame/internal/domain"
	"sudokugame/internal/validator"
)

// Game owns the mutable state of a single play session: the carved puzzle,
// its solution, the player's entries and pencil notes, derived conflict and
// wrong-mark grids, the selection cursor, and the undo log.
//
// Cells where the puzzle grid is nonzero are givens and are never written
// by mutation operations. Conflicts are a cached projection, recomputed
// after every value-affecting change; callers never set them directly.
type Game struct {
	puzzle     domain.Grid
	solution   domain.Grid
	user       domain.Grid
	notes      [9][9]domain.NoteSet
	conflicts  [9][9]bool
	wrongMarks [9][9]bool
	sel        domain.CellCoord
	difficulty domain.Difficulty
	revealed   bool
	undo       []undoEntry
}

// New starts a fresh session from a carved puzzle. The selection is reset
// to the top-left cell and the undo log starts empty.
func New(p *domain.Puzzle) *Game {
	g := &Game{
		puzzle:     p.Givens,
		solution:   p.Solution,
		difficulty: p.Difficulty,
	}
	g.recalcConflicts()
	return g
}

// Select moves the cursor, clamping it into the 9x9 range.
func (g *Game) Select(row, col int) {
	g.sel = domain.CellCoord{Row: row, Col: col}.Clamp()
}

func (g *Game) Selection() domain.CellCoord { return g.sel }

// SetValue writes digit v (0 clears) into the selected cell.
//
// Setting a cell to the value it already holds reports success without
// touching the undo log. Explicitly clearing a cell that has neither a
// value nor notes fails with ErrAlreadyEmpty instead: callers distinguish
// "nothing changed, that's fine" from "nothing changed, that's wrong" by
// whether a clear was requested on an empty cell.
func (g *Game) SetValue(v uint8) error {
	if g.revealed {
		return ErrRevealActive
	}
	if v > 9 {
		return ErrInvalidDigit
	}
	r, c := g.sel.Row, g.sel.Col
	if g.puzzle[r][c] != 0 {
		return ErrGivenCell
	}
	prevValue := g.user[r][c]
	prevNotes := g.notes[r][c]
	if v == prevValue && prevNotes.Empty() {
		if v == 0 {
			return ErrAlreadyEmpty
		}
		return nil
	}
	g.undo = append(g.undo, valueChange{at: g.sel, prevValue: prevValue, prevNotes: prevNotes})
	g.user[r][c] = v
	g.notes[r][c] = 0
	g.wrongMarks[r][c] = false
	g.recalcConflicts()
	return nil
}

// ToggleNote flips membership of digit d in the selected cell's note set.
// Notes and concrete values are mutually exclusive per cell.
func (g *Game) ToggleNote(d uint8) error {
	if g.revealed {
		return ErrRevealActive
	}
	if d < 1 || d > 9 {
		return ErrInvalidDigit
	}
	r, c := g.sel.Row, g.sel.Col
	if g.puzzle[r][c] != 0 {
		return ErrGivenCell
	}
	if g.user[r][c] != 0 {
		return ErrCellHasValue
	}
	prev := g.notes[r][c]
	next := prev.Toggle(d)
	if next == prev {
		return nil
	}
	g.undo = append(g.undo, notesChange{at: g.sel, prevNotes: prev})
	g.notes[r][c] = next
	return nil
}

// Undo pops the most recent entry and restores the recorded prior state,
// moving the selection to the affected cell. Conflicts are recomputed only
// for value changes; notes never affect conflicts.
func (g *Game) Undo() error {
	if g.revealed {
		return ErrRevealActive
	}
	if len(g.undo) == 0 {
		return ErrNothingToUndo
	}
	entry := g.undo[len(g.undo)-1]
	g.undo = g.undo[:len(g.undo)-1]
	at := entry.cell()
	switch e := entry.(type) {
	case valueChange:
		g.user[at.Row][at.Col] = e.prevValue
		g.notes[at.Row][at.Col] = e.prevNotes
		g.wrongMarks[at.Row][at.Col] = false
		g.sel = at
		g.recalcConflicts()
	case notesChange:
		g.notes[at.Row][at.Col] = e.prevNotes
		g.sel = at
	}
	return nil
}

// ToggleReveal flips the solution overlay. Only the display projection is
// affected; puzzle, user entries and notes stay untouched, and the toggle
// itself is never recorded in the undo log.
func (g *Game) ToggleReveal() bool {
	g.revealed = !g.revealed
	return g.revealed
}

// UpdateWrongMarks rebuilds the wrong-mark grid, flagging every cell whose
// user entry disagrees with the solution, and reports whether any mismatch
// was found. This is a one-shot check invoked by the collaborator, not
// continuously maintained state.
func (g *Game) UpdateWrongMarks() bool {
	found := false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			wrong := g.user[r][c] != 0 && g.user[r][c] != g.solution[r][c]
			g.wrongMarks[r][c] = wrong
			if wrong {
				found = true
			}
		}
	}
	return found
}

// IsSolved reports whether every working value matches the solution with no
// conflicts remaining. It is always false while the solution is revealed.
func (g *Game) IsSolved() bool {
	if g.revealed {
		return false
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.WorkingValue(r, c) != g.solution[r][c] {
				return false
			}
			if g.conflicts[r][c] {
				return false
			}
		}
	}
	return true
}

// WorkingValue is the given if present, otherwise the player's entry.
func (g *Game) WorkingValue(row, col int) uint8 {
	if g.puzzle[row][col] != 0 {
		return g.puzzle[row][col]
	}
	return g.user[row][col]
}

func (g *Game) IsGiven(row, col int) bool { return g.puzzle[row][col] != 0 }

// DisplayValue is what the rendering collaborator should show: the solution
// while revealed, otherwise the working value (0 when empty).
func (g *Game) DisplayValue(row, col int) uint8 {
	if g.revealed {
		return g.solution[row][col]
	}
	return g.WorkingValue(row, col)
}

func (g *Game) IsConflict(row, col int) bool { return g.conflicts[row][col] }

// CellNotes returns the marked digits of a cell in ascending order, nil
// when none are marked.
func (g *Game) CellNotes(row, col int) []uint8 { return g.notes[row][col].Digits() }

func (g *Game) HasWrongMark(row, col int) bool { return g.wrongMarks[row][col] }

// RemainingCells counts cells whose working value is still empty.
func (g *Game) RemainingCells() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.WorkingValue(r, c) == 0 {
				n++
			}
		}
	}
	return n
}

func (g *Game) CanUndo() bool { return len(g.undo) > 0 }

func (g *Game) Revealed() bool { return g.revealed }

func (g *Game) Difficulty() domain.Difficulty { return g.difficulty }

// WorkingGrid snapshots the working values (given else user entry).
func (g *Game) WorkingGrid() domain.Grid {
	var w domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			w[r][c] = g.WorkingValue(r, c)
		}
	}
	return w
}

func (g *Game) recalcConflicts() {
	working := g.WorkingGrid()
	g.conflicts = validator.ConflictGrid(&working)
}
