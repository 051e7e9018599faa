package game

import "sudokugame/internal/domain"

// Record converts the session into its persistable form. All grids are
// copied; the undo log is deliberately not part of the record.
func (g *Game) Record() *domain.SaveRecord {
	puzzle := g.puzzle
	solution := g.solution
	user := g.user
	notes := g.notes
	wrong := g.wrongMarks
	return &domain.SaveRecord{
		Puzzle:     &puzzle,
		Solution:   &solution,
		User:       &user,
		Notes:      &notes,
		WrongMarks: &wrong,
		Selection:  g.sel,
		Difficulty: g.difficulty.String(),
		Revealed:   g.revealed,
	}
}

// FromRecord restores a session from a persisted record. Only the three
// grids are required; notes and wrong-marks default to empty, a missing
// difficulty becomes medium, and out-of-range selection coordinates are
// clamped. Undo history is never persisted, so the restored session starts
// with an empty log.
func FromRecord(rec *domain.SaveRecord) (*Game, error) {
	if rec == nil || rec.Puzzle == nil || rec.Solution == nil || rec.User == nil {
		return nil, ErrInvalidRecord
	}
	g := &Game{
		puzzle:     *rec.Puzzle,
		solution:   *rec.Solution,
		user:       *rec.User,
		sel:        rec.Selection.Clamp(),
		difficulty: domain.ParseDifficulty(rec.Difficulty),
		revealed:   rec.Revealed,
	}
	if rec.Notes != nil {
		g.notes = *rec.Notes
	}
	if rec.WrongMarks != nil {
		g.wrongMarks = *rec.WrongMarks
	}
	g.recalcConflicts()
	return g, nil
}
