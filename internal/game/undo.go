package game

import "sudokugame/internal/domain"

// undoEntry is a two-variant tagged union; restoration logic type-switches
// over it so both kinds are handled explicitly.
type undoEntry interface {
	cell() domain.CellCoord
}

// valueChange records a cell's prior concrete value and prior note set
// before an overwrite or clear.
type valueChange struct {
	at        domain.CellCoord
	prevValue uint8
	prevNotes domain.NoteSet
}

// notesChange records the prior note set before a single digit was toggled.
type notesChange struct {
	at        domain.CellCoord
	prevNotes domain.NoteSet
}

func (e valueChange) cell() domain.CellCoord { return e.at }
func (e notesChange) cell() domain.CellCoord { return e.at }
