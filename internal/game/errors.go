package game

import "errors"

// Every failure is locally recoverable: the caller gets a reason and the
// game state is left exactly as it was.
var (
	ErrRevealActive  = errors.New("solution reveal is active")
	ErrInvalidDigit  = errors.New("digit must be between 0 and 9")
	ErrGivenCell     = errors.New("cell is a fixed given")
	ErrCellHasValue  = errors.New("cell already holds a value")
	ErrAlreadyEmpty  = errors.New("cell is already empty")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrInvalidRecord = errors.New("save record is missing required grids")
)
