package generator

import "sudokugame/internal/ports"

// UniqueGenerator creates puzzles with a unique solution using a provided
// Solver for the uniqueness checks during carving.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
