package ports

import (
	"context"
	"time"

	"sudokugame/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a grid and counts completions up to a cap.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
	// CountSolutions counts distinct completions of g, stopping as soon as
	// the running count reaches limit. The input grid is left unchanged.
	CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, Stats, error)
}

// Generator produces a carved puzzle with a unique solution.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Hinter suggests the next forced placement on a working grid.
type Hinter interface {
	Hint(ctx context.Context, working *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves game save records as JSON.
type Storage interface {
	Save(ctx context.Context, id string, rec *domain.SaveRecord) error
	Load(ctx context.Context, id string) (*domain.SaveRecord, error)
	List(ctx context.Context) ([]domain.SaveMeta, error)
}

// Archive publishes carved puzzles to a remote collection and fetches
// them back by ID.
type Archive interface {
	Publish(ctx context.Context, p *domain.Puzzle) (string, error)
	Fetch(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context, difficulty string, page, perPage int) ([]domain.SaveMeta, error)
}
