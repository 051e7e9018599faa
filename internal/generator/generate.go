package generator

import (
	"context"
	"math/rand"
	"time"

	"sudokugame/internal/domain"
	"sudokugame/internal/ports"
)

// Generate produces a fully solved grid and carves a puzzle from it.
// Carving walks all 81 coordinates in random order; a removal is kept only
// when the solver confirms exactly one completion remains, and stops once
// the difficulty's removal target is met or the coordinates run out. Harder
// targets may fall short: uniqueness is never traded for the quota.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var solution domain.Grid
	if !fillRandom(ctx, rng, &solution) {
		return nil, ports.Stats{Duration: time.Since(start)}, context.Canceled
	}

	puzzle := solution
	positions := rng.Perm(81)
	target := diff.Removals()
	removed := 0
	nodes := 0

	for _, pos := range positions {
		if removed >= target {
			break
		}
		r, c := pos/9, pos%9
		if puzzle[r][c] == 0 {
			continue
		}
		old := puzzle[r][c]
		puzzle[r][c] = 0
		// Count on a fresh copy, never on the authoritative grids.
		probe := puzzle
		n, st, err := g.Solver.CountSolutions(ctx, &probe, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n == 1 {
			removed++
		} else {
			puzzle[r][c] = old
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Givens:     puzzle,
		Solution:   solution,
		Removed:    removed,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution, trying the
// digits of every cell in a freshly shuffled order so repeated runs do not
// reproduce the same few grids.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *domain.Grid) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(int, int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors the row/col/box checks locally for the generator.
func allowed(b *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
