package solver

import (
	"context"
	"time"

	"sudokugame/internal/domain"
	"sudokugame/internal/ports"
)

// CountSolutions counts distinct completions of g, exploring no further
// once the running count reaches limit. Pre-filled cells are skipped, not
// overwritten. The search works on a private copy and every provisional
// placement is undone before returning, including on the early-exit path,
// so the caller's grid is never disturbed.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	grid := [9][9]uint8(*g)
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				done := dfs()
				grid[r][c] = 0
				if done {
					return true
				}
			}
		}
		return false
	}
	_ = dfs()
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}
