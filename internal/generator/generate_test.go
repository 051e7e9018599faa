package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"sudokugame/internal/domain"
	"sudokugame/internal/solver"
)

func validUnit(vals [9]uint8) bool {
	var seen [10]bool
	for _, v := range vals {
		if v < 1 || v > 9 || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func assertSolvedGrid(t *testing.T, g *domain.Grid) {
	t.Helper()
	for r := 0; r < 9; r++ {
		if !validUnit(g[r]) {
			t.Fatalf("row %d is not a permutation of 1-9: %v", r, g[r])
		}
	}
	for c := 0; c < 9; c++ {
		var col [9]uint8
		for r := 0; r < 9; r++ {
			col[r] = g[r][c]
		}
		if !validUnit(col) {
			t.Fatalf("column %d is not a permutation of 1-9: %v", c, col)
		}
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var box [9]uint8
			i := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					box[i] = g[br*3+dr][bc*3+dc]
					i++
				}
			}
			if !validUnit(box) {
				t.Fatalf("box (%d,%d) is not a permutation of 1-9: %v", br, bc, box)
			}
		}
	}
}

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			seed := int64(12345)
			p, st, err := g.Generate(ctx, seed, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			assertSolvedGrid(t, &p.Solution)

			if p.Removed > tc.diff.Removals() {
				t.Fatalf("removed %d exceeds target %d", p.Removed, tc.diff.Removals())
			}
			if got := 81 - p.Givens.Filled(); got != p.Removed {
				t.Fatalf("removed count %d does not match open cells %d", p.Removed, got)
			}

			// every given must agree with the solution
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if v := p.Givens[r][c]; v != 0 && v != p.Solution[r][c] {
						t.Fatalf("given (%d,%d)=%d disagrees with solution %d", r, c, v, p.Solution[r][c])
					}
				}
			}

			// the carved puzzle must still have exactly one completion
			probe := p.Givens
			n, _, err := s.CountSolutions(ctx, &probe, 2)
			if err != nil {
				t.Fatalf("CountSolutions failed: %v", err)
			}
			if n != 1 {
				t.Fatalf("puzzle for %s is not unique: %d solutions", tc.name, n)
			}
			t.Logf("%s: removed=%d nodes=%d dur=%v", tc.name, p.Removed, st.Nodes, st.Duration)
		})
	}
}

func TestGenerateSeedDeterminism(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 7, domain.Easy)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, _, err := g.Generate(ctx, 7, domain.Easy)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a.Solution != b.Solution || a.Givens != b.Givens {
		t.Fatal("same seed should produce the same puzzle")
	}
}

func TestFillRandomProducesValidGrid(t *testing.T) {
	ctx := context.Background()
	var g domain.Grid
	rng := rand.New(rand.NewSource(42))
	if !fillRandom(ctx, rng, &g) {
		t.Fatal("fillRandom failed on an empty grid")
	}
	assertSolvedGrid(t, &g)
}
