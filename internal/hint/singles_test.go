package hint

import (
	"context"
	"testing"

	"sudokugame/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	// a full row missing exactly one digit is a naked single
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	h, ok, err := NewSingles().Hint(context.Background(), &g)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if !ok {
		t.Fatal("expected a hint")
	}
	if h.Cell != (domain.CellCoord{Row: 0, Col: 8}) || h.Value != 9 {
		t.Fatalf("unexpected hint: %+v", h)
	}
}

func TestHintNoneOnEmptyGrid(t *testing.T) {
	var g domain.Grid
	_, ok, err := NewSingles().Hint(context.Background(), &g)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if ok {
		t.Fatal("an empty grid has no forced placement")
	}
}
