package storage

import (
	"context"
	"testing"

	"sudokugame/internal/domain"
)

func TestFSRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	var puzzle, solution, user domain.Grid
	solution[0][0] = 5
	user[1][1] = 3
	rec := &domain.SaveRecord{
		Puzzle:     &puzzle,
		Solution:   &solution,
		User:       &user,
		Selection:  domain.CellCoord{Row: 1, Col: 1},
		Difficulty: "hard",
	}
	if err := s.Save(ctx, "slot1", rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := s.Load(ctx, "slot1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.User == nil || back.User[1][1] != 3 {
		t.Fatal("user grid not restored")
	}
	if back.Difficulty != "hard" {
		t.Fatalf("difficulty not restored: %q", back.Difficulty)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "slot1" || metas[0].Difficulty != "hard" {
		t.Fatalf("unexpected listing: %+v", metas)
	}
}

func TestFSLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); err == nil {
		t.Fatal("expected an error for a missing slot")
	}
}
