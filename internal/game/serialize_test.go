package game

import (
	"encoding/json"
	"testing"

	"sudokugame/internal/domain"
)

func TestRecordRoundTrip(t *testing.T) {
	g := New(testPuzzle())
	g.Select(0, 3)
	if err := g.ToggleNote(2); err != nil {
		t.Fatalf("ToggleNote: %v", err)
	}
	g.Select(0, 6)
	if err := g.SetValue(4); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	g.UpdateWrongMarks()

	rec := g.Record()
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back domain.SaveRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := FromRecord(&back)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}

	if restored.puzzle != g.puzzle || restored.solution != g.solution || restored.user != g.user {
		t.Fatal("grids did not survive the round trip")
	}
	if restored.notes != g.notes {
		t.Fatal("notes did not survive the round trip")
	}
	if restored.wrongMarks != g.wrongMarks {
		t.Fatal("wrong-marks did not survive the round trip")
	}
	if restored.Selection() != g.Selection() {
		t.Fatal("selection did not survive the round trip")
	}
	if restored.Difficulty() != g.Difficulty() {
		t.Fatal("difficulty did not survive the round trip")
	}
	if restored.Revealed() != g.Revealed() {
		t.Fatal("reveal flag did not survive the round trip")
	}
	if restored.CanUndo() {
		t.Fatal("undo history must never be persisted")
	}
	// conflicts are derived, so the restored projection must match too
	if restored.conflicts != g.conflicts {
		t.Fatal("conflict projection differs after restore")
	}
}

func TestFromRecordMissingGrids(t *testing.T) {
	sol := solvedGrid()
	user := domain.Grid{}
	cases := []struct {
		name string
		rec  *domain.SaveRecord
	}{
		{"nil record", nil},
		{"missing puzzle", &domain.SaveRecord{Solution: &sol, User: &user}},
		{"missing solution", &domain.SaveRecord{Puzzle: &sol, User: &user}},
		{"missing user", &domain.SaveRecord{Puzzle: &sol, Solution: &sol}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromRecord(tc.rec); err != ErrInvalidRecord {
				t.Fatalf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}
}

func TestFromRecordDefaultsAndClamping(t *testing.T) {
	sol := solvedGrid()
	puzzle := sol
	puzzle[0][0] = 0
	user := domain.Grid{}
	rec := &domain.SaveRecord{
		Puzzle:    &puzzle,
		Solution:  &sol,
		User:      &user,
		Selection: domain.CellCoord{Row: 14, Col: -2},
	}
	g, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if g.Selection() != (domain.CellCoord{Row: 8, Col: 0}) {
		t.Fatalf("selection not clamped: %v", g.Selection())
	}
	if g.Difficulty() != domain.Medium {
		t.Fatalf("missing difficulty should default to medium, got %v", g.Difficulty())
	}
	if g.Revealed() {
		t.Fatal("missing reveal flag should default to false")
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.HasWrongMark(r, c) {
				t.Fatal("missing wrong-marks should default to all false")
			}
			if g.CellNotes(r, c) != nil {
				t.Fatal("missing notes should default to empty")
			}
		}
	}
}

func TestFromRecordToleratesCorruptValues(t *testing.T) {
	sol := solvedGrid()
	puzzle := sol
	puzzle[0][0] = 0
	var user domain.Grid
	user[0][0] = 200
	rec := &domain.SaveRecord{Puzzle: &puzzle, Solution: &sol, User: &user}
	g, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if g.IsConflict(0, 0) {
		t.Fatal("a corrupt value must not register as a conflict")
	}
}

func TestNotesAcceptListAndMapForms(t *testing.T) {
	var fromList domain.NoteSet
	if err := json.Unmarshal([]byte(`[4,7]`), &fromList); err != nil {
		t.Fatalf("list form: %v", err)
	}
	var fromMap domain.NoteSet
	if err := json.Unmarshal([]byte(`{"4":true,"7":true,"9":false}`), &fromMap); err != nil {
		t.Fatalf("map form: %v", err)
	}
	if fromList != fromMap {
		t.Fatalf("forms should normalize identically: %v vs %v", fromList.Digits(), fromMap.Digits())
	}
	if got := fromList.Digits(); len(got) != 2 || got[0] != 4 || got[1] != 7 {
		t.Fatalf("unexpected digits: %v", got)
	}
}
