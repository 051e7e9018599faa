package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sudokugame/internal/generator"
	"sudokugame/internal/hint"
	"sudokugame/internal/infrastructure/storage"
	"sudokugame/internal/solver"
	"sudokugame/internal/usecase"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := solver.NewBacktrackingSolver()
	uc := usecase.NewService(
		generator.NewUniqueGenerator(s),
		hint.NewSingles(),
		storage.NewFS(t.TempDir()),
		nil,
		"autosave",
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewGameAcceptsEmptyBody(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/new", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/new: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("empty body should use defaults, got status %d", resp.StatusCode)
	}
	var out newResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.View == nil || out.Seed == 0 {
		t.Fatalf("expected a view and a picked seed: %+v", out)
	}
}

func TestValueRejectsOutOfRangeDigit(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/new", "application/json",
		strings.NewReader(`{"difficulty":"easy","seed":11}`))
	if err != nil {
		t.Fatalf("POST /api/new: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("new game failed: status %d", resp.StatusCode)
	}

	resp, err = http.Post(srv.URL+"/api/value", "application/json",
		strings.NewReader(`{"digit":200}`))
	if err != nil {
		t.Fatalf("POST /api/value: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("out-of-range digit should be a 400, got %d", resp.StatusCode)
	}
	var out stateResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Error == "" {
		t.Fatal("error body should name the rejection")
	}

	// the session must still be usable afterwards
	resp, err = http.Get(srv.URL + "/api/state")
	if err != nil {
		t.Fatalf("GET /api/state: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("state after rejection: status %d", resp.StatusCode)
	}
}
