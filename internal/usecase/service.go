package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"sudokugame/internal/domain"
	"sudokugame/internal/game"
	"sudokugame/internal/ports"
)

// Service owns the single play session and wires the engine's collaborators.
// All commands run under one mutex: nothing may read or mutate the session
// while a generation pass is in flight.
type Service struct {
	Generator ports.Generator
	Hinter    ports.Hinter
	Storage   ports.Storage
	Archive   ports.Archive

	mu     sync.Mutex
	game   *game.Game
	puzzle *domain.Puzzle
	slot   string
}

func NewService(g ports.Generator, h ports.Hinter, st ports.Storage, ar ports.Archive, slot string) *Service {
	if slot == "" {
		slot = "autosave"
	}
	return &Service{Generator: g, Hinter: h, Storage: st, Archive: ar, slot: slot}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")
	ErrNoSession     = errors.New("no active game session")
	ErrNoArchive     = errors.New("no puzzle archive configured")
)

// autosave pushes the serialized session to storage after every
// state-changing command (write-through, no batching). Callers hold mu.
func (u *Service) autosave(ctx context.Context) error {
	if u.Storage == nil || u.game == nil {
		return nil
	}
	return u.Storage.Save(ctx, u.slot, u.game.Record())
}

// NewGame generates a solved grid, carves a puzzle at the difficulty, and
// replaces the session with a fresh one.
func (u *Service) NewGame(ctx context.Context, seed int64, d domain.Difficulty) (View, ports.Stats, error) {
	if u.Generator == nil {
		return View{}, ports.Stats{}, errNotConfigured
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := u.Generator.Generate(ctx, seed, d)
	if err != nil {
		return View{}, st, err
	}
	u.puzzle = p
	u.game = game.New(p)
	if err := u.autosave(ctx); err != nil {
		return View{}, st, err
	}
	return snapshot(u.game), st, nil
}

// NewGameFromArchive starts a session from a remotely published puzzle.
func (u *Service) NewGameFromArchive(ctx context.Context, id string) (View, error) {
	if u.Archive == nil {
		return View{}, ErrNoArchive
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	p, err := u.Archive.Fetch(ctx, id)
	if err != nil {
		return View{}, err
	}
	u.puzzle = p
	u.game = game.New(p)
	if err := u.autosave(ctx); err != nil {
		return View{}, err
	}
	return snapshot(u.game), nil
}

// Publish pushes the session's puzzle to the archive and returns its ID.
func (u *Service) Publish(ctx context.Context) (string, error) {
	if u.Archive == nil {
		return "", ErrNoArchive
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.puzzle == nil {
		return "", ErrNoSession
	}
	return u.Archive.Publish(ctx, u.puzzle)
}

// LoadSlot restores a session from a persisted save record.
func (u *Service) LoadSlot(ctx context.Context, id string) (View, error) {
	if u.Storage == nil {
		return View{}, errNotConfigured
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	rec, err := u.Storage.Load(ctx, id)
	if err != nil {
		return View{}, err
	}
	g, err := game.FromRecord(rec)
	if err != nil {
		return View{}, err
	}
	u.game = g
	u.puzzle = nil
	return snapshot(u.game), nil
}

// SaveSlot writes the session to a named slot in addition to the autosave.
func (u *Service) SaveSlot(ctx context.Context, id string) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.game == nil {
		return ErrNoSession
	}
	return u.Storage.Save(ctx, id, u.game.Record())
}

// ListSlots lists the persisted save slots.
func (u *Service) ListSlots(ctx context.Context) ([]domain.SaveMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

// mutate runs op under the session lock and autosaves on success.
func (u *Service) mutate(ctx context.Context, op func(*game.Game) error) (View, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.game == nil {
		return View{}, ErrNoSession
	}
	if err := op(u.game); err != nil {
		return View{}, err
	}
	if err := u.autosave(ctx); err != nil {
		return View{}, err
	}
	return snapshot(u.game), nil
}

func (u *Service) Select(ctx context.Context, row, col int) (View, error) {
	return u.mutate(ctx, func(g *game.Game) error {
		g.Select(row, col)
		return nil
	})
}

func (u *Service) SetValue(ctx context.Context, v uint8) (View, error) {
	return u.mutate(ctx, func(g *game.Game) error { return g.SetValue(v) })
}

func (u *Service) ToggleNote(ctx context.Context, d uint8) (View, error) {
	return u.mutate(ctx, func(g *game.Game) error { return g.ToggleNote(d) })
}

func (u *Service) Undo(ctx context.Context) (View, error) {
	return u.mutate(ctx, func(g *game.Game) error { return g.Undo() })
}

func (u *Service) ToggleReveal(ctx context.Context) (View, error) {
	return u.mutate(ctx, func(g *game.Game) error {
		g.ToggleReveal()
		return nil
	})
}

// Check marks every wrong entry and reports whether any was found.
func (u *Service) Check(ctx context.Context) (bool, View, error) {
	var found bool
	v, err := u.mutate(ctx, func(g *game.Game) error {
		found = g.UpdateWrongMarks()
		return nil
	})
	return found, v, err
}

// Hint suggests the next forced placement over the working grid.
func (u *Service) Hint(ctx context.Context) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.game == nil {
		return domain.Hint{}, false, ErrNoSession
	}
	working := u.game.WorkingGrid()
	return u.Hinter.Hint(ctx, &working)
}

// State returns the read-only projection of the current session.
func (u *Service) State() (View, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.game == nil {
		return View{}, ErrNoSession
	}
	return snapshot(u.game), nil
}
