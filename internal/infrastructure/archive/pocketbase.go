package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/habibrosyad/pocketbase-go-sdk"

	"sudokugame/internal/domain"
)

// PocketBase publishes carved puzzles to a remote PocketBase collection and
// fetches them back by ID. Credentials come from the environment (see cmd).
type PocketBase struct {
	client     *pocketbase.Client
	collection string
}

// New builds an authorized client for the given PocketBase instance.
func New(url, email, password, collection string) (*PocketBase, error) {
	if collection == "" {
		collection = "puzzles"
	}
	client := pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(email, password))
	if err := client.Authorize(); err != nil {
		return nil, fmt.Errorf("pocketbase authorization failed: %w", err)
	}
	return &PocketBase{client: client, collection: collection}, nil
}

// newRecordID derives a 15-character PocketBase record ID.
func newRecordID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:15]
}

func (a *PocketBase) Publish(ctx context.Context, p *domain.Puzzle) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal puzzle: %w", err)
	}
	id := p.ID
	if id == "" {
		id = newRecordID()
	}
	data := map[string]any{
		"id":         id,
		"puzzle":     string(body),
		"difficulty": p.Difficulty.String(),
		"removed":    p.Removed,
	}
	if _, err := a.client.Create(a.collection, data); err != nil {
		return "", fmt.Errorf("failed to publish puzzle: %w", err)
	}
	return id, nil
}

func (a *PocketBase) Fetch(ctx context.Context, id string) (*domain.Puzzle, error) {
	record, err := a.client.One(a.collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch puzzle %s: %w", id, err)
	}
	raw, ok := record["puzzle"].(string)
	if !ok {
		return nil, fmt.Errorf("puzzle %s has no payload", id)
	}
	var p domain.Puzzle
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzle %s: %w", id, err)
	}
	p.ID = id
	return &p, nil
}

// List pages through published puzzles, optionally filtered by difficulty.
func (a *PocketBase) List(ctx context.Context, difficulty string, page, perPage int) ([]domain.SaveMeta, error) {
	var filters []string
	if difficulty != "" {
		filters = append(filters, fmt.Sprintf("difficulty = %q", difficulty))
	}
	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    "-created",
		Filters: strings.Join(filters, " && "),
	}
	result, err := a.client.List(a.collection, params)
	if err != nil {
		return nil, err
	}
	var out []domain.SaveMeta
	for _, item := range result.Items {
		id, _ := item["id"].(string)
		diff, _ := item["difficulty"].(string)
		if id == "" {
			continue
		}
		out = append(out, domain.SaveMeta{ID: id, Difficulty: diff})
	}
	return out, nil
}
