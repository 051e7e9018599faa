package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"sudokugame/internal/domain"
	"sudokugame/internal/game"
	"sudokugame/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/state", h.handleState)
	mux.HandleFunc("/api/select", h.handleSelect)
	mux.HandleFunc("/api/value", h.handleValue)
	mux.HandleFunc("/api/note", h.handleNote)
	mux.HandleFunc("/api/undo", h.handleUndo)
	mux.HandleFunc("/api/reveal", h.handleReveal)
	mux.HandleFunc("/api/check", h.handleCheck)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
	mux.HandleFunc("/api/archive/publish", h.handlePublish)
	mux.HandleFunc("/api/archive/load", h.handleArchiveLoad)
}

type stateResp struct {
	View  *usecase.View `json:"view,omitempty"`
	Error string        `json:"error,omitempty"`
}

// statusFor maps engine rejections to HTTP codes: every game sentinel is a
// recoverable player-input problem, not a server fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNoSession):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrNoArchive):
		return http.StatusNotImplemented
	case errors.Is(err, game.ErrRevealActive),
		errors.Is(err, game.ErrGivenCell),
		errors.Is(err, game.ErrCellHasValue),
		errors.Is(err, game.ErrAlreadyEmpty),
		errors.Is(err, game.ErrNothingToUndo):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidDigit),
		errors.Is(err, game.ErrInvalidRecord):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeView(w http.ResponseWriter, v usecase.View, err error) {
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(stateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(stateResp{View: &v})
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// ---- New game ----

type newReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type newResp struct {
	View       *usecase.View `json:"view,omitempty"`
	Seed       int64         `json:"seed,omitempty"`
	DurationMs int64         `json:"durationMs,omitempty"`
	Nodes      int           `json:"nodes,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	view, st, err := h.UC.NewGame(r.Context(), seed, diff)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(newResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(newResp{
		View:       &view,
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Projection ----

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	view, err := h.UC.State()
	writeView(w, view, err)
}

// ---- Cell commands ----

type selectReq struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	view, err := h.UC.Select(r.Context(), req.Row, req.Col)
	writeView(w, view, err)
}

type digitReq struct {
	Digit uint8 `json:"digit"`
}

func (h *Handler) handleValue(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req digitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	view, err := h.UC.SetValue(r.Context(), req.Digit)
	writeView(w, view, err)
}

func (h *Handler) handleNote(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req digitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	view, err := h.UC.ToggleNote(r.Context(), req.Digit)
	writeView(w, view, err)
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	view, err := h.UC.Undo(r.Context())
	writeView(w, view, err)
}

func (h *Handler) handleReveal(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	view, err := h.UC.ToggleReveal(r.Context())
	writeView(w, view, err)
}

type checkResp struct {
	Wrong bool          `json:"wrong"`
	View  *usecase.View `json:"view,omitempty"`
	Error string        `json:"error,omitempty"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	wrong, view, err := h.UC.Check(r.Context())
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(checkResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(checkResp{Wrong: wrong, View: &view})
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	hh, ok, err := h.UC.Hint(r.Context())
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type slotReq struct {
	ID string `json:"id"`
}

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req slotReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if err := h.UC.SaveSlot(r.Context(), req.ID); err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: req.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req slotReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stateResp{Error: "invalid JSON or missing id"})
		return
	}
	view, err := h.UC.LoadSlot(r.Context(), req.ID)
	if err != nil {
		status := http.StatusNotFound
		if errors.Is(err, game.ErrInvalidRecord) {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(stateResp{Error: err.Error()})
		return
	}
	writeView(w, view, nil)
}

type listResp struct {
	Saves []domain.SaveMeta `json:"saves"`
	Error string            `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	saves, err := h.UC.ListSlots(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Saves: saves})
}

// ---- Archive ----

func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	id, err := h.UC.Publish(r.Context())
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: id})
}

func (h *Handler) handleArchiveLoad(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req slotReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stateResp{Error: "invalid JSON or missing id"})
		return
	}
	view, err := h.UC.NewGameFromArchive(r.Context(), req.ID)
	writeView(w, view, err)
}
