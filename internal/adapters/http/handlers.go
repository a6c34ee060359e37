package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/usecase"
)

// enumerateCap bounds /api/enumerate server-side; unbounded enumeration on
// a sparse grid never comes back.
const enumerateCap = 100

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/enumerate", h.handleEnumerate)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	default:
		return domain.Medium
	}
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	ID         string       `json:"id,omitempty"`
	Board      domain.Board `json:"board,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Nodes      int          `json:"nodes,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := parseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		ID:         p.ID,
		Board:      p.Board,
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
}

type solveResp struct {
	Solved     bool        `json:"solved"`
	Board      [9][9]uint8 `json:"board,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g := domain.FromBoard(domain.Board{Values: req.Board})
	ok, st, err := h.UC.Solve(r.Context(), g)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	resp := solveResp{Solved: ok, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes}
	if ok {
		resp.Board = g.Board().Values
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Enumerate ----

type enumerateReq struct {
	Board [9][9]uint8 `json:"board"`
	Limit int         `json:"limit,omitempty"`
}

type enumerateResp struct {
	Count      int           `json:"count"`
	Solutions  [][9][9]uint8 `json:"solutions,omitempty"`
	DurationMs int64         `json:"durationMs,omitempty"`
	Nodes      int           `json:"nodes,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func (h *Handler) handleEnumerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req enumerateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(enumerateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 1
	}
	if limit > enumerateCap {
		limit = enumerateCap
	}
	g := domain.FromBoard(domain.Board{Values: req.Board})
	sols, st, err := h.UC.EnumerateUpTo(r.Context(), g, limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(enumerateResp{Error: err.Error()})
		return
	}
	out := make([][9][9]uint8, 0, len(sols))
	for _, s := range sols {
		var m [9][9]uint8
		for row := 0; row < 9; row++ {
			for col := 0; col < 9; col++ {
				m[row][col] = uint8(s.Value(row, col))
			}
		}
		out = append(out, m)
	}
	_ = json.NewEncoder(w).Encode(enumerateResp{
		Count:      len(out),
		Solutions:  out,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}

type validateResp struct {
	OK        bool              `json:"ok"`
	Conflicts []domain.Position `json:"conflicts,omitempty"`
	Error     string            `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g := domain.FromBoard(domain.Board{Values: req.Board})
	ok, conflicts, err := h.UC.Validate(r.Context(), g)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board [9][9]uint8 `json:"board"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g := domain.FromBoard(domain.Board{Values: req.Board})
	hh, ok, err := h.UC.Hint(r.Context(), g)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: ps})
}
