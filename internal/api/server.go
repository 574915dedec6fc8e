// Package api serves the progression engine over HTTP.
// GET endpoints are public (read-only queries).
// The regression endpoint requires a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/arkanite/skillforge/internal/analysis"
	"github.com/arkanite/skillforge/internal/character"
	"github.com/arkanite/skillforge/internal/engine"
	"github.com/arkanite/skillforge/internal/regression"
	"github.com/arkanite/skillforge/internal/store"
)

// Server serves character progression over HTTP. The server owns persistence
// ordering: read snapshot, run the engine, write back, return the report.
type Server struct {
	Store    *store.Store
	Engine   *engine.Engine
	Addr     string
	AdminKey string // Bearer token for the regression endpoint. Empty = disabled.
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	createLimiter := NewRateLimiter(30, time.Hour)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/characters", RateLimitMiddleware(createLimiter, s.handleCharacters))
	mux.HandleFunc("/api/v1/characters/", s.handleCharacterRoutes)
	mux.HandleFunc("/api/v1/classes", s.handleClasses)
	mux.HandleFunc("/api/v1/classes/", s.handleClassDetail)
	mux.HandleFunc("/api/v1/leaderboard", s.handleLeaderboard)

	slog.Info("HTTP API starting", "addr", s.Addr, "admin_auth", s.AdminKey != "")

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(s.Addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.AdminKey == "" {
			http.Error(w, "admin endpoints disabled (no SKILLFORGE_ADMIN_KEY set)", http.StatusForbidden)
			return
		}
		if !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// handleCharacters dispatches GET (list) and POST (create).
func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleList(w, r)
	case http.MethodPost:
		s.handleCreate(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type createRequest struct {
	Name       string                `json:"name"`
	Background *character.Background `json:"background,omitempty"`
	BaseClass  string                `json:"base_class,omitempty"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	ch, err := s.Engine.NewCharacter(req.Name, req.Background, req.BaseClass)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.Store.Create(&ch); err != nil {
		slog.Error("create character", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("character created", "id", ch.ID, "name", ch.Name,
		"rune_rank", ch.Rune.Rank.String(), "base_class", req.BaseClass)
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, ch)
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	chars, err := s.Store.List()
	if err != nil {
		slog.Error("list characters", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"characters": chars, "count": len(chars)})
}

// handleCharacterRoutes dispatches /api/v1/characters/{id}[/{action}].
func (s *Server) handleCharacterRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/characters/")
	parts := strings.Split(rest, "/")
	if len(parts) == 0 || parts[0] == "" {
		http.Error(w, "character id required", http.StatusBadRequest)
		return
	}
	id := parts[0]

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.handleSnapshot(w, id)
		return
	}

	switch parts[1] {
	case "experience":
		s.requirePost(w, r, func() { s.handleExperience(w, r, id) })
	case "analysis":
		s.handleAnalysis(w, r, id)
	case "regress":
		s.adminOnly(func(w http.ResponseWriter, r *http.Request) {
			s.requirePost(w, r, func() { s.handleRegress(w, id) })
		})(w, r)
	case "knowledge":
		s.requirePost(w, r, func() { s.handleKnowledge(w, r, id) })
	case "bonuses":
		s.handleBonuses(w, id)
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

func (s *Server) requirePost(w http.ResponseWriter, r *http.Request, next func()) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	next()
}

// load fetches a snapshot, writing the error response on failure.
func (s *Server) load(w http.ResponseWriter, id string) (character.Character, bool) {
	ch, err := s.Store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "character not found", http.StatusNotFound)
		return character.Character{}, false
	}
	if err != nil {
		slog.Error("load character", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return character.Character{}, false
	}
	return ch, true
}

func (s *Server) handleSnapshot(w http.ResponseWriter, id string) {
	ch, ok := s.load(w, id)
	if !ok {
		return
	}
	writeJSON(w, ch)
}

type experienceRequest struct {
	Amount int `json:"amount"`
}

func (s *Server) handleExperience(w http.ResponseWriter, r *http.Request, id string) {
	var req experienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ch, ok := s.load(w, id)
	if !ok {
		return
	}

	updated, result, err := s.Engine.AddExperience(&ch, req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.Store.Update(&updated); err != nil {
		slog.Error("update character", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if result.LeveledUp {
		slog.Info("character leveled up", "id", id, "level", result.NewLevel,
			"stat_points", result.StatPoints, "analyzed", result.Analysis != nil)
	}
	writeJSON(w, map[string]any{"character": updated, "result": result})
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ch, ok := s.load(w, id)
	if !ok {
		return
	}

	result, err := analysis.Analyze(&ch)
	if errors.Is(err, analysis.ErrNoBackground) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("analyze character", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleRegress(w http.ResponseWriter, id string) {
	ch, ok := s.load(w, id)
	if !ok {
		return
	}

	updated, report, err := s.Engine.Regress(&ch)
	if errors.Is(err, regression.ErrRegressionLevel) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("regress character", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := s.Store.Update(&updated); err != nil {
		slog.Error("update character", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("character regressed", "id", id, "cycle", report.NewCycle,
		"prestige", report.PrestigePoints,
		"knowledge", humanize.Comma(int64(report.KnowledgeGained)))
	writeJSON(w, map[string]any{"character": updated, "report": report})
}

type knowledgeRequest struct {
	Skill  string `json:"skill"`
	Amount int    `json:"amount"`
}

func (s *Server) handleKnowledge(w http.ResponseWriter, r *http.Request, id string) {
	var req knowledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ch, ok := s.load(w, id)
	if !ok {
		return
	}

	updated, err := s.Engine.SpendKnowledge(&ch, req.Skill, req.Amount)
	if errors.Is(err, regression.ErrInsufficientKnowledge) ||
		errors.Is(err, regression.ErrUnknownSkill) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("spend knowledge", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := s.Store.Update(&updated); err != nil {
		slog.Error("update character", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{
		"character": updated,
		"skill":     updated.Skill(req.Skill),
		"remaining": updated.Regression.RetainedKnowledge,
	})
}

func (s *Server) handleBonuses(w http.ResponseWriter, id string) {
	ch, ok := s.load(w, id)
	if !ok {
		return
	}
	rec := ch.Regression
	writeJSON(w, map[string]any{
		"bonuses": regression.Bonuses(rec.TotalCycles, rec.RetainedKnowledge),
		"unlocks": regression.Unlocks(rec),
	})
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]any{"classes": s.Engine.Catalog().BaseClasses()})
}

// handleClassDetail resolves GET /api/v1/classes/{path...} where path is a
// slash-joined class tree path.
func (s *Server) handleClassDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/classes/")
	class, branch, ok := s.Engine.Catalog().Lookup(path)
	if !ok {
		http.Error(w, "class not found", http.StatusNotFound)
		return
	}
	if branch == nil {
		writeJSON(w, class)
		return
	}
	writeJSON(w, map[string]any{"class": class.Name, "branch": branch})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 10
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries, err := s.Store.Leaderboard(limit)
	if err != nil {
		slog.Error("leaderboard", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	type rankedEntry struct {
		store.LeaderboardEntry
		ExperienceDisplay string `json:"experience_display"`
	}
	ranked := make([]rankedEntry, len(entries))
	for i, e := range entries {
		ranked[i] = rankedEntry{
			LeaderboardEntry:  e,
			ExperienceDisplay: humanize.Comma(int64(e.Experience)),
		}
	}
	writeJSON(w, map[string]any{"leaderboard": ranked})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
