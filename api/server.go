package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wricardo/numguess/game/engine"
	"github.com/wricardo/numguess/game/scores"
	"github.com/wricardo/numguess/transport/websocket"
)

const (
	// DefaultLeaderboardLimit is used when no limit query parameter is given
	DefaultLeaderboardLimit = scores.LeaderboardDisplayLimit

	// MaxLeaderboardLimit caps the limit query parameter
	MaxLeaderboardLimit = 100
)

// Scoreboard provides read access to persisted scores
type Scoreboard interface {
	Snapshot(ctx context.Context, limit int) (*scores.Snapshot, error)
}

// Server represents the REST API server
type Server struct {
	scoreboard Scoreboard
	hub        *websocket.Hub
	mcp        http.Handler
	router     *mux.Router
}

// NewServer creates a new API server. hub and mcpHandler may be nil.
func NewServer(scoreboard Scoreboard, hub *websocket.Hub, mcpHandler http.Handler) *Server {
	s := &Server{
		scoreboard: scoreboard,
		hub:        hub,
		mcp:        mcpHandler,
		router:     mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/scores", s.handleBestScores).Methods("GET")
	api.HandleFunc("/leaderboard", s.handleLeaderboard).Methods("GET")
	api.HandleFunc("/difficulties", s.handleDifficulties).Methods("GET")

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/ws", s.handleWebSocket)

	if s.mcp != nil {
		s.router.Handle("/mcp", s.mcp).Methods("POST")
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// BestScoresResponse is the body of GET /api/scores
type BestScoresResponse struct {
	BestScores scores.BestScores `json:"best_scores"`
}

// LeaderboardItem is one leaderboard entry. Lines that do not parse are
// reported with only Line set.
type LeaderboardItem struct {
	Difficulty string `json:"difficulty,omitempty"`
	Attempts   int    `json:"attempts,omitempty"`
	Line       string `json:"line"`
}

// LeaderboardResponse is the body of GET /api/leaderboard
type LeaderboardResponse struct {
	Entries []LeaderboardItem `json:"entries"`
	Count   int               `json:"count"`
	Limit   int               `json:"limit"`
}

// DifficultyInfo describes one difficulty tier
type DifficultyInfo struct {
	Level       int    `json:"level"`
	Key         string `json:"key"`
	Label       string `json:"label"`
	MaxAttempts int    `json:"max_attempts"`
}

// Scoreboard Handlers

func (s *Server) handleBestScores(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.scoreboard.Snapshot(r.Context(), DefaultLeaderboardLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, BestScoresResponse{BestScores: snapshot.BestScores})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := DefaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > MaxLeaderboardLimit {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("limit must be an integer between 1 and %d", MaxLeaderboardLimit))
			return
		}
		limit = parsed
	}

	snapshot, err := s.scoreboard.Snapshot(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	items := make([]LeaderboardItem, 0, len(snapshot.Leaderboard))
	for _, line := range snapshot.Leaderboard {
		item := LeaderboardItem{Line: line}
		if entry, err := scores.ParseLeaderboardLine(line); err == nil {
			item.Difficulty = entry.Difficulty.Key()
			item.Attempts = entry.Attempts
		}
		items = append(items, item)
	}

	respondJSON(w, http.StatusOK, LeaderboardResponse{
		Entries: items,
		Count:   len(items),
		Limit:   limit,
	})
}

func (s *Server) handleDifficulties(w http.ResponseWriter, r *http.Request) {
	var infos []DifficultyInfo
	for _, d := range engine.Difficulties() {
		infos = append(infos, DifficultyInfo{
			Level:       int(d),
			Key:         d.Key(),
			Label:       d.Label(),
			MaxAttempts: d.MaxAttempts(),
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"difficulties":        infos,
		"default_upper_bound": engine.DefaultUpperBound,
	})
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		http.Error(w, "live feed unavailable", http.StatusServiceUnavailable)
		return
	}

	s.hub.ServeWS(w, r)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
