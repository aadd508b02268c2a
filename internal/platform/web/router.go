// Package web serves the HTTP status endpoints next to the SSH server:
// health, Prometheus metrics and a JSON leaderboard.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ScoreSource provides leaderboard data. Implemented by *storage.Store.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterConfig holds the dependencies of the router
type RouterConfig struct {
	Logger  *log.Logger
	Scores  ScoreSource
	Metrics http.Handler      // nil disables /metrics
	Checks  map[string]Pinger // dependencies reported by /healthz
}

// NewRouter creates the HTTP router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(recovery(cfg.Logger))
	r.Use(logging(cfg.Logger))

	h := &handler{cfg: cfg}
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/scores/{game}", h.scores).Methods(http.MethodGet)
	api.HandleFunc("/stats/{game}", h.stats).Methods(http.MethodGet)

	// Subrouters resolve their own misses; they do not inherit these.
	for _, router := range []*mux.Router{r, api} {
		router.NotFoundHandler = http.HandlerFunc(notFound)
		router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	}
	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

type handler struct {
	cfg RouterConfig
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	status := http.StatusOK

	if len(h.cfg.Checks) > 0 {
		resp.Checks = make(map[string]string, len(h.cfg.Checks))
		for name, p := range h.cfg.Checks {
			if err := p.Ping(r.Context()); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
	}

	writeJSON(w, status, resp)
}

type scoresResponse struct {
	Game   string               `json:"game"`
	Scores []storage.ScoreEntry `json:"scores"`
}

func (h *handler) scores(w http.ResponseWriter, r *http.Request) {
	gameID, ok := h.gameParam(w, r)
	if !ok {
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.cfg.Scores.TopScores(gameID, limit)
	if err != nil {
		h.cfg.Logger.Error("top scores query failed", "game", gameID, "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, scoresResponse{Game: gameID, Scores: entries})
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	gameID, ok := h.gameParam(w, r)
	if !ok {
		return
	}

	stats, err := h.cfg.Scores.GetGameStats(gameID)
	if err != nil {
		h.cfg.Logger.Error("game stats query failed", "game", gameID, "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// gameParam extracts {game} and rejects ids that are not registered games.
func (h *handler) gameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	gameID := mux.Vars(r)["game"]
	if !registry.Exists(gameID) {
		writeError(w, http.StatusNotFound, "unknown game "+strconv.Quote(gameID))
		return "", false
	}
	return gameID, true
}

// parseLimit reads the limit query parameter. Empty selects the default;
// values above maxLimit are capped.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("limit must be a positive integer")
	}
	return min(n, maxLimit), nil
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
