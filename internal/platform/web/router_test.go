package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/metrics"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newTestRouter(t *testing.T, checks map[string]Pinger) (http.Handler, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	router := NewRouter(RouterConfig{
		Logger:  log.New(io.Discard),
		Scores:  store,
		Metrics: metrics.New().Handler(),
		Checks:  checks,
	})
	return router, store
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	router, store := newTestRouter(t, nil)
	rec := get(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	router, _ = newTestRouter(t, map[string]Pinger{
		"sqlite": store,
		"redis":  pingFunc(func(context.Context) error { return errors.New("connection refused") }),
	})
	rec = get(t, router, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","checks":{"sqlite":"ok","redis":"connection refused"}}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	rec := get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "t2048_ssh_sessions_active")
}

func TestScores(t *testing.T) {
	router, store := newTestRouter(t, nil)
	for _, score := range []int{40, 400, 4000} {
		_, err := store.SaveScore(storage.ScoreEntry{GameID: "2048_endless", Player: "alice", Score: score, MaxTile: 256})
		require.NoError(t, err)
	}

	rec := get(t, router, "/api/scores/2048_endless?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body scoresResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2048_endless", body.Game)
	require.Len(t, body.Scores, 2)
	assert.Equal(t, 4000, body.Scores[0].Score)
	assert.Equal(t, 400, body.Scores[1].Score)
	assert.Equal(t, "alice", body.Scores[0].Player)
}

func TestScoresEmptyIsArray(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	rec := get(t, router, "/api/scores/2048")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"game":"2048","scores":[]}`, rec.Body.String())
}

func TestScoresErrors(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	tests := []struct {
		path   string
		status int
	}{
		{"/api/scores/snake", http.StatusNotFound},
		{"/api/scores/2048?limit=abc", http.StatusBadRequest},
		{"/api/scores/2048?limit=0", http.StatusBadRequest},
		{"/api/scores/2048?limit=-3", http.StatusBadRequest},
		{"/api/nothing", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, router, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}

	for _, path := range []string{"/healthz", "/api/scores/2048", "/api/stats/2048"} {
		t.Run("POST "+path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.JSONEq(t, `{"error":"method not allowed"}`, rec.Body.String())
		})
	}
}

func TestStats(t *testing.T) {
	router, store := newTestRouter(t, nil)
	_, err := store.SaveScore(storage.ScoreEntry{GameID: "2048", Score: 100, MaxTile: 128})
	require.NoError(t, err)

	rec := get(t, router, "/api/stats/2048")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats storage.GameStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.GamesCount)
	assert.Equal(t, 128, stats.BestTile)
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", defaultLimit, false},
		{"5", 5, false},
		{"1000", maxLimit, false},
		{"0", 0, true},
		{"x", 0, true},
	}
	for _, tt := range tests {
		got, err := parseLimit(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := recovery(log.New(io.Discard))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := get(t, h, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServerLifecycle(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	srv := NewServer(router, DefaultServerConfig(), log.New(io.Discard))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}
