package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

func TestMoveMade(t *testing.T) {
	m := New()

	m.MoveMade("2048", engine.DirLeft, true, 8)
	m.MoveMade("2048", engine.DirLeft, true, 0)
	m.MoveMade("2048", engine.DirUp, false, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Moves.WithLabelValues("left", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Moves.WithLabelValues("up", "false")))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.MergeScore))
}

func TestGameFinished(t *testing.T) {
	m := New()

	m.GameFinished("2048_endless", t2048.OutcomeGameOver, 1200, 128)
	m.GameFinished("2048", t2048.OutcomeWin, 90000, 8192)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GamesFinished.WithLabelValues("2048_endless", "game_over")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GamesFinished.WithLabelValues("2048", "win")))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var observed uint64
	for _, f := range families {
		if f.GetName() == "t2048_max_tile" {
			observed = f.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(2), observed)
}

func TestObservesRealGame(t *testing.T) {
	m := New()
	t2048.SetObserver(m)
	t.Cleanup(func() { t2048.SetObserver(nil) })

	g := t2048.NewEndless()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in)
	}

	total := 0.0
	for _, dir := range engine.Directions() {
		for _, moved := range []string{"true", "false"} {
			total += testutil.ToFloat64(m.Moves.WithLabelValues(dir.String(), moved))
		}
	}
	assert.Equal(t, 4.0, total)
}

func TestHandler(t *testing.T) {
	m := New()
	m.SSHSessions.Inc()
	m.MoveMade("2048", engine.DirDown, true, 4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, want := range []string{
		"t2048_ssh_sessions_active 1",
		`t2048_moves_total{direction="down",moved="true"} 1`,
		"t2048_merge_score_total 4",
		"go_goroutines",
	} {
		assert.True(t, strings.Contains(body, want), "missing %q", want)
	}
}

func TestRegistryIsPrivate(t *testing.T) {
	// Two instances must not collide on registration
	a, b := New(), New()
	assert.NotSame(t, a.Registry(), b.Registry())
}
