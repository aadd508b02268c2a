// Package metrics exposes gameplay counters in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const namespace = "t2048"

// Metrics holds the collectors and the registry they are registered with.
// It implements t2048.Observer.
type Metrics struct {
	registry *prometheus.Registry

	Moves         *prometheus.CounterVec
	MergeScore    prometheus.Counter
	GamesFinished *prometheus.CounterVec
	MaxTile       prometheus.Histogram
	SSHSessions   prometheus.Gauge
}

var _ t2048.Observer = (*Metrics)(nil)

// New creates the collectors on a private registry, together with the
// standard Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "moves_total",
				Help:      "Moves attempted, by direction and whether the board changed",
			},
			[]string{"direction", "moved"},
		),
		MergeScore: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merge_score_total",
			Help:      "Sum of all points gained from merges",
		}),
		GamesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "games_finished_total",
				Help:      "Games that reached a final state",
			},
			[]string{"game", "outcome"},
		),
		MaxTile: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "max_tile",
			Help:      "Highest tile on the board when a game finished",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 12), // 16 .. 32768
		}),
		SSHSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ssh_sessions_active",
			Help:      "Currently connected SSH sessions",
		}),
	}

	m.registry.MustRegister(
		m.Moves,
		m.MergeScore,
		m.GamesFinished,
		m.MaxTile,
		m.SSHSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// MoveMade implements t2048.Observer.
func (m *Metrics) MoveMade(_ string, dir engine.Direction, moved bool, gained int) {
	m.Moves.WithLabelValues(dir.String(), strconv.FormatBool(moved)).Inc()
	if gained > 0 {
		m.MergeScore.Add(float64(gained))
	}
}

// GameFinished implements t2048.Observer.
func (m *Metrics) GameFinished(gameID string, outcome t2048.Outcome, _ int, maxTile int) {
	m.GamesFinished.WithLabelValues(gameID, string(outcome)).Inc()
	m.MaxTile.Observe(float64(maxTile))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
