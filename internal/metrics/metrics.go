package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
)

const namespace = "ghost_tictactoe"

// Metrics collects game counters on its own registry. It observes controller events and
// minimax searches.
type Metrics struct {
	registry *prometheus.Registry

	gamesStarted      prometheus.Counter
	gamesEnded        *prometheus.CounterVec
	ghostMoves        prometheus.Counter
	droppedPlacements prometheus.Counter
	searchNodes       prometheus.Histogram
}

func New() *Metrics {
	that := &Metrics{
		registry: prometheus.NewRegistry(),

		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Total number of games started or restarted",
		}),
		gamesEnded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_ended_total",
			Help:      "Total number of finished games by result",
		}, []string{"result"}),
		ghostMoves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ghost_moves_total",
			Help:      "Total number of human marks relocated by the ghost move",
		}),
		droppedPlacements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_placements_total",
			Help:      "Total number of clicks whose cell was taken by the ghost move",
		}),
		searchNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_nodes",
			Help:      "Positions visited by one minimax search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 11),
		}),
	}

	that.registry.MustRegister(
		that.gamesStarted,
		that.gamesEnded,
		that.ghostMoves,
		that.droppedPlacements,
		that.searchNodes,
	)

	return that
}

func (that *Metrics) OnEvent(_ context.Context, event entity.Event) {
	switch event.Type {
	case entity.EventGameStarted:
		that.gamesStarted.Inc()
	case entity.EventGhostMoved:
		that.ghostMoves.Inc()
	case entity.EventPlacementDropped:
		that.droppedPlacements.Inc()
	case entity.EventGameEnded:
		that.gamesEnded.WithLabelValues(resultLabel(event.Outcome)).Inc()
	case entity.EventMarkPlaced:
	}
}

func (that *Metrics) ObserveSearch(nodes int) {
	that.searchNodes.Observe(float64(nodes))
}

func (that *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(that.registry, promhttp.HandlerOpts{})
}

func resultLabel(outcome entity.Outcome) string {
	switch {
	case outcome.Kind == entity.Draw:
		return "draw"
	case outcome.Cheated:
		return "cheat"
	default:
		return "computer"
	}
}
