// Package telemetry wires the engine's logging and metrics surfaces:
// github.com/rs/zerolog for structured logs, grounded on the zerolog
// usage in kegliz/qplay's itsu backend, and
// github.com/prometheus/client_golang for the counters/gauges a host
// binding exposes at /metrics, grounded on the ocx-backend manifest
// that pins prometheus/client_golang alongside gorilla/mux and
// gorilla/websocket for the same kind of service.
package telemetry

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog.Logger writing to stderr with the given
// level name (any name zerolog.ParseLevel accepts, e.g. "debug", "info",
// "warn", "error"; a name it rejects falls back to "info"), in the
// console-writer style the example pack's
// zerolog adapters build on top of.
func NewLogger(component, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// Metrics holds the Prometheus collectors the engine and its host
// binding update as the simulation runs.
type Metrics struct {
	EventsProcessed prometheus.Counter
	StepsTotal      prometheus.Counter
	CurrentTime     prometheus.Gauge
	ActiveGates     prometheus.Gauge
}

// NewMetrics registers the engine's collectors against reg. Passing
// prometheus.NewRegistry() keeps a simulation's metrics isolated from
// the global default registry, which matters when an engine is
// constructed more than once in-process (tests, multiple netlists).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EventsProcessed: f.NewCounter(prometheus.CounterOpts{
			Name: "sim_events_processed_total",
			Help: "Total simulation events drained from the priority queue.",
		}),
		StepsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "sim_steps_total",
			Help: "Total calls to Engine.Step.",
		}),
		CurrentTime: f.NewGauge(prometheus.GaugeOpts{
			Name: "sim_current_time",
			Help: "Current simulated tick.",
		}),
		ActiveGates: f.NewGauge(prometheus.GaugeOpts{
			Name: "sim_active_gates",
			Help: "Number of gates in the currently initialized netlist.",
		}),
	}
}
