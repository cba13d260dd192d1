package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
)

func TestNewLoggerFallsBackToInfoOnBadLevel(t *testing.T) {
	log := NewLogger("engine", "not-a-level")
	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("GetLevel() = %v, want InfoLevel", log.GetLevel())
	}
}

func TestNewLoggerHonorsValidLevel(t *testing.T) {
	log := NewLogger("engine", "debug")
	if log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("GetLevel() = %v, want DebugLevel", log.GetLevel())
	}
}

func TestNewMetricsRegistersAllCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.EventsProcessed.Add(3)
	m.StepsTotal.Inc()
	m.CurrentTime.Set(42)
	m.ActiveGates.Set(7)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	names := map[string]*dto.MetricFamily{}
	for _, f := range families {
		names[f.GetName()] = f
	}

	for _, want := range []string{
		"sim_events_processed_total",
		"sim_steps_total",
		"sim_current_time",
		"sim_active_gates",
	} {
		if _, ok := names[want]; !ok {
			t.Errorf("metric %q not registered", want)
		}
	}

	if got := names["sim_events_processed_total"].Metric[0].Counter.GetValue(); got != 3 {
		t.Errorf("sim_events_processed_total = %v, want 3", got)
	}
	if got := names["sim_current_time"].Metric[0].Gauge.GetValue(); got != 42 {
		t.Errorf("sim_current_time = %v, want 42", got)
	}
}
