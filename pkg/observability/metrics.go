package observability

import (
	"context"

	"github.com/aretw0/holdfast/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by the lifecycle hooks.
type Metrics struct {
	Runs     *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewHooks builds lifecycle hooks that record scenario executions on
// the given registerer. The returned Metrics exposes the collectors for
// inspection.
func NewHooks(reg prometheus.Registerer) (domain.LifecycleHooks, *Metrics) {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holdfast_scenario_runs_total",
				Help: "Total number of scenario executions",
			},
			[]string{"scenario"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holdfast_scenario_failures_total",
				Help: "Total number of scenario executions that aborted the run",
			},
			[]string{"scenario"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "holdfast_scenario_duration_seconds",
				Help: "Duration of scenario executions",
			},
		),
	}
	reg.MustRegister(m.Runs, m.Failures, m.Duration)

	hooks := domain.LifecycleHooks{
		OnScenarioEnd: func(ctx context.Context, e *domain.ScenarioEvent) {
			m.Runs.WithLabelValues(e.Scenario).Inc()
			m.Duration.Observe(e.Duration.Seconds())
			if e.Err != nil {
				m.Failures.WithLabelValues(e.Scenario).Inc()
			}
		},
	}
	return hooks, m
}
