package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DurationKey is the Data attribute PrometheusObserver reads into its duration
// histogram. Values must be float64 seconds.
const DurationKey = "duration_seconds"

// PrometheusObserver turns events into Prometheus series:
//
//   - <namespace>_events_total: counter by type and level
//   - <namespace>_event_duration_seconds: histogram by type, fed from the
//     DurationKey attribute when an event carries one
//
// Call Register before scraping or gathering.
type PrometheusObserver struct {
	events    *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewPrometheusObserver creates the collectors under the given namespace.
func NewPrometheusObserver(namespace string) *PrometheusObserver {
	return &PrometheusObserver{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_total",
				Help:      "Events emitted, by type and level.",
			},
			[]string{"type", "level"},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "event_duration_seconds",
				Help:      "Durations reported by events, by type.",
				Buckets:   []float64{0, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"type"},
		),
	}
}

// Register adds the observer's collectors to reg.
func (p *PrometheusObserver) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{p.events, p.durations} {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("register collector: %w", err)
		}
	}
	return nil
}

// Events exposes the event counter, mainly for tests.
func (p *PrometheusObserver) Events() *prometheus.CounterVec {
	return p.events
}

// Durations exposes the duration histogram, mainly for tests.
func (p *PrometheusObserver) Durations() *prometheus.HistogramVec {
	return p.durations
}

func (p *PrometheusObserver) OnEvent(ctx context.Context, event Event) {
	p.events.WithLabelValues(string(event.Type), event.Level.String()).Inc()

	if d, ok := event.Data[DurationKey].(float64); ok && d >= 0 {
		p.durations.WithLabelValues(string(event.Type)).Observe(d)
	}
}
