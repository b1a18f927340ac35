package httpapi

import "github.com/prometheus/client_golang/prometheus"

// metrics carries the server's instrumentation on its own registry, so
// several handlers can coexist in one process.
type metrics struct {
	registry *prometheus.Registry
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_renders_total",
				Help: "Total number of render requests",
			},
			[]string{"kind", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "espalier_render_duration_seconds",
				Help: "Duration of render requests",
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(m.renders, m.duration)
	return m
}
