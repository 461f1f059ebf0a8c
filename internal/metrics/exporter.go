// Package metrics exports routing telemetry in Prometheus format and
// tracks decision accuracy from user feedback.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter owns the Prometheus registry and every routing metric.
type Exporter struct {
	registry *prometheus.Registry

	decisions      *prometheus.CounterVec
	complexity     prometheus.Histogram
	confidence     prometheus.Histogram
	analyzeLatency prometheus.Histogram
	outOfRange     prometheus.Counter
	reloads        *prometheus.CounterVec
}

// NewExporter builds the exporter against a private registry so tests
// never collide on the global one.
func NewExporter() *Exporter {
	registry := prometheus.NewRegistry()

	e := &Exporter{
		registry: registry,
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "orchestrator",
				Subsystem: "routing",
				Name:      "decisions_total",
				Help:      "Routing decisions by model, intent and domain",
			},
			[]string{"model", "intent", "domain"},
		),
		complexity: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "orchestrator",
				Subsystem: "routing",
				Name:      "complexity_score",
				Help:      "Distribution of complexity scores",
				Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
			},
		),
		confidence: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "orchestrator",
				Subsystem: "routing",
				Name:      "confidence",
				Help:      "Distribution of routing confidence",
				Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
			},
		),
		analyzeLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "orchestrator",
				Subsystem: "routing",
				Name:      "analyze_latency_seconds",
				Help:      "End-to-end analysis latency in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		outOfRange: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "orchestrator",
				Subsystem: "routing",
				Name:      "out_of_range_total",
				Help:      "Scores that matched no tier and used the nearest boundary",
			},
		),
		reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "orchestrator",
				Subsystem: "catalog",
				Name:      "reloads_total",
				Help:      "Catalog hot reload attempts by result",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		e.decisions,
		e.complexity,
		e.confidence,
		e.analyzeLatency,
		e.outOfRange,
		e.reloads,
	)
	return e
}

// RecordDecision counts one completed analysis.
func (e *Exporter) RecordDecision(model, intent, domain string, score, confidence float64, outOfRange bool, latency time.Duration) {
	e.decisions.WithLabelValues(model, intent, domain).Inc()
	e.complexity.Observe(score)
	e.confidence.Observe(confidence)
	e.analyzeLatency.Observe(latency.Seconds())
	if outOfRange {
		e.outOfRange.Inc()
	}
}

// RecordReload counts one catalog reload attempt.
func (e *Exporter) RecordReload(ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	e.reloads.WithLabelValues(status).Inc()
}

// Handler serves the registry in Prometheus text format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
