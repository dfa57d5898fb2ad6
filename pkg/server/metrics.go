package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the detect endpoint.
type Metrics struct {
	DetectRequests      *prometheus.CounterVec
	ExtractionDuration  prometheus.Histogram
	ReferencesExtracted prometheus.Counter
}

// NewMetrics creates and registers the service metrics. Registration runs
// once per process; repeated calls return the same instance to avoid
// duplicate-collector panics.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			DetectRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "lawlink_detect_requests_total",
					Help: "Total detect requests by outcome",
				},
				[]string{"outcome"}, // "ok" or "bad_request"
			),
			ExtractionDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "lawlink_extraction_duration_seconds",
					Help:    "Time spent extracting references from one text",
					Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
				},
			),
			ReferencesExtracted: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "lawlink_references_extracted_total",
					Help: "Total references produced by the extractor",
				},
			),
		}
	})
	return globalMetrics
}
