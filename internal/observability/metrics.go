// Package observability holds the process-wide Prometheus collectors.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	roundsSavedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "golftrack",
		Subsystem: "rounds",
		Name:      "saved_total",
		Help:      "Number of rounds successfully saved.",
	})
	holeEntriesSavedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "golftrack",
		Subsystem: "rounds",
		Name:      "hole_entries_saved_total",
		Help:      "Number of hole entries successfully saved.",
	})
	httpDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "golftrack",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

func init() {
	prometheus.MustRegister(roundsSavedCounter, holeEntriesSavedCounter, httpDurationHistogram)
}

// RecordRoundSaved counts one saved round and its hole entries.
func RecordRoundSaved(holeCount int) {
	roundsSavedCounter.Inc()
	holeEntriesSavedCounter.Add(float64(holeCount))
}

// ObserveHTTPRequest records the latency of one handled HTTP request.
func ObserveHTTPRequest(method, path string, seconds float64) {
	httpDurationHistogram.WithLabelValues(method, path).Observe(seconds)
}
