package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes recorded per report request.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
	OutcomeAuth  = "auth_error"
)

var (
	fetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gscdash_report_fetches_total",
			Help: "Total report fetches by search type and outcome",
		},
		[]string{"search_type", "outcome"},
	)

	fetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gscdash_report_fetch_duration_seconds",
			Help:    "Duration of Search Analytics fetches",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(fetchesTotal, fetchDuration)
	})
}

// RecordFetch records one report fetch with its outcome and duration.
func RecordFetch(searchType, outcome string, elapsed time.Duration) {
	fetchesTotal.WithLabelValues(searchType, outcome).Inc()
	fetchDuration.Observe(elapsed.Seconds())
}
