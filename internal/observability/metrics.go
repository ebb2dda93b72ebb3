package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	apiRequestsTotal       *prometheus.CounterVec
	apiLatencySeconds      *prometheus.HistogramVec
	apiErrorsTotal         *prometheus.CounterVec
	recommendationsTotal   *prometheus.CounterVec
	trustEvaluationLatency prometheus.Histogram
	haltRecommendedTotal   prometheus.Counter
	journalEntriesTotal    prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used across the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "counselor_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "counselor_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "counselor_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		recommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "counselor_recommendations_total",
			Help: "Recommendation batches generated, labelled by cache outcome.",
		}, []string{"outcome"})

		trustEvaluationLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "counselor_trust_evaluation_seconds",
			Help:    "Time spent evaluating trust factors for one batch.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		})

		haltRecommendedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "counselor_halt_recommended_total",
			Help: "Recommendation batches in which a halt was recommended.",
		})

		journalEntriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "counselor_journal_entries_total",
			Help: "Journal entries created.",
		})

		prometheus.MustRegister(
			apiRequestsTotal,
			apiLatencySeconds,
			apiErrorsTotal,
			recommendationsTotal,
			trustEvaluationLatency,
			haltRecommendedTotal,
			journalEntriesTotal,
		)
	})
}

// APIRequests exposes the request counter.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the error counter.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// Recommendations exposes the recommendation batch counter.
func Recommendations() *prometheus.CounterVec {
	RegisterMetrics()
	return recommendationsTotal
}

// TrustEvaluationLatency exposes the evaluation histogram.
func TrustEvaluationLatency() prometheus.Histogram {
	RegisterMetrics()
	return trustEvaluationLatency
}

// HaltRecommended exposes the halt counter.
func HaltRecommended() prometheus.Counter {
	RegisterMetrics()
	return haltRecommendedTotal
}

// JournalEntries exposes the journal entry counter.
func JournalEntries() prometheus.Counter {
	RegisterMetrics()
	return journalEntriesTotal
}
