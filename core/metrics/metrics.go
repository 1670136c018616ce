package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run outcomes used as the status label.
const (
	StatusSuccess    = "success"
	StatusSuppressed = "suppressed"
	StatusFailed     = "failed"
)

var (
	syncRunsTotal               *prometheus.CounterVec
	syncRunDurationSeconds      prometheus.Histogram
	syncBatchFailuresTotal      prometheus.Counter
	syncOffersInsertedTotal     prometheus.Counter
	syncAvailabilityChanges     *prometheus.CounterVec
	syncGuardTripsTotal         *prometheus.CounterVec
	marketplaceRequestsTotal    *prometheus.CounterVec
	marketplaceRequestDurations *prometheus.HistogramVec

	once sync.Once
)

// Init registers the collectors with the default registry.
// It is safe to call multiple times; every Observe helper calls it.
func Init() {
	once.Do(func() {
		syncRunsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_sync_runs_total",
				Help: "Total number of sync runs, labeled by outcome.",
			},
			[]string{"status"},
		)

		syncRunDurationSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_sync_run_duration_seconds",
				Help:    "Histogram of full sync run durations.",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
		)

		syncBatchFailuresTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_sync_batch_failures_total",
				Help: "Total number of full-record batches that failed and were skipped.",
			},
		)

		syncOffersInsertedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_sync_offers_inserted_total",
				Help: "Total number of offers inserted into the catalog.",
			},
		)

		syncAvailabilityChanges = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_sync_availability_changes_total",
				Help: "Total number of offer availability flips, labeled by direction.",
			},
			[]string{"direction"},
		)

		syncGuardTripsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_sync_guard_trips_total",
				Help: "Total number of suppressed availability updates, labeled by guard.",
			},
			[]string{"reason"},
		)

		marketplaceRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_requests_total",
				Help: "Total number of marketplace API requests, labeled by endpoint and outcome.",
			},
			[]string{"endpoint", "outcome"},
		)

		marketplaceRequestDurations = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketplace_request_duration_seconds",
				Help:    "Histogram of marketplace API latencies, labeled by endpoint.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"endpoint"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	Init()
	return promhttp.Handler()
}

// ObserveRun records the outcome and duration of one sync run.
func ObserveRun(status string, duration time.Duration) {
	Init()
	syncRunsTotal.WithLabelValues(status).Inc()
	syncRunDurationSeconds.Observe(duration.Seconds())
}

// ObserveBatchFailure counts a skipped full-record batch.
func ObserveBatchFailure() {
	Init()
	syncBatchFailuresTotal.Inc()
}

// ObserveInserted adds newly inserted offers.
func ObserveInserted(n int) {
	Init()
	if n > 0 {
		syncOffersInsertedTotal.Add(float64(n))
	}
}

// ObserveAvailabilityChanges adds flips to available and to sold out.
func ObserveAvailabilityChanges(toAvailable, toSoldOut int) {
	Init()
	if toAvailable > 0 {
		syncAvailabilityChanges.WithLabelValues("available").Add(float64(toAvailable))
	}
	if toSoldOut > 0 {
		syncAvailabilityChanges.WithLabelValues("sold_out").Add(float64(toSoldOut))
	}
}

// ObserveGuardTrip counts a suppressed availability update.
func ObserveGuardTrip(reason string) {
	Init()
	syncGuardTripsTotal.WithLabelValues(reason).Inc()
}

// ObserveMarketplaceRequest records one marketplace API call.
func ObserveMarketplaceRequest(endpoint string, err error, duration time.Duration) {
	Init()
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	marketplaceRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	marketplaceRequestDurations.WithLabelValues(endpoint).Observe(duration.Seconds())
}
