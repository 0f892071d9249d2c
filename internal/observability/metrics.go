package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes for RequestsTotal.
const (
	OutcomeOK           = "ok"
	OutcomeBadCommand   = "bad_command"
	OutcomeUnknownArea  = "unknown_area"
	OutcomeFetchFailed  = "fetch_failed"
	OutcomeRenderFailed = "render_failed"
)

// Metrics holds the Prometheus collectors for the report pipeline.
type Metrics struct {
	RequestsTotal     *prometheus.CounterVec // labels: outcome
	FetchDuration     prometheus.Histogram
	FetchErrors       prometheus.Counter
	PageCache         *prometheus.CounterVec // labels: result={hit,miss,error}
	ProblemsPerReport prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RequestsTotal,
		m.FetchDuration,
		m.FetchErrors,
		m.PageCache,
		m.ProblemsPerReport,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lavinbot",
			Name:      "requests_total",
			Help:      "Report requests by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lavinbot",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of forecast page fetches, including retries.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lavinbot",
			Name:      "fetch_errors_total",
			Help:      "Forecast page fetches that failed after all retries.",
		}),
		PageCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lavinbot",
			Name:      "page_cache_total",
			Help:      "Forecast page cache lookups by result.",
		}, []string{"result"}),
		ProblemsPerReport: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lavinbot",
			Name:      "problems_reported",
			Help:      "Number of avalanche problems per rendered report.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		}),
	}
}
