package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Report outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeTimeout     = "timeout"
)

// Metrics provides observability for population reports and their record
// sources. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Report latency by kind: continents, regions, countries, lookup, languages
	ReportLatency *prometheus.HistogramVec

	// Report outcomes by kind and outcome
	ReportOutcome *prometheus.CounterVec

	// Record source fetch latency by set: cities, countries, languages
	FetchLatency *prometheus.HistogramVec

	// Failed fetches by set
	FetchFailures *prometheus.CounterVec

	// Record cache lookups by set and result (hit, miss)
	CacheLookups *prometheus.CounterVec
}

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReportLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "worldpop_report_duration_seconds",
			Help:    "Duration of population reports including record fetches",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"kind"}),

		ReportOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worldpop_report_outcomes_total",
			Help: "Total population reports by kind and outcome",
		}, []string{"kind", "outcome"}),

		FetchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "worldpop_source_fetch_duration_seconds",
			Help:    "Duration of record source fetches by record set",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"set"}),

		FetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worldpop_source_fetch_failures_total",
			Help: "Total failed record source fetches by record set",
		}, []string{"set"}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worldpop_record_cache_lookups_total",
			Help: "Record cache lookups by record set and result",
		}, []string{"set", "result"}),
	}
}

// ObserveReport records the duration and outcome of one report.
func (m *Metrics) ObserveReport(kind, outcome string, d time.Duration) {
	if m != nil {
		m.ReportLatency.WithLabelValues(kind).Observe(d.Seconds())
		m.ReportOutcome.WithLabelValues(kind, outcome).Inc()
	}
}

// ObserveFetch records one record source fetch.
func (m *Metrics) ObserveFetch(set string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.FetchLatency.WithLabelValues(set).Observe(d.Seconds())
	if err != nil {
		m.FetchFailures.WithLabelValues(set).Inc()
	}
}

// RecordCacheHit counts a record set served from cache.
func (m *Metrics) RecordCacheHit(set string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(set, "hit").Inc()
	}
}

// RecordCacheMiss counts a record set that had to be fetched.
func (m *Metrics) RecordCacheMiss(set string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(set, "miss").Inc()
	}
}
