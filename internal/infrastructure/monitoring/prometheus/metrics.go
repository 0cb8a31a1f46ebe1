// Package prometheus exposes the service's Prometheus metric set behind a
// single Metrics struct registered on a private registry, so tests can create
// isolated instances without hitting the global default registry.
package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// namespace prefixes every metric emitted by the service.
const namespace = "marksentry"

// Default histogram buckets.
var (
	httpDurationBuckets    = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	compareDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	llmDurationBuckets     = []float64{.5, 1, 2, 5, 10, 30, 60, 120}
)

// Metrics holds every metric the service emits.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Comparison engine
	ComparisonsTotal   prometheus.Counter
	ComparisonDuration prometheus.Histogram
	ComparisonMatches  prometheus.Histogram
	CorpusSize         prometheus.Gauge

	// Document extraction
	ExtractionsTotal   *prometheus.CounterVec
	ExtractionDuration *prometheus.HistogramVec
	ExtractionFailures *prometheus.CounterVec

	// Ledger
	LedgerRecords prometheus.Gauge
	LedgerReloads prometheus.Counter
}

// New constructs a Metrics instance on its own registry, with process and Go
// runtime collectors attached.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests served.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration.",
			Buckets:   httpDurationBuckets,
		}, []string{"method", "path"}),

		ComparisonsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Completed corpus comparison passes.",
		}),
		ComparisonDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "comparison_duration_seconds",
			Help:      "Wall time of one corpus comparison pass.",
			Buckets:   compareDurationBuckets,
		}),
		ComparisonMatches: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "comparison_matches",
			Help:      "Candidates kept above threshold per comparison pass.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		CorpusSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "comparison_corpus_size",
			Help:      "Stored records in the corpus snapshot of the last comparison.",
		}),

		ExtractionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Document extraction calls by source kind.",
		}, []string{"kind"}),
		ExtractionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Duration of LLM extraction calls.",
			Buckets:   llmDurationBuckets,
		}, []string{"kind"}),
		ExtractionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_failures_total",
			Help:      "Failed document extraction calls by source kind.",
		}, []string{"kind"}),

		LedgerRecords: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_records",
			Help:      "Records currently loaded from the ledger file.",
		}),
		LedgerReloads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_reloads_total",
			Help:      "Times the ledger file was (re)loaded.",
		}),
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint for this
// instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
