package expiration

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus metrics for expiration sweeps.
type Metrics struct {
	sweeps        *prometheus.CounterVec
	scanned       prometheus.Counter
	stamped       prometheus.Counter
	cleared       prometheus.Counter
	purged        prometheus.Counter
	sweepDuration prometheus.Histogram
}

// NewMetrics creates sweep metrics registered on the given registerer.
// A nil registerer falls back to the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		sweeps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "augurk_expiration_sweeps_total",
				Help: "Total number of expiration sweeps performed",
			},
			[]string{"result"},
		),

		scanned: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "augurk_expiration_documents_scanned_total",
				Help: "Total number of documents scanned by expiration sweeps",
			},
		),

		stamped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "augurk_expiration_documents_stamped_total",
				Help: "Total number of documents stamped with an upload-date marker",
			},
		),

		cleared: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "augurk_expiration_markers_cleared_total",
				Help: "Total number of expiration markers removed from documents",
			},
		),

		purged: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "augurk_expiration_documents_purged_total",
				Help: "Total number of expired documents deleted",
			},
		),

		sweepDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "augurk_expiration_sweep_duration_seconds",
				Help:    "Duration of expiration sweeps in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *Metrics) observe(result SweepResult, seconds float64, err error) {
	if err != nil {
		m.sweeps.WithLabelValues("error").Inc()
	} else {
		m.sweeps.WithLabelValues("success").Inc()
	}

	m.scanned.Add(float64(result.Scanned))
	m.stamped.Add(float64(result.Stamped))
	m.cleared.Add(float64(result.Cleared))
	m.purged.Add(float64(result.Purged))
	m.sweepDuration.Observe(seconds)
}
