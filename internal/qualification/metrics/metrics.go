package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the qualification module.
type Metrics struct {
	// Per-collection recompute latency
	RecomputeDuration prometheus.Histogram

	// Verdicts written back, by status
	Verdicts *prometheus.CounterVec

	// Recomputes that failed and left cached state untouched
	RecomputeFailures prometheus.Counter

	// Recipes evaluated across all recomputes
	ItemsEvaluated prometheus.Counter

	// Full sweep latency
	SweepDuration prometheus.Histogram
}

// New creates a Metrics instance with all qualification metrics registered.
func New() *Metrics {
	return &Metrics{
		RecomputeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tastebook_qualification_recompute_duration_seconds",
			Help:    "Duration of a single collection recompute",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tastebook_qualification_verdicts_total",
			Help: "Qualification verdicts written back, by status",
		}, []string{"status"}), // status: "qualified", "near", "unqualified"

		RecomputeFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tastebook_qualification_recompute_failures_total",
			Help: "Recomputes that failed without touching cached aggregates",
		}),

		ItemsEvaluated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tastebook_qualification_items_evaluated_total",
			Help: "Recipes evaluated across all recomputes",
		}),

		SweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tastebook_qualification_sweep_duration_seconds",
			Help:    "Duration of a full batch sweep",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}

// ObserveRecompute records one collection recompute.
func (m *Metrics) ObserveRecompute(d time.Duration, status string, items int) {
	if m == nil {
		return
	}
	m.RecomputeDuration.Observe(d.Seconds())
	m.Verdicts.WithLabelValues(status).Inc()
	m.ItemsEvaluated.Add(float64(items))
}

// IncrementFailure records a recompute that left cached state untouched.
func (m *Metrics) IncrementFailure() {
	if m != nil {
		m.RecomputeFailures.Inc()
	}
}

// ObserveSweep records a full batch sweep.
func (m *Metrics) ObserveSweep(d time.Duration) {
	if m != nil {
		m.SweepDuration.Observe(d.Seconds())
	}
}
