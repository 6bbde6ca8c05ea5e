// Package observability exposes heuristic evaluation results as Prometheus metrics.
package observability

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

// Recorder counts heuristic outcomes per severity.
// It implements analysis.OutcomeObserver.
type Recorder struct {
	evaluations   *prometheus.CounterVec
	notApplicable *prometheus.CounterVec
	gcRatio       *prometheus.HistogramVec
}

// NewRecorder registers the evaluation collectors on reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gc_heuristic_evaluations_total",
			Help: "Number of jobs evaluated by a GC heuristic, by resulting severity",
		}, []string{"heuristic", "severity"}),
		notApplicable: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gc_heuristic_not_applicable_total",
			Help: "Number of jobs a GC heuristic declined to evaluate",
		}, []string{"heuristic"}),
		gcRatio: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gc_heuristic_gc_cpu_ratio",
			Help:    "Average task GC time over average task CPU time per evaluated job",
			Buckets: []float64{0.005, 0.01, 0.02, 0.03, 0.04, 0.05, 0.1, 0.25},
		}, []string{"heuristic"}),
	}
}

// ObserveOutcome records one evaluated job
func (r *Recorder) ObserveOutcome(outcome types.HeuristicOutcome, gcRatio float64) {
	r.evaluations.WithLabelValues(outcome.HeuristicName, outcome.Severity.String()).Inc()
	r.gcRatio.WithLabelValues(outcome.HeuristicName).Observe(gcRatio)
}

// ObserveNotApplicable records a job the heuristic did not apply to
func (r *Recorder) ObserveNotApplicable(heuristic string) {
	r.notApplicable.WithLabelValues(heuristic).Inc()
}

// WriteText writes every metric family gathered from g in the text exposition format
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
