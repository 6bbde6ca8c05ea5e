package analysis

import (
	"log/slog"

	"github.com/kyungseok-lee/go-gc-heuristic/internal/aggregate"
	"github.com/kyungseok-lee/go-gc-heuristic/internal/threshold"
	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

// Heuristic evaluates a job and reports a severity-tagged outcome.
// ok is false when the heuristic does not apply to the job.
type Heuristic interface {
	Name() string
	Apply(job *types.JobExecutionRecord) (outcome types.HeuristicOutcome, ok bool)
}

// OutcomeObserver is notified of every evaluation
type OutcomeObserver interface {
	ObserveOutcome(outcome types.HeuristicOutcome, gcRatio float64)
	ObserveNotApplicable(heuristic string)
}

// Assessment is the breakdown of a severity decision
type Assessment struct {
	GCRatio         float64
	RatioSeverity   types.Severity
	RuntimeSeverity types.Severity
	Severity        types.Severity
}

// Assess classifies aggregated task stats against both bands.
// The result is the lower of the ratio and runtime severities.
func Assess(stats aggregate.Stats, bands threshold.Bands) Assessment {
	a := Assessment{GCRatio: stats.GCRatio()}
	if stats.Count == 0 {
		return a
	}

	a.RatioSeverity = bands.GCRatio.Classify(a.GCRatio)
	a.RuntimeSeverity = bands.RuntimeMs.Classify(float64(stats.AvgRuntimeMs))
	a.Severity = types.MinSeverity(a.RatioSeverity, a.RuntimeSeverity)
	return a
}

// GCHeuristic analyses garbage collection efficiency of a job's tasks
type GCHeuristic struct {
	name     string
	bands    threshold.Bands
	selector TaskSelector
	logger   *slog.Logger
	observer OutcomeObserver
}

var _ Heuristic = (*GCHeuristic)(nil)

// Option configures a GCHeuristic
type Option func(*GCHeuristic)

// WithLogger sets the logger used at construction and during evaluation
func WithLogger(logger *slog.Logger) Option {
	return func(h *GCHeuristic) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithObserver registers an observer for evaluation results
func WithObserver(observer OutcomeObserver) Option {
	return func(h *GCHeuristic) {
		h.observer = observer
	}
}

// New creates a GC heuristic. Threshold params are resolved once here;
// the heuristic is immutable and safe for concurrent use.
// A nil selector inspects the map tasks.
func New(name string, params map[string]string, selector TaskSelector, opts ...Option) *GCHeuristic {
	if selector == nil {
		selector = MapperTasks{}
	}
	h := &GCHeuristic{
		name:     name,
		selector: selector,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.bands = threshold.Load(name, params, h.logger)
	return h
}

// NewMapperGC creates the GC heuristic for map tasks
func NewMapperGC(params map[string]string, opts ...Option) *GCHeuristic {
	return New(types.MapperGCHeuristicName, params, MapperTasks{}, opts...)
}

// NewReducerGC creates the GC heuristic for reduce tasks
func NewReducerGC(params map[string]string, opts ...Option) *GCHeuristic {
	return New(types.ReducerGCHeuristicName, params, ReducerTasks{}, opts...)
}

// Name returns the heuristic name
func (h *GCHeuristic) Name() string {
	return h.name
}

// Bands returns the effective thresholds
func (h *GCHeuristic) Bands() threshold.Bands {
	return h.bands
}

// Apply evaluates the job. Failed jobs are not applicable.
func (h *GCHeuristic) Apply(job *types.JobExecutionRecord) (types.HeuristicOutcome, bool) {
	if job == nil || !job.Succeeded {
		if h.observer != nil {
			h.observer.ObserveNotApplicable(h.name)
		}
		return types.HeuristicOutcome{}, false
	}

	stats := aggregate.Summarize(h.selector.Tasks(job))
	assessment := Assess(stats, h.bands)

	h.logger.Debug("evaluated job",
		"heuristic", h.name,
		"job", job.ID,
		"tasks", stats.Count,
		"ratio", assessment.GCRatio,
		"ratio_severity", assessment.RatioSeverity,
		"runtime_severity", assessment.RuntimeSeverity,
		"severity", assessment.Severity)

	outcome := buildOutcome(h.name, stats, assessment)
	if h.observer != nil {
		h.observer.ObserveOutcome(outcome, assessment.GCRatio)
	}
	return outcome, true
}

// buildOutcome assembles the outcome details in their fixed order.
// "Number of tasks" is the sampled count the averages were taken over,
// not the total number of tasks in the phase.
func buildOutcome(name string, stats aggregate.Stats, a Assessment) types.HeuristicOutcome {
	outcome := types.NewHeuristicOutcome(name, a.Severity, 5)
	outcome.AddDetail(types.DetailNumberOfTasks, types.FormatCount(stats.Count))
	outcome.AddDetail(types.DetailAvgRuntime, types.FormatMillis(stats.AvgRuntimeMs))
	outcome.AddDetail(types.DetailAvgCPUTime, types.FormatMillis(stats.AvgCPUMs))
	outcome.AddDetail(types.DetailAvgGCTime, types.FormatMillis(stats.AvgGCMs))
	outcome.AddDetail(types.DetailGCCPURatio, types.FormatRatio(a.GCRatio))
	return outcome
}
