// Package gcheuristic evaluates how much time a completed MapReduce job's
// tasks spent in garbage collection relative to CPU time.
//
// Each heuristic averages runtime, CPU and GC time over the sampled tasks it
// selects, classifies the GC/CPU ratio and the average runtime against two
// ascending threshold bands, and reports the less severe of the two.
//
// Basic usage:
//
//	h := gcheuristic.NewMapperGC(map[string]string{
//		"gc_ratio_severity": "0.01,0.02,0.03,0.04",
//	})
//
//	outcome, ok := h.Apply(job)
//	if !ok {
//		// job failed, heuristic not meaningful
//	}
//	fmt.Println(outcome.Severity)
//
// For many jobs and heuristics at once:
//
//	reports, err := gcheuristic.EvaluateAll(ctx, heuristics, jobs, 8)
package gcheuristic

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/kyungseok-lee/go-gc-heuristic/internal/analysis"
	"github.com/kyungseok-lee/go-gc-heuristic/internal/reporting"
	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

// Re-export commonly used types for convenience
type (
	Severity           = types.Severity
	TaskSample         = types.TaskSample
	CounterData        = types.CounterData
	JobExecutionRecord = types.JobExecutionRecord
	HeuristicOutcome   = types.HeuristicOutcome
	Detail             = types.Detail
	JobReport          = types.JobReport

	Heuristic    = analysis.Heuristic
	GCHeuristic  = analysis.GCHeuristic
	TaskSelector = analysis.TaskSelector
	Option       = analysis.Option
)

// Re-export severities
const (
	SeverityNone     = types.SeverityNone
	SeverityLow      = types.SeverityLow
	SeverityModerate = types.SeverityModerate
	SeveritySevere   = types.SeveritySevere
	SeverityCritical = types.SeverityCritical
)

// DefaultWorkers bounds concurrent job evaluations when no limit is given
const DefaultWorkers = 4

// NewMapperGC creates the GC heuristic for map tasks
func NewMapperGC(params map[string]string, opts ...Option) *GCHeuristic {
	return analysis.NewMapperGC(params, opts...)
}

// NewReducerGC creates the GC heuristic for reduce tasks
func NewReducerGC(params map[string]string, opts ...Option) *GCHeuristic {
	return analysis.NewReducerGC(params, opts...)
}

// New creates a GC heuristic over the tasks chosen by selector
func New(name string, params map[string]string, selector TaskSelector, opts ...Option) *GCHeuristic {
	return analysis.New(name, params, selector, opts...)
}

// Option constructors
var (
	WithLogger   = analysis.WithLogger
	WithObserver = analysis.WithObserver
)

// Evaluate applies every heuristic to one job, keeping applicable outcomes
func Evaluate(heuristics []Heuristic, job *JobExecutionRecord) JobReport {
	report := JobReport{JobID: job.ID, JobName: job.Name, Succeeded: job.Succeeded}
	for _, h := range heuristics {
		if outcome, ok := h.Apply(job); ok {
			report.Outcomes = append(report.Outcomes, outcome)
		}
	}
	return report
}

// EvaluateAll evaluates jobs concurrently with at most workers in flight.
// Reports are returned in job order. Evaluation stops early when ctx is done.
func EvaluateAll(ctx context.Context, heuristics []Heuristic, jobs []JobExecutionRecord, workers int) ([]JobReport, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	reports := make([]JobReport, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = Evaluate(heuristics, &jobs[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

// GenerateTextReport writes a detailed text report
func GenerateTextReport(reports []JobReport, w io.Writer) error {
	return reporting.New(reports).GenerateTextReport(w)
}

// GenerateJSONReport writes a JSON report
func GenerateJSONReport(reports []JobReport, w io.Writer, indent bool) error {
	return reporting.New(reports).GenerateJSONReport(w, indent)
}

// GenerateSummaryReport writes a per-severity summary
func GenerateSummaryReport(reports []JobReport, w io.Writer) error {
	return reporting.New(reports).GenerateSummaryReport(w)
}
