package reporting

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"

	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

// Report generation errors
var (
	ErrNoReports = errors.New("no job reports available")
)

// builderPool provides reusable strings.Builder to reduce allocations
var builderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	if b.Cap() > 64*1024 { // Don't pool very large builders
		return
	}
	builderPool.Put(b)
}

// Reporter renders heuristic outcomes for a set of jobs.
type Reporter struct {
	reports []types.JobReport
}

// New creates a new reporter for the given job reports
func New(reports []types.JobReport) *Reporter {
	return &Reporter{reports: reports}
}

// GenerateTextReport generates a human-readable text report.
// Every outcome is listed with its details, labels aligned per outcome.
func (r *Reporter) GenerateTextReport(w io.Writer) error {
	if len(r.reports) == 0 {
		return ErrNoReports
	}

	b := getBuilder()
	defer putBuilder(b)
	b.Grow(256 * len(r.reports))

	b.WriteString("=== GC Heuristic Report ===\n\n")

	for _, report := range r.reports {
		b.WriteString("Job ")
		b.WriteString(report.JobID)
		if report.JobName != "" {
			b.WriteString(" (")
			b.WriteString(report.JobName)
			b.WriteString(")")
		}
		b.WriteString("\n")

		if !report.Succeeded {
			b.WriteString("  not applicable: job did not succeed\n\n")
			continue
		}

		for _, outcome := range report.Outcomes {
			b.WriteString("  ")
			b.WriteString(outcome.HeuristicName)
			b.WriteString(": ")
			b.WriteString(outcome.Severity.String())
			b.WriteString("\n")

			width := labelWidth(outcome.Details)
			for _, d := range outcome.Details {
				b.WriteString("    ")
				b.WriteString(runewidth.FillRight(d.Name, width))
				b.WriteString("  ")
				b.WriteString(d.Value)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func labelWidth(details []types.Detail) int {
	width := 0
	for _, d := range details {
		if n := runewidth.StringWidth(d.Name); n > width {
			width = n
		}
	}
	return width
}

// JSONReportOptions configures JSON report generation
type JSONReportOptions struct {
	// Indent enables pretty printing with indentation
	Indent bool
	// SkipNotApplicable omits jobs that produced no outcome
	SkipNotApplicable bool
}

// GenerateJSONReport generates a JSON report
func (r *Reporter) GenerateJSONReport(w io.Writer, indent bool) error {
	return r.GenerateJSONReportWithOptions(w, JSONReportOptions{Indent: indent})
}

// GenerateJSONReportWithOptions generates a JSON report with configurable options
func (r *Reporter) GenerateJSONReportWithOptions(w io.Writer, opts JSONReportOptions) error {
	jobs := r.reports
	if opts.SkipNotApplicable {
		jobs = make([]types.JobReport, 0, len(r.reports))
		for _, report := range r.reports {
			if len(report.Outcomes) > 0 {
				jobs = append(jobs, report)
			}
		}
	}

	report := struct {
		Jobs    []types.JobReport `json:"jobs"`
		Summary map[string]int    `json:"summary"`
	}{
		Jobs:    jobs,
		Summary: r.severityCounts(),
	}

	encoder := json.NewEncoder(w)
	if opts.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}

// GenerateTableReport generates one row per job and heuristic
func (r *Reporter) GenerateTableReport(w io.Writer) error {
	if len(r.reports) == 0 {
		return ErrNoReports
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	b := getBuilder()
	defer putBuilder(b)

	b.WriteString("JOB\tHEURISTIC\tSEVERITY\tTASKS\tAVG RUNTIME (ms)\tAVG CPU (ms)\tAVG GC (ms)\tGC/CPU\n")

	for _, report := range r.reports {
		for _, outcome := range report.Outcomes {
			b.WriteString(report.JobID)
			b.WriteByte('\t')
			b.WriteString(outcome.HeuristicName)
			b.WriteByte('\t')
			b.WriteString(outcome.Severity.String())
			for _, label := range []string{
				types.DetailNumberOfTasks,
				types.DetailAvgRuntime,
				types.DetailAvgCPUTime,
				types.DetailAvgGCTime,
				types.DetailGCCPURatio,
			} {
				value, _ := outcome.Detail(label)
				b.WriteByte('\t')
				b.WriteString(value)
			}
			b.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(tw, b.String()); err != nil {
		return err
	}
	return tw.Flush()
}

// GenerateSummaryReport generates a concise per-severity summary
func (r *Reporter) GenerateSummaryReport(w io.Writer) error {
	if len(r.reports) == 0 {
		return ErrNoReports
	}

	b := getBuilder()
	defer putBuilder(b)

	b.WriteString("GC Heuristic Summary\n")
	b.WriteString("====================\n\n")

	notApplicable := 0
	for _, report := range r.reports {
		if len(report.Outcomes) == 0 {
			notApplicable++
		}
	}

	b.WriteString("Jobs: ")
	b.WriteString(strconv.Itoa(len(r.reports)))
	b.WriteString(" | Not applicable: ")
	b.WriteString(strconv.Itoa(notApplicable))
	b.WriteString("\n")

	counts := r.severityCounts()
	for i, sev := range types.Severities() {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(sev.String())
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(counts[sev.String()]))
	}
	b.WriteString("\n\n")

	if worst := r.worstSeverity(); worst > types.SeverityNone {
		b.WriteString("Worst severity: ")
		b.WriteString(worst.String())
		b.WriteString("\n")
	} else {
		b.WriteString("No GC issues detected\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// severityCounts counts outcomes per severity name
func (r *Reporter) severityCounts() map[string]int {
	counts := make(map[string]int, len(types.Severities()))
	for _, sev := range types.Severities() {
		counts[sev.String()] = 0
	}
	for _, report := range r.reports {
		for _, outcome := range report.Outcomes {
			counts[outcome.Severity.String()]++
		}
	}
	return counts
}

func (r *Reporter) worstSeverity() types.Severity {
	worst := types.SeverityNone
	for _, report := range r.reports {
		worst = types.MaxSeverity(worst, report.MaxSeverity())
	}
	return worst
}
