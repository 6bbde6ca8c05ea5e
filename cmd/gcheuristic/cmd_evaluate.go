package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/kyungseok-lee/go-gc-heuristic/internal/analysis"
	"github.com/kyungseok-lee/go-gc-heuristic/internal/config"
	"github.com/kyungseok-lee/go-gc-heuristic/internal/jobdata"
	"github.com/kyungseok-lee/go-gc-heuristic/internal/observability"
	"github.com/kyungseok-lee/go-gc-heuristic/internal/reporting"
	"github.com/kyungseok-lee/go-gc-heuristic/pkg/gcheuristic"
	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

type evaluateOptions struct {
	jobsPath   string
	configPath string
	format     string
	workers    int
	metricsOut string
	failOn     string
}

func newEvaluateCommand() *cobra.Command {
	opts := &evaluateOptions{}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate job records against the configured GC heuristics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath == "" {
				opts.configPath = defaultConfigPath()
			}
			return runEvaluate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.jobsPath, "jobs", "", "YAML or JSON file with job records (required)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Heuristic configuration file (defaults to $"+envConfigPath+")")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, table, summary or json")
	cmd.Flags().IntVar(&opts.workers, "workers", gcheuristic.DefaultWorkers, "Maximum jobs evaluated concurrently")
	cmd.Flags().StringVar(&opts.metricsOut, "metrics-out", "", "Write Prometheus metrics in text format to this file")
	cmd.Flags().StringVar(&opts.failOn, "fail-on", "", "Exit with code 1 when any outcome is at or above this severity")
	_ = cmd.MarkFlagRequired("jobs")

	return cmd
}

func runEvaluate(cmd *cobra.Command, opts *evaluateOptions) error {
	var failOn types.Severity
	if opts.failOn != "" {
		sev, err := types.ParseSeverity(opts.failOn)
		if err != nil {
			return fmt.Errorf("invalid --fail-on: %w", err)
		}
		failOn = sev
	}

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}

	jobs, err := jobdata.LoadFile(opts.jobsPath)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	recorder := observability.NewRecorder(registry)

	built, err := config.Build(cfg,
		analysis.WithLogger(slog.Default()),
		analysis.WithObserver(recorder))
	if err != nil {
		return fmt.Errorf("building heuristics: %w", err)
	}

	heuristics := make([]gcheuristic.Heuristic, len(built))
	for i, h := range built {
		heuristics[i] = h
	}

	slog.Debug("evaluating jobs", "jobs", len(jobs), "heuristics", len(heuristics), "workers", opts.workers)

	reports, err := gcheuristic.EvaluateAll(cmd.Context(), heuristics, jobs, opts.workers)
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), opts.format, reports); err != nil {
		return err
	}

	if opts.metricsOut != "" {
		if err := writeMetrics(opts.metricsOut, registry); err != nil {
			return err
		}
	}

	if opts.failOn != "" {
		if n := countAtOrAbove(reports, failOn); n > 0 {
			return &SeverityThresholdError{
				Message: fmt.Sprintf("%d outcome(s) at or above %s", n, failOn),
			}
		}
	}
	return nil
}

func writeReport(w io.Writer, format string, reports []types.JobReport) error {
	reporter := reporting.New(reports)
	switch format {
	case "text":
		return reporter.GenerateTextReport(w)
	case "table":
		return reporter.GenerateTableReport(w)
	case "summary":
		return reporter.GenerateSummaryReport(w)
	case "json":
		return reporter.GenerateJSONReport(w, true)
	default:
		return fmt.Errorf("unknown format %q (expected text, table, summary or json)", format)
	}
}

func writeMetrics(path string, g prometheus.Gatherer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating metrics file: %w", err)
	}
	if err := observability.WriteText(f, g); err != nil {
		f.Close()
		return fmt.Errorf("writing metrics: %w", err)
	}
	return f.Close()
}

func countAtOrAbove(reports []types.JobReport, sev types.Severity) int {
	n := 0
	for _, report := range reports {
		for _, outcome := range report.Outcomes {
			if outcome.Severity >= sev {
				n++
			}
		}
	}
	return n
}
