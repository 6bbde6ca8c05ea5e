package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kyungseok-lee/go-gc-heuristic/internal/analysis"
	"github.com/kyungseok-lee/go-gc-heuristic/internal/config"
	"github.com/kyungseok-lee/go-gc-heuristic/internal/threshold"
	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

func newThresholdsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "thresholds",
		Short: "Print the effective threshold bands of each configured heuristic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = defaultConfigPath()
			}
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			heuristics, err := config.Build(cfg, analysis.WithLogger(slog.Default()))
			if err != nil {
				return fmt.Errorf("building heuristics: %w", err)
			}
			return printThresholds(cmd.OutOrStdout(), heuristics)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Heuristic configuration file (defaults to $"+envConfigPath+")")
	return cmd
}

func printThresholds(w io.Writer, heuristics []*analysis.GCHeuristic) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HEURISTIC\tGC/CPU RATIO\tRUNTIME (min)")
	for _, h := range heuristics {
		bands := h.Bands()
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			h.Name(),
			bands.GCRatio,
			inMinutes(bands.RuntimeMs))
	}
	return tw.Flush()
}

func inMinutes(ms threshold.Band) threshold.Band {
	var minutes threshold.Band
	for i, v := range ms {
		minutes[i] = v / types.MinuteInMs
	}
	return minutes
}
