package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

// envConfigPath names the environment variable holding the default config file
const envConfigPath = "GC_HEURISTIC_CONFIG"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gcheuristic",
		Short: "Classify GC overhead of completed MapReduce jobs",
		Long: `gcheuristic evaluates exported MapReduce job records and reports how much
time their tasks spent in garbage collection relative to CPU time.

Thresholds are read from a heuristic configuration file; without one the
built-in Mapper GC and Reducer GC heuristics are used with default bands.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newEvaluateCommand())
	cmd.AddCommand(newThresholdsCommand())

	return cmd
}

// defaultConfigPath returns the config path from the environment, loading .env first
func defaultConfigPath() string {
	_ = godotenv.Load()
	return os.Getenv(envConfigPath)
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
