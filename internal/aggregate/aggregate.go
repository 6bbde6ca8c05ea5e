// Package aggregate reduces per-task counters to job level averages.
package aggregate

import "github.com/kyungseok-lee/go-gc-heuristic/pkg/types"

// Stats holds averages over the sampled tasks of a job
type Stats struct {
	Count        int
	AvgRuntimeMs int64
	AvgCPUMs     int64
	AvgGCMs      int64
}

// Summarize averages runtime, CPU and GC time over sampled tasks only.
// Averages are truncated integers and are 0 when no task is sampled.
func Summarize(tasks []types.TaskSample) Stats {
	var totalRuntime, totalCPU, totalGC int64
	count := 0

	for _, task := range tasks {
		if !task.Sampled {
			continue
		}
		totalRuntime += task.TotalRuntimeMs
		totalCPU += task.CPUMs()
		totalGC += task.GCMs()
		count++
	}

	return Stats{
		Count:        count,
		AvgRuntimeMs: average(totalRuntime, count),
		AvgCPUMs:     average(totalCPU, count),
		AvgGCMs:      average(totalGC, count),
	}
}

// GCRatio returns average GC time over average CPU time, or 0 when no CPU time was recorded
func (s Stats) GCRatio() float64 {
	if s.AvgCPUMs == 0 {
		return 0
	}
	return float64(s.AvgGCMs) / float64(s.AvgCPUMs)
}

func average(total int64, count int) int64 {
	if count == 0 {
		return 0
	}
	return total / int64(count)
}
