package types

// CounterName identifies a counter collected for a task
type CounterName string

// CounterData maps counter names to their values
type CounterData map[CounterName]int64

// Get returns the value of a counter, or 0 when it was not collected.
func (c CounterData) Get(name CounterName) int64 {
	return c[name]
}

// TaskSample represents one worker task's measurements
type TaskSample struct {
	ID string `json:"id" yaml:"id"`

	// Sampled is set when the task was selected for detailed counter collection.
	Sampled bool `json:"sampled" yaml:"sampled"`

	TotalRuntimeMs int64       `json:"runtime_ms" yaml:"runtime_ms"`
	Counters       CounterData `json:"counters" yaml:"counters"`
}

// GCMs returns the task's garbage collection time in milliseconds
func (t TaskSample) GCMs() int64 {
	return t.Counters.Get(CounterGCMilliseconds)
}

// CPUMs returns the task's CPU time in milliseconds
func (t TaskSample) CPUMs() int64 {
	return t.Counters.Get(CounterCPUMilliseconds)
}

// JobExecutionRecord represents a completed or failed job and its tasks
type JobExecutionRecord struct {
	ID        string       `json:"id" yaml:"id"`
	Name      string       `json:"name,omitempty" yaml:"name,omitempty"`
	Succeeded bool         `json:"succeeded" yaml:"succeeded"`
	Mappers   []TaskSample `json:"mappers,omitempty" yaml:"mappers,omitempty"`
	Reducers  []TaskSample `json:"reducers,omitempty" yaml:"reducers,omitempty"`
}
