package types

// Configuration parameter keys recognized by the GC heuristics.
const (
	// ParamGCRatioSeverity holds 4 comma separated GC/CPU ratio breakpoints.
	ParamGCRatioSeverity = "gc_ratio_severity"
	// ParamRuntimeSeverity holds 4 comma separated task runtime breakpoints in minutes.
	ParamRuntimeSeverity = "runtime_severity_in_min"
)

// Default heuristic names
const (
	MapperGCHeuristicName  = "Mapper GC"
	ReducerGCHeuristicName = "Reducer GC"
)

// Counter names read from a task's counter data
const (
	CounterGCMilliseconds  CounterName = "GC_MILLISECONDS"
	CounterCPUMilliseconds CounterName = "CPU_MILLISECONDS"
)

// Detail labels, in the order they appear on an outcome
const (
	DetailNumberOfTasks = "Number of tasks"
	DetailAvgRuntime    = "Avg task runtime (ms)"
	DetailAvgCPUTime    = "Avg task CPU time (ms)"
	DetailAvgGCTime     = "Avg task GC time (ms)"
	DetailGCCPURatio    = "Task GC/CPU ratio"
)

// MinuteInMs is the number of milliseconds in one minute.
const MinuteInMs = 60 * 1000

// BandSize is the number of breakpoints in a threshold band.
const BandSize = 4

// Default threshold breakpoints
var (
	// DefaultGCRatioLimits are GC time / CPU time breakpoints.
	DefaultGCRatioLimits = [BandSize]float64{0.01, 0.02, 0.03, 0.04}
	// DefaultRuntimeLimitsMin are task runtime breakpoints in minutes.
	DefaultRuntimeLimitsMin = [BandSize]float64{5, 10, 12, 15}
)
