package analysis

import "github.com/kyungseok-lee/go-gc-heuristic/pkg/types"

// TaskSelector picks the tasks of a job that a heuristic inspects
type TaskSelector interface {
	Tasks(job *types.JobExecutionRecord) []types.TaskSample
}

// TaskSelectorFunc adapts a plain function to TaskSelector
type TaskSelectorFunc func(job *types.JobExecutionRecord) []types.TaskSample

// Tasks calls f(job)
func (f TaskSelectorFunc) Tasks(job *types.JobExecutionRecord) []types.TaskSample {
	return f(job)
}

// MapperTasks selects the map phase tasks
type MapperTasks struct{}

func (MapperTasks) Tasks(job *types.JobExecutionRecord) []types.TaskSample {
	return job.Mappers
}

// ReducerTasks selects the reduce phase tasks
type ReducerTasks struct{}

func (ReducerTasks) Tasks(job *types.JobExecutionRecord) []types.TaskSample {
	return job.Reducers
}
