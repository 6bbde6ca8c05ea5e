package types

// Detail is a labeled value attached to an outcome
type Detail struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// HeuristicOutcome is the result of applying a heuristic to one job
type HeuristicOutcome struct {
	HeuristicName string   `json:"heuristic" yaml:"heuristic"`
	Severity      Severity `json:"severity" yaml:"severity"`
	Details       []Detail `json:"details" yaml:"details"`
}

// NewHeuristicOutcome creates an outcome with room for the given number of details
func NewHeuristicOutcome(name string, severity Severity, capacity int) HeuristicOutcome {
	return HeuristicOutcome{
		HeuristicName: name,
		Severity:      severity,
		Details:       make([]Detail, 0, capacity),
	}
}

// AddDetail appends a labeled value
func (o *HeuristicOutcome) AddDetail(name, value string) {
	o.Details = append(o.Details, Detail{Name: name, Value: value})
}

// Detail returns the value for a label and whether it is present
func (o HeuristicOutcome) Detail(name string) (string, bool) {
	for _, d := range o.Details {
		if d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}

// JobReport groups the applicable outcomes for one job
type JobReport struct {
	JobID     string             `json:"job_id" yaml:"job_id"`
	JobName   string             `json:"job_name,omitempty" yaml:"job_name,omitempty"`
	Succeeded bool               `json:"succeeded" yaml:"succeeded"`
	Outcomes  []HeuristicOutcome `json:"outcomes" yaml:"outcomes"`
}

// MaxSeverity returns the most severe outcome severity in the report
func (r JobReport) MaxSeverity() Severity {
	worst := SeverityNone
	for _, o := range r.Outcomes {
		worst = MaxSeverity(worst, o.Severity)
	}
	return worst
}
