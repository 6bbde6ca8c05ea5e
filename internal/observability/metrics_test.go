package observability

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

func TestRecorder_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveOutcome(types.HeuristicOutcome{HeuristicName: "Mapper GC", Severity: types.SeverityLow}, 0.012)
	r.ObserveOutcome(types.HeuristicOutcome{HeuristicName: "Mapper GC", Severity: types.SeverityLow}, 0.015)
	r.ObserveOutcome(types.HeuristicOutcome{HeuristicName: "Reducer GC", Severity: types.SeverityCritical}, 0.2)
	r.ObserveNotApplicable("Mapper GC")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.evaluations.WithLabelValues("Mapper GC", "LOW")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.evaluations.WithLabelValues("Reducer GC", "CRITICAL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.notApplicable.WithLabelValues("Mapper GC")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.gcRatio))
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	r.ObserveOutcome(types.HeuristicOutcome{HeuristicName: "Mapper GC", Severity: types.SeverityNone}, 0)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, "# TYPE gc_heuristic_evaluations_total counter")
	assert.Contains(t, out, `gc_heuristic_evaluations_total{heuristic="Mapper GC",severity="NONE"} 1`)
	assert.Contains(t, out, "gc_heuristic_gc_cpu_ratio_bucket")
}

func TestNewRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(reg)
	assert.Panics(t, func() { NewRecorder(reg) })
}
