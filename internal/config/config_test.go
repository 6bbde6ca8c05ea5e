package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyungseok-lee/go-gc-heuristic/internal/analysis"
	"github.com/kyungseok-lee/go-gc-heuristic/internal/threshold"
	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

const sampleConfig = `
heuristics:
  - application_type: mapreduce
    heuristic_name: Mapper GC
    class: com.linkedin.drelephant.mapreduce.heuristics.MapperGCHeuristic
    view_name: views.html.help.mapreduce.helpGC
    params:
      gc_ratio_severity: "0.02, 0.04, 0.06, 0.08"
      runtime_severity_in_min: [1, 2, 3, 4]
  - heuristic_name: Reducer GC
    class: ReducerGC
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	require.Len(t, cfg.Heuristics, 2)

	mapper := cfg.Heuristics[0]
	assert.Equal(t, "mapreduce", mapper.ApplicationType)
	assert.Equal(t, "Mapper GC", mapper.HeuristicName)
	assert.Equal(t, ClassMapperGC, mapper.Class)
	assert.Equal(t, "views.html.help.mapreduce.helpGC", mapper.ViewName)
	assert.Equal(t, map[string]string{
		types.ParamGCRatioSeverity: "0.02, 0.04, 0.06, 0.08",
		types.ParamRuntimeSeverity: "1,2,3,4",
	}, mapper.Params)

	reducer := cfg.Heuristics[1]
	assert.Equal(t, DefaultApplicationType, reducer.ApplicationType)
	assert.Equal(t, ClassReducerGC, reducer.Class)
	assert.Nil(t, reducer.Params)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "heuristics: []", ErrNoHeuristics},
		{"missing name", "heuristics:\n  - class: MapperGC", ErrMissingName},
		{"unknown class", "heuristics:\n  - heuristic_name: X\n    class: SpillHeuristic", ErrUnknownClass},
		{"duplicate", "heuristics:\n  - heuristic_name: X\n    class: MapperGC\n  - heuristic_name: X\n    class: ReducerGC", ErrDuplicateHeuristic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_MalformedParamsKeepDefaults(t *testing.T) {
	tests := []struct {
		name   string
		params string
		want   map[string]string
	}{
		{"null", "gc_ratio_severity:", map[string]string{types.ParamGCRatioSeverity: ""}},
		{"bool", "gc_ratio_severity: true", map[string]string{types.ParamGCRatioSeverity: "true"}},
		{"map", "gc_ratio_severity: {a: 1}", map[string]string{types.ParamGCRatioSeverity: "map[a:1]"}},
		{"list with null", "runtime_severity_in_min: [1, 2, ~, 4]", map[string]string{types.ParamRuntimeSeverity: "1,2,,4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "heuristics:\n  - heuristic_name: X\n    class: MapperGC\n    params:\n      " + tt.params
			cfg, err := Parse([]byte(doc))
			require.NoError(t, err)
			require.Len(t, cfg.Heuristics, 1)
			assert.Equal(t, tt.want, cfg.Heuristics[0].Params)

			var buf bytes.Buffer
			heuristics, err := Build(cfg, analysis.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
			require.NoError(t, err)
			require.Len(t, heuristics, 1)
			assert.Equal(t, threshold.DefaultBands(), heuristics[0].Bands())
			assert.Contains(t, buf.String(), "level=WARN")
			assert.Contains(t, buf.String(), "ignoring malformed threshold setting")
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("heuristics: [unterminated"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	dir := t.TempDir()
	path := filepath.Join(dir, "heuristics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Heuristics, 2)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	heuristics, err := Build(cfg, analysis.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, heuristics, 2)

	assert.Equal(t, "Mapper GC", heuristics[0].Name())
	assert.Equal(t, threshold.Band{0.02, 0.04, 0.06, 0.08}, heuristics[0].Bands().GCRatio)
	assert.Equal(t, threshold.Band{60000, 120000, 180000, 240000}, heuristics[0].Bands().RuntimeMs)
	assert.Equal(t, threshold.DefaultBands(), heuristics[1].Bands())

	job := &types.JobExecutionRecord{
		Succeeded: true,
		Reducers: []types.TaskSample{{
			Sampled:        true,
			TotalRuntimeMs: 30 * types.MinuteInMs,
			Counters: types.CounterData{
				types.CounterCPUMilliseconds: 1000,
				types.CounterGCMilliseconds:  50,
			},
		}},
	}
	mapperOutcome, ok := heuristics[0].Apply(job)
	require.True(t, ok)
	assert.Equal(t, "0", mapperOutcome.Details[0].Value)

	reducerOutcome, ok := heuristics[1].Apply(job)
	require.True(t, ok)
	assert.Equal(t, types.SeverityCritical, reducerOutcome.Severity)
}

func TestBuild_RejectsInvalid(t *testing.T) {
	_, err := Build(Config{})
	require.ErrorIs(t, err, ErrNoHeuristics)
}

func TestNormalizeClass(t *testing.T) {
	assert.Equal(t, "MapperGC", normalizeClass("MapperGC"))
	assert.Equal(t, "MapperGC", normalizeClass("MapperGCHeuristic"))
	assert.Equal(t, "ReducerGC", normalizeClass(" a.b.c.ReducerGCHeuristic "))
}
