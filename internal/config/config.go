// Package config loads heuristic configuration data and builds the
// configured GC heuristics.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/kyungseok-lee/go-gc-heuristic/internal/analysis"
	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

// Heuristic classes
const (
	ClassMapperGC  = "MapperGC"
	ClassReducerGC = "ReducerGC"
)

// DefaultApplicationType is used when an entry does not name one
const DefaultApplicationType = "mapreduce"

// HeuristicConf describes one configured heuristic
type HeuristicConf struct {
	ApplicationType string            `yaml:"application_type"`
	HeuristicName   string            `yaml:"heuristic_name"`
	Class           string            `yaml:"class"`
	ViewName        string            `yaml:"view_name,omitempty"`
	Params          map[string]string `yaml:"params,omitempty"`
}

// Config is the full heuristic configuration
type Config struct {
	Heuristics []HeuristicConf `yaml:"heuristics"`
}

// Default returns the mapper and reducer GC heuristics with default thresholds
func Default() Config {
	return Config{
		Heuristics: []HeuristicConf{
			{ApplicationType: DefaultApplicationType, HeuristicName: types.MapperGCHeuristicName, Class: ClassMapperGC},
			{ApplicationType: DefaultApplicationType, HeuristicName: types.ReducerGCHeuristicName, Class: ClassReducerGC},
		},
	}
}

// LoadFile reads a YAML configuration file. An empty path yields [Default].
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parsing %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration document
func Parse(data []byte) (Config, error) {
	var doc struct {
		Heuristics []map[string]any `yaml:"heuristics"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, err
	}

	cfg := Config{Heuristics: make([]HeuristicConf, 0, len(doc.Heuristics))}
	for i, raw := range doc.Heuristics {
		hc, err := decodeHeuristic(raw)
		if err != nil {
			return Config{}, fmt.Errorf("heuristic %d: %w", i, err)
		}
		cfg.Heuristics = append(cfg.Heuristics, hc)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeHeuristic(raw map[string]any) (HeuristicConf, error) {
	var v struct {
		ApplicationType string         `mapstructure:"application_type"`
		HeuristicName   string         `mapstructure:"heuristic_name"`
		Class           string         `mapstructure:"class"`
		ViewName        string         `mapstructure:"view_name"`
		Params          map[string]any `mapstructure:"params"`
	}
	if err := mapstructure.Decode(raw, &v); err != nil {
		return HeuristicConf{}, err
	}

	hc := HeuristicConf{
		ApplicationType: v.ApplicationType,
		HeuristicName:   strings.TrimSpace(v.HeuristicName),
		Class:           normalizeClass(v.Class),
		ViewName:        v.ViewName,
	}
	if hc.ApplicationType == "" {
		hc.ApplicationType = DefaultApplicationType
	}
	if len(v.Params) > 0 {
		hc.Params = make(map[string]string, len(v.Params))
		for key, value := range v.Params {
			hc.Params[key] = paramString(value)
		}
	}
	return hc, nil
}

// normalizeClass accepts short class names as well as fully qualified
// ones such as "com.example.heuristics.MapperGCHeuristic".
func normalizeClass(class string) string {
	class = strings.TrimSpace(class)
	if i := strings.LastIndex(class, "."); i >= 0 {
		class = class[i+1:]
	}
	return strings.TrimSuffix(class, "Heuristic")
}

// paramString renders a YAML value as the comma separated form the
// threshold loader expects. Null renders empty and list items are joined
// with ",". Values that are not thresholds are passed through as text for
// the loader to reject with a warning.
func paramString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, paramString(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

// Validate checks names and classes
func (c Config) Validate() error {
	if len(c.Heuristics) == 0 {
		return ErrNoHeuristics
	}

	var errs []error
	seen := make(map[string]bool, len(c.Heuristics))
	for _, hc := range c.Heuristics {
		if hc.HeuristicName == "" {
			errs = append(errs, ErrMissingName)
			continue
		}
		if seen[hc.HeuristicName] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateHeuristic, hc.HeuristicName))
		}
		seen[hc.HeuristicName] = true
		if _, ok := selectorFor(hc.Class); !ok {
			errs = append(errs, fmt.Errorf("%w %q for %q", ErrUnknownClass, hc.Class, hc.HeuristicName))
		}
	}
	return errors.Join(errs...)
}

func selectorFor(class string) (analysis.TaskSelector, bool) {
	switch class {
	case ClassMapperGC:
		return analysis.MapperTasks{}, true
	case ClassReducerGC:
		return analysis.ReducerTasks{}, true
	default:
		return nil, false
	}
}

// Build creates one heuristic per configured entry, in configuration order
func Build(cfg Config, opts ...analysis.Option) ([]*analysis.GCHeuristic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	heuristics := make([]*analysis.GCHeuristic, 0, len(cfg.Heuristics))
	for _, hc := range cfg.Heuristics {
		selector, _ := selectorFor(hc.Class)
		heuristics = append(heuristics, analysis.New(hc.HeuristicName, hc.Params, selector, opts...))
	}
	return heuristics, nil
}
