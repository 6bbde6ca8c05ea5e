// Package jobdata reads exported job execution records from disk.
package jobdata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

// ErrNoJobs is returned when a document lists no jobs
var ErrNoJobs = errors.New("no jobs in document")

type document struct {
	Jobs []types.JobExecutionRecord `yaml:"jobs"`
}

// LoadFile reads job records from a YAML or JSON file
func LoadFile(path string) ([]types.JobExecutionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	jobs, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return jobs, nil
}

// Decode reads job records from r. JSON input is accepted as YAML.
func Decode(r io.Reader) ([]types.JobExecutionRecord, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoJobs
		}
		return nil, err
	}
	if len(doc.Jobs) == 0 {
		return nil, ErrNoJobs
	}

	for i := range doc.Jobs {
		if doc.Jobs[i].ID == "" {
			doc.Jobs[i].ID = fmt.Sprintf("job-%d", i+1)
		}
	}
	return doc.Jobs, nil
}
