// Package threshold parses, validates and applies ascending severity bands.
package threshold

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

// Band holds 4 non-decreasing breakpoints that split a metric into 5 severities.
type Band [types.BandSize]float64

// NewBand validates limits and returns them as a Band
func NewBand(limits ...float64) (Band, error) {
	var b Band
	if len(limits) != types.BandSize {
		return b, fmt.Errorf("%w: expected %d values, got %d", types.ErrInvalidBand, types.BandSize, len(limits))
	}
	copy(b[:], limits)
	if err := b.Validate(); err != nil {
		return Band{}, err
	}
	return b, nil
}

// ParseBand parses a comma separated list of exactly 4 numbers
func ParseBand(raw string) (Band, error) {
	tokens := strings.Split(raw, ",")
	if len(tokens) != types.BandSize {
		return Band{}, fmt.Errorf("%w: expected %d values, got %d", types.ErrInvalidBand, types.BandSize, len(tokens))
	}

	limits := make([]float64, 0, types.BandSize)
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return Band{}, fmt.Errorf("%w: %q is not a number", types.ErrInvalidBand, strings.TrimSpace(tok))
		}
		limits = append(limits, v)
	}
	return NewBand(limits...)
}

// Validate checks that every breakpoint is finite and none decreases
func (b Band) Validate() error {
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value %d is not finite", types.ErrInvalidBand, i)
		}
		if i > 0 && v < b[i-1] {
			return fmt.Errorf("%w: values must be non-decreasing (%s)", types.ErrInvalidBand, b)
		}
	}
	return nil
}

// Classify maps value onto a severity. Each breakpoint is the inclusive
// lower bound of the next tier; values at or above the last are critical.
func (b Band) Classify(value float64) types.Severity {
	switch {
	case value >= b[3]:
		return types.SeverityCritical
	case value >= b[2]:
		return types.SeveritySevere
	case value >= b[1]:
		return types.SeverityModerate
	case value >= b[0]:
		return types.SeverityLow
	default:
		return types.SeverityNone
	}
}

// Scale returns a copy of the band with every breakpoint multiplied by factor
func (b Band) Scale(factor float64) Band {
	var scaled Band
	for i, v := range b {
		scaled[i] = v * factor
	}
	return scaled
}

// Limits returns the breakpoints as a slice
func (b Band) Limits() []float64 {
	return append([]float64(nil), b[:]...)
}

func (b Band) String() string {
	return types.FormatBand(b[:])
}
