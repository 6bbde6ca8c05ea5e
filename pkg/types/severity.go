package types

import (
	"fmt"
	"strings"
)

// Severity is the ordinal classification of how concerning a heuristic finding is.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityModerate
	SeveritySevere
	SeverityCritical
)

var severityNames = [...]string{
	SeverityNone:     "NONE",
	SeverityLow:      "LOW",
	SeverityModerate: "MODERATE",
	SeveritySevere:   "SEVERE",
	SeverityCritical: "CRITICAL",
}

// Severities lists every severity from least to most severe.
func Severities() []Severity {
	return []Severity{SeverityNone, SeverityLow, SeverityModerate, SeveritySevere, SeverityCritical}
}

// String returns the upper-case severity name
func (s Severity) String() string {
	if s < SeverityNone || s > SeverityCritical {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Valid reports whether s is one of the five known severities.
func (s Severity) Valid() bool {
	return s >= SeverityNone && s <= SeverityCritical
}

// ParseSeverity parses a severity name, ignoring case.
func ParseSeverity(text string) (Severity, error) {
	name := strings.ToUpper(strings.TrimSpace(text))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return SeverityNone, fmt.Errorf("%w: %q", ErrUnknownSeverity, text)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MinSeverity returns the less severe of a and b.
func MinSeverity(a, b Severity) Severity {
	if a < b {
		return a
	}
	return b
}

// MaxSeverity returns the more severe of a and b.
func MaxSeverity(a, b Severity) Severity {
	if a > b {
		return a
	}
	return b
}
