package config

import "errors"

// Configuration errors
var (
	ErrNoHeuristics       = errors.New("no heuristics configured")
	ErrMissingName        = errors.New("heuristic_name is required")
	ErrUnknownClass       = errors.New("unknown heuristic class")
	ErrDuplicateHeuristic = errors.New("duplicate heuristic name")
)
