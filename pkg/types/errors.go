package types

import "errors"

// Common errors shared by the heuristic packages
var (
	ErrUnknownSeverity = errors.New("unknown severity")
	ErrInvalidBand     = errors.New("invalid threshold band")
)
