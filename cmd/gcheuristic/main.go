package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess   = 0 // No outcome reached the failure severity
	ExitThreshold = 1 // One or more outcomes reached the failure severity
	ExitError     = 2 // Configuration or runtime error
)

// SeverityThresholdError indicates that evaluation succeeded but at least
// one outcome was at or above the --fail-on severity.
type SeverityThresholdError struct {
	Message string
}

func (e *SeverityThresholdError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var thresholdErr *SeverityThresholdError
		if errors.As(err, &thresholdErr) {
			os.Exit(ExitThreshold)
		}
		os.Exit(ExitError)
	}
}
