package runner

import (
	"errors"
	"fmt"
)

// ErrNothingProcessed is returned when no input could be processed.
var ErrNothingProcessed = errors.New("no inputs processed")

// Status is the outcome class of one input.
type Status int

const (
	// StatusOK means the input was processed.
	StatusOK Status = iota

	// StatusSkip means the input was not a recognised source file.
	StatusSkip

	// StatusFail means the input could not be processed.
	StatusFail
)

// String returns the status-line label.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusSkip:
		return "SKIP"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the status label in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a status label.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "OK":
		*s = StatusOK
	case "SKIP":
		*s = StatusSkip
	case "FAIL":
		*s = StatusFail
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// Stats counts inputs per status.
type Stats struct {
	OK      int `json:"ok"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Add counts one input.
func (s *Stats) Add(status Status) {
	switch status {
	case StatusOK:
		s.OK++
	case StatusSkip:
		s.Skipped++
	case StatusFail:
		s.Failed++
	}
}

// Total returns the number of inputs counted.
func (s Stats) Total() int {
	return s.OK + s.Skipped + s.Failed
}

// Processed returns the number of inputs that were processed.
func (s Stats) Processed() int {
	return s.OK
}

// Err returns ErrNothingProcessed when no input was processed.
func (s Stats) Err() error {
	if s.Processed() == 0 {
		return ErrNothingProcessed
	}
	return nil
}
