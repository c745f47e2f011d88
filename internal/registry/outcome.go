package registry

import (
	"strings"

	"github.com/advent-labs/advent/internal/problem"
)

// Status is the terminal state of one dispatch attempt.
type Status int

const (
	// StatusNoSelection means the prompt was cancelled, failed, or returned
	// an unknown choice. Nothing ran.
	StatusNoSelection Status = iota
	// StatusDispatched means a problem ran and produced a result.
	StatusDispatched
)

func (s Status) String() string {
	switch s {
	case StatusDispatched:
		return "dispatched"
	default:
		return "no-selection"
	}
}

// Outcome is the terminal result of one Run.
type Outcome struct {
	Status Status
	// Trail lists the identifiers selected from the outermost registry inward.
	Trail  []string
	Part   problem.Part
	Result *problem.Result
	// Reason wraps ErrNoSelection when Status is StatusNoSelection.
	Reason error
}

// Dispatched reports whether a problem ran.
func (o Outcome) Dispatched() bool {
	return o.Status == StatusDispatched
}

// Path joins the trail for display, e.g. "2023 / Day 1: Trebuchet?!".
func (o Outcome) Path() string {
	return strings.Join(o.Trail, " / ")
}

func noSelection(reason error) Outcome {
	return Outcome{Status: StatusNoSelection, Reason: reason}
}
