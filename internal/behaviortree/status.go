package behaviortree

import (
	"fmt"
	"strings"
)

// Status is the outcome of ticking a node.
type Status int

const (
	// Idle is the initial state of stateful decorators. It is never returned
	// by Tick.
	Idle Status = iota
	// Running indicates the node has not finished, and should be ticked again.
	Running
	// Success indicates the node completed successfully.
	Success
	// Failure indicates the node completed unsuccessfully. It is an ordinary
	// control flow outcome, not an error.
	Failure
)

// String returns the upper case name of the status, e.g. "SUCCESS".
func (s Status) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Running:
		return "RUNNING"
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Valid reports whether s is one of the four defined statuses.
func (s Status) Valid() bool {
	return s >= Idle && s <= Failure
}

// ParseStatus parses a status name, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "idle":
		return Idle, nil
	case "running":
		return Running, nil
	case "success":
		return Success, nil
	case "failure":
		return Failure, nil
	default:
		return Idle, fmt.Errorf("invalid status: %q", s)
	}
}
