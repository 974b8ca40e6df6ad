// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// ProbeStatus indicates how an echo probe resolved, or that it hasn't
// resolved yet.
type ProbeStatus int

// The lifecycle states of an echo probe. A probe resolves exactly once;
// there are no retries, so Success, Failure, and Timeout are terminal.
const (
	Pending ProbeStatus = iota // submitted, no resolution yet.
	Success                    // echo reply received within the timeout.
	Failure                    // probe could not be carried out (socket trouble, unreachable, ...).
	Timeout                    // no reply within the fixed probe timeout.
)

// String returns the clear-text representation of a ProbeStatus value.
func (s ProbeStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Timeout:
		return "timeout"
	}
	return fmt.Sprintf("ProbeStatus(%d)", s)
}

// IsResolved returns true after a probe has reached one of its terminal
// states.
func (s ProbeStatus) IsResolved() bool {
	return s != Pending
}
