// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import "sync/atomic"

// state carries the counts of one sweep: how many addresses the range
// generates, how many probe tasks have been submitted so far, and how many
// outcomes have been collected so far. It is shared explicitly between the
// dispatching loop and the outcome collector instead of living in ambient
// globals, and it dies with the sweep.
type state struct {
	total     int64 // addresses the range generates; fixed for the sweep.
	submitted atomic.Int64
	collected atomic.Int64
}

func newState(total uint64) *state {
	return &state{total: int64(total)}
}

// snapshot returns the current counts as an immutable Progress value.
func (s *state) snapshot() Progress {
	return Progress{
		Total:     s.total,
		Submitted: s.submitted.Load(),
		Collected: s.collected.Load(),
	}
}

// Progress is a point-in-time snapshot of a sweep's counts. Both derived
// percentages are monotonically non-decreasing over the life of one sweep
// and reach exactly 100 when the sweep finishes.
type Progress struct {
	Total     int64 `json:"total"`
	Submitted int64 `json:"submitted"`
	Collected int64 `json:"collected"`
}

// SubmissionPercent returns how much of the address range has been
// dispatched, in percent. A sweep over an empty range is complete from the
// start.
func (p Progress) SubmissionPercent() float64 {
	return percent(p.Submitted, p.Total)
}

// CompletionPercent returns how many of the probes have resolved, in
// percent.
func (p Progress) CompletionPercent() float64 {
	return percent(p.Collected, p.Total)
}

func percent(part, total int64) float64 {
	if total == 0 {
		return 100.0
	}
	return float64(part) / float64(total) * 100.0
}
