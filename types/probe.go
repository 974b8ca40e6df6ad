// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"time"

	"github.com/rs/xid"
)

// DefaultProbeTimeout is the fixed per-probe timeout: a probe that hasn't
// seen an echo reply after this long resolves as Timeout.
const DefaultProbeTimeout = 2000 * time.Millisecond

// ProbeTask is a single in-flight ICMP echo exchange: a target address, an
// opaque correlation token linking the task to its eventual asynchronous
// outcome, and the fixed timeout. The dispatcher owns a task only until it
// has been submitted; afterwards the outcome belongs to the collector.
type ProbeTask struct {
	Token   xid.ID        `json:"token"`
	Address Address       `json:"address"`
	Timeout time.Duration `json:"timeout"`
}

// NewProbeTask mints a probe task for the given target with a fresh
// correlation token.
func NewProbeTask(addr Address, timeout time.Duration) ProbeTask {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return ProbeTask{
		Token:   xid.New(),
		Address: addr,
		Timeout: timeout,
	}
}

// ProbeOutcome is the single, final resolution of a probe task. Outcomes
// arrive in no particular order relative to submission. The payload fields
// Bytes, Ttl and RTT are only meaningful for Success outcomes.
type ProbeOutcome struct {
	Token   xid.ID        `json:"token"`
	Address Address       `json:"address"`
	Status  ProbeStatus   `json:"status"`
	Bytes   int           `json:"bytes,omitempty"` // echo reply payload size.
	Ttl     int           `json:"ttl,omitempty"`
	RTT     time.Duration `json:"rtt,omitempty"`
	Err     error         `json:"-"` // optional failure details.
}

// Resolve returns the outcome of the task with the given terminal status
// and no reply payload. Handy for Failure and Timeout resolutions.
func (t ProbeTask) Resolve(status ProbeStatus, err error) ProbeOutcome {
	return ProbeOutcome{
		Token:   t.Token,
		Address: t.Address,
		Status:  status,
		Err:     err,
	}
}

// Reply returns a Success outcome of the task carrying the echo reply
// payload details.
func (t ProbeTask) Reply(bytes, ttl int, rtt time.Duration) ProbeOutcome {
	return ProbeOutcome{
		Token:   t.Token,
		Address: t.Address,
		Status:  Success,
		Bytes:   bytes,
		Ttl:     ttl,
		RTT:     rtt,
	}
}
