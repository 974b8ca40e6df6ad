// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/siemens/pingsweep/iprange"
	"github.com/siemens/pingsweep/types"
)

// DefaultInterval is the default pacing interval between successive probe
// submissions. The pacing exists purely to avoid saturating broadcast-heavy
// network segments; it does not bound how many probes may be concurrently
// outstanding.
const DefaultInterval = 25 * time.Millisecond

// Prober launches a single echo exchange per task and later delivers the
// task's one final outcome to the report callback, from whatever goroutine
// the exchange completes on. [github.com/siemens/pingsweep/probe.Pinger] is
// the wire-level implementation; tests substitute scripted probers.
type Prober interface {
	Probe(ctx context.Context, task types.ProbeTask, report func(types.ProbeOutcome))
}

// Sweeper sweeps a contiguous IPv4 address range with ICMP echo probes: it
// paces probe submission over the range in address order, collects the
// out-of-order completions, and finally projects the successful replies
// into compact [types.Result] records.
type Sweeper struct {
	prober   Prober
	interval time.Duration // pacing between successive submissions.
	timeout  time.Duration // fixed per-probe timeout.
	progress func(Progress)
}

// SweeperOption can be passed to New when creating new Sweeper objects.
type SweeperOption func(*Sweeper)

// New returns a new [Sweeper] probing through the specified Prober. The
// sweeper defaults to the 25ms pacing interval and the fixed 2s per-probe
// timeout; it can be configured during creation using several options:
//   - [WithInterval]
//   - [WithProbeTimeout]
//   - [WithProgress]
func New(prober Prober, options ...SweeperOption) *Sweeper {
	sweeper := &Sweeper{
		prober:   prober,
		interval: DefaultInterval,
		timeout:  types.DefaultProbeTimeout,
	}
	for _, opt := range options {
		opt(sweeper)
	}
	return sweeper
}

// WithInterval sets the pacing interval between successive probe
// submissions.
func WithInterval(interval time.Duration) SweeperOption {
	if interval < 0 {
		panic(fmt.Errorf("Sweeper: pacing interval must not be negative, got: %s", interval))
	}
	return func(s *Sweeper) {
		s.interval = interval
	}
}

// WithProbeTimeout overrides the fixed per-probe timeout.
func WithProbeTimeout(timeout time.Duration) SweeperOption {
	return func(s *Sweeper) {
		s.timeout = timeout
	}
}

// WithProgress registers a progress sink that is called with a fresh
// counts snapshot after every submission and after every collected
// outcome. The sink is called from the dispatching loop as well as from
// probe completion goroutines, so it must be safe for concurrent use and
// should return quickly.
func WithProgress(sink func(Progress)) SweeperOption {
	return func(s *Sweeper) {
		s.progress = sink
	}
}

// Sweep probes every address of the range and returns one [types.Result]
// record per responding address, in increasing address order. Addresses
// that fail to respond are silently absent: a sweep over a largely-unused
// range returning few or no records is a normal, non-error outcome. Sweep
// blocks until every probe has resolved, so its wall-clock cost is bounded
// by count×interval for submission plus the fixed per-probe timeout of the
// slowest outstanding probe.
//
// Cancelling the context abandons the sweep with the context's error;
// probes already on the wire cannot be retracted and drain into their
// timeout on their own.
func (s *Sweeper) Sweep(ctx context.Context, r iprange.Range) ([]types.Result, error) {
	outcomes, err := s.run(ctx, r)
	if err != nil {
		return nil, err
	}
	return Project(outcomes), nil
}

// SweepRaw works like [Sweeper.Sweep], but returns the successful probe
// outcomes unprojected, exposing reply status, payload length, TTL and
// round-trip time as they came in.
func (s *Sweeper) SweepRaw(ctx context.Context, r iprange.Range) ([]types.ProbeOutcome, error) {
	outcomes, err := s.run(ctx, r)
	if err != nil {
		return nil, err
	}
	return Successes(outcomes), nil
}

// run is the dispatching loop: it walks the address range in order,
// submitting one probe task per address and suspending for the pacing
// interval between successive submissions — but never blocking on a
// previous probe's completion. It then waits for all outcomes to
// reconcile.
func (s *Sweeper) run(ctx context.Context, r iprange.Range) ([]types.ProbeOutcome, error) {
	state := newState(r.Count())
	coll := newCollector(state, s.progress)
	first := true
	for it := r.Addresses(); ; {
		addr, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			if err := s.pace(ctx); err != nil {
				return nil, fmt.Errorf("sweep aborted during dispatch: %w", err)
			}
		}
		first = false
		task := types.NewProbeTask(addr, s.timeout)
		state.submitted.Add(1)
		s.prober.Probe(ctx, task, coll.collect)
		if s.progress != nil {
			s.progress(state.snapshot())
		}
	}
	if err := coll.wait(ctx); err != nil {
		return nil, fmt.Errorf("sweep aborted while collecting outcomes: %w", err)
	}
	return coll.all(), nil
}

// pace suspends the dispatching loop for one pacing interval, unless the
// context gets cancelled first.
func (s *Sweeper) pace(ctx context.Context) error {
	if s.interval == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.interval)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
