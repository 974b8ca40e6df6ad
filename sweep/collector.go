// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/siemens/pingsweep/types"

	"github.com/rs/xid"
)

// collector is the single fan-in sink for probe outcomes, keyed by
// correlation token. Outcomes arrive from the probers' completion
// goroutines in whatever order the network decides; a task submitted later
// may well resolve before one submitted earlier.
//
// The collector signals completion by closing its done channel the moment
// the collected count reconciles with the total, so waiters block on a
// plain channel receive instead of polling in fixed increments.
type collector struct {
	state  *state
	notify func(Progress) // optional progress sink; may be nil.

	mu       sync.Mutex
	outcomes map[xid.ID]types.ProbeOutcome
	done     chan struct{}
}

func newCollector(state *state, notify func(Progress)) *collector {
	c := &collector{
		state:    state,
		notify:   notify,
		outcomes: make(map[xid.ID]types.ProbeOutcome, state.total),
		done:     make(chan struct{}),
	}
	if state.total == 0 {
		close(c.done) // nothing to wait for, ever.
	}
	return c
}

// collect records a probe's final outcome. Each correlation token resolves
// exactly once; a duplicate token or a collected count beyond the sweep
// total is a programming error and panics instead of being silently
// tolerated.
func (c *collector) collect(o types.ProbeOutcome) {
	if !o.Status.IsResolved() {
		panic(fmt.Sprintf("sweep: collected unresolved outcome for %s", o.Address))
	}
	c.mu.Lock()
	if _, dup := c.outcomes[o.Token]; dup {
		c.mu.Unlock()
		panic(fmt.Sprintf("sweep: duplicate outcome for token %s (address %s)", o.Token, o.Address))
	}
	c.outcomes[o.Token] = o
	c.mu.Unlock()
	// The outcome store write above happens before this counter increment,
	// so a waiter released by the final increment always observes all
	// outcomes.
	collected := c.state.collected.Add(1)
	switch {
	case collected > c.state.total:
		panic(fmt.Sprintf("sweep: collected %d outcomes for only %d probes", collected, c.state.total))
	case collected == c.state.total:
		close(c.done)
	}
	if c.notify != nil {
		c.notify(c.state.snapshot())
	}
}

// wait blocks until every generated address has been submitted and every
// submitted probe has resolved, or until the context gets cancelled.
func (c *collector) wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// all returns the collected outcomes. Call only after wait succeeded; by
// then the completion callbacks are finished and no concurrent writes
// overlap this read.
func (c *collector) all() []types.ProbeOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	outcomes := make([]types.ProbeOutcome, 0, len(c.outcomes))
	for _, o := range c.outcomes {
		outcomes = append(outcomes, o)
	}
	return outcomes
}
