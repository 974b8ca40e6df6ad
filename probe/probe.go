// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"sync"

	"github.com/siemens/pingsweep/types"

	"github.com/gammazero/workerpool"
	"github.com/go-ping/ping"
)

// Pinger carries out single ICMP echo exchanges and reports each exchange's
// final [types.ProbeOutcome] through a per-probe callback. Probing is
// non-blocking: Probe returns immediately and the outcome is delivered
// later from the completion goroutine.
//
// By default every probe gets its own goroutine, so the number of
// concurrently outstanding probes is unbounded and capped in time only by
// the fixed per-probe timeout. [WithMaxOutstanding] optionally bounds the
// fan-out through a goroutine-limited worker pool.
type Pinger struct {
	unprivileged bool                   // if true, uses UDP-based pings instead of privileged ICMPs.
	workers      *workerpool.WorkerPool // optional outstanding-probe limit; nil means unbounded.
	wg           sync.WaitGroup         // tracks unbounded probe goroutines.
	stopOnce     sync.Once
}

// PingerOption can be passed to New when creating new Pinger objects.
type PingerOption func(*Pinger)

// New returns a new [Pinger]. The pinger defaults to privileged raw-socket
// ICMP echoes and unbounded concurrent probes; it can be configured during
// creation using several options:
//   - [AsUnprivileged]
//   - [WithMaxOutstanding]
func New(options ...PingerOption) *Pinger {
	pinger := &Pinger{}
	for _, opt := range options {
		opt(pinger)
	}
	return pinger
}

// AsUnprivileged tells the Pinger to carry out unprivileged pings using UDP
// instead of raw ICMP packets.
func AsUnprivileged() PingerOption {
	return func(p *Pinger) {
		p.unprivileged = true
	}
}

// WithMaxOutstanding bounds the number of concurrently outstanding probes.
// Zero keeps the default of unbounded fan-out.
func WithMaxOutstanding(max uint) PingerOption {
	return func(p *Pinger) {
		if max > 0 {
			p.workers = workerpool.New(int(max))
		}
	}
}

// Probe launches the echo exchange described by the task and returns
// without waiting for it to resolve. The task's single final outcome is
// later passed to report: a reply within the task timeout resolves as
// Success, a missing reply as Timeout, and a probe that cannot be carried
// out at all resolves as Failure rather than taking the sweep down.
//
// Cancelling the context only prevents probes that haven't started yet; an
// echo exchange already on the wire runs into its fixed timeout regardless.
func (p *Pinger) Probe(ctx context.Context, task types.ProbeTask, report func(types.ProbeOutcome)) {
	job := func() {
		report(p.exchange(ctx, task))
	}
	if p.workers != nil {
		p.workers.Submit(job)
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		job()
	}()
}

// exchange runs a single blocking echo exchange and classifies its
// resolution.
func (p *Pinger) exchange(ctx context.Context, task types.ProbeTask) types.ProbeOutcome {
	// A quick and non-blocking check to see if the context has been
	// cancelled before we put anything on the wire...
	select {
	case <-ctx.Done():
		return task.Resolve(types.Failure, ctx.Err())
	default:
	}

	pinger, err := ping.NewPinger(task.Address.String())
	if err != nil {
		return task.Resolve(types.Failure, err)
	}
	pinger.SetPrivileged(!p.unprivileged)
	pinger.Count = 1
	pinger.Timeout = task.Timeout
	var reply *ping.Packet
	pinger.OnRecv = func(pkt *ping.Packet) {
		reply = pkt
	}
	// While the ping is running we monitor the context in case it becomes
	// "done"; the done channel here works "the other way round" in that it
	// terminates the concurrent context monitoring.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pinger.Stop()
		case <-done:
		}
	}()
	if err := pinger.Run(); err != nil {
		return task.Resolve(types.Failure, err)
	}
	if err := ctx.Err(); err != nil {
		return task.Resolve(types.Failure, err)
	}
	if reply == nil {
		return task.Resolve(types.Timeout, nil)
	}
	return task.Reply(reply.Nbytes, reply.Ttl, reply.Rtt)
}

// StopWait waits for all outstanding probes to resolve and their outcomes
// to be reported, then shuts the pinger down.
func (p *Pinger) StopWait() {
	p.stopOnce.Do(func() {
		if p.workers != nil {
			p.workers.StopWait()
		}
		p.wg.Wait()
	})
}
