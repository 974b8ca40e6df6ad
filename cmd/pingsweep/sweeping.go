// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/siemens/pingsweep/dnshost"
	"github.com/siemens/pingsweep/iprange"
	"github.com/siemens/pingsweep/probe"
	"github.com/siemens/pingsweep/sweep"
	"github.com/siemens/pingsweep/types"

	"github.com/gosuri/uilive"
	"github.com/miekg/dns"
)

// SweepAndReport sweeps the address range spanned by the two boundary
// addresses while rendering a live progress meter, then reports the
// responding hosts: as an aligned table (optionally decorated with
// reverse-DNS host names and persisted to a CSV file), or as unprojected
// probe outcomes in raw mode.
func SweepAndReport(ctx context.Context, start, end string) error {
	r, err := iprange.Parse(start, end)
	if err != nil {
		return err
	}
	if r.Count() == 0 {
		// Preserved permissive behavior: a reversed range sweeps nothing
		// and succeeds, but an operator deserves a hint.
		fmt.Fprintf(os.Stderr, "warning: end address %s precedes start address %s, nothing to sweep\n",
			r.End, r.Start)
	}

	// Progress snapshots trickle in from the dispatching loop and from the
	// probe completion goroutines; the rendering goroutine picks up the
	// most recent one on every tick.
	var mu sync.Mutex
	var current sweep.Progress
	progress := func(p sweep.Progress) {
		mu.Lock()
		current = p
		mu.Unlock()
	}

	sweepDone := make(chan struct{})
	renderingDone := make(chan struct{})
	go func() {
		// Dunno what uilive's background updating mode using Start() is good
		// for? It may trigger anytime with the rendering into the buffer not
		// yet complete, thus making the terminal output very flickery. So we
		// avoid Start() and instead trigger an explicit flush to the terminal
		// after having completed the rendering.
		term := uilive.New()
		renderer := newRenderer(term, r)
		defer func() {
			renderProgress(term, renderer, &mu, &current)
			renderer.Stop()
			close(renderingDone)
		}()
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				renderProgress(term, renderer, &mu, &current)
			case <-sweepDone:
				return
			}
		}
	}()

	popts := []probe.PingerOption{probe.WithMaxOutstanding(*maxOutstanding)}
	if *unprivileged {
		popts = append(popts, probe.AsUnprivileged())
	}
	prober := probe.New(popts...)
	sweeper := sweep.New(prober,
		sweep.WithInterval(*interval),
		sweep.WithProbeTimeout(*probeTimeout),
		sweep.WithProgress(progress))

	var results []types.Result
	var outcomes []types.ProbeOutcome
	if *rawMode {
		outcomes, err = sweeper.SweepRaw(ctx, r)
	} else {
		results, err = sweeper.Sweep(ctx, r)
	}
	close(sweepDone)
	<-renderingDone
	prober.StopWait()
	if err != nil {
		return fmt.Errorf("cannot sweep %s: %w", r, err)
	}

	if *rawMode {
		reportOutcomes(os.Stdout, outcomes)
		return nil
	}
	if *resolveNames {
		if err := annotateResults(ctx, results); err != nil {
			fmt.Fprintf(os.Stderr, "warning: reverse-DNS decoration unavailable: %v\n", err)
		}
	}
	if *outputPath != "" {
		if err := writeCSV(*outputPath, results, *resolveNames); err != nil {
			return fmt.Errorf("cannot write results: %w", err)
		}
	}
	reportResults(os.Stdout, results, *resolveNames)
	return nil
}

// renderProgress renders (and flushes) the most recent progress snapshot
// to the terminal.
func renderProgress(term *uilive.Writer, r *renderer, mu *sync.Mutex, current *sweep.Progress) {
	mu.Lock()
	p := *current
	mu.Unlock()
	r.Render(p)
	term.Flush()
}

// annotateResults decorates the results in place with reverse-DNS host
// names, using the system's configured resolver.
func annotateResults(ctx context.Context, results []types.Result) error {
	if len(results) == 0 {
		return nil
	}
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil {
		return fmt.Errorf("cannot determine system resolver: %w", err)
	}
	if len(conf.Servers) == 0 {
		return fmt.Errorf("no DNS servers configured")
	}
	dnsclnt := dns.Client{}
	resolver, err := dnshost.New(ctx, int(*dnsWorkerNumber), &dnsclnt,
		conf.Servers[0]+":"+conf.Port)
	if err != nil {
		return err
	}
	defer resolver.StopWait()
	resolver.Annotate(ctx, results)
	return nil
}
