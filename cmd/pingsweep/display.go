// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/siemens/pingsweep/iprange"
	"github.com/siemens/pingsweep/sweep"
	"github.com/siemens/pingsweep/types"
)

// meterWidth is the character width of the progress meter bars.
const meterWidth = 20

// renderer renders the live sweep progress display, based on the progress
// snapshots passed to its Render method.
type renderer struct {
	swept   iprange.Range
	w       io.Writer
	spinner *spinner
}

// newRenderer returns a renderer object rendering to the specified
// io.Writer for a sweep over the given range.
func newRenderer(w io.Writer, swept iprange.Range) *renderer {
	sp := newSpinner()
	sp.Start(*spinnerInterval)
	return &renderer{
		swept:   swept,
		w:       w,
		spinner: sp,
	}
}

// Stop the renderer's background ticker.
func (r *renderer) Stop() {
	r.spinner.Stop()
}

// Render the given progress snapshot as a two-meter display: how much of
// the range has been submitted, and how many probes have resolved.
func (r *renderer) Render(p sweep.Progress) {
	if p.Total == 0 && r.swept.Count() > 0 {
		fmt.Fprintf(r.w, "preparing sweep of %s...\n", rangeStyle.Styled(r.swept.String()))
		return
	}
	phase := r.spinner.Spinner()
	if p.Collected == p.Total {
		phase = "✔ "
	}
	fmt.Fprintf(r.w, "%ssweeping %s\n", phase, rangeStyle.Styled(r.swept.String()))
	fmt.Fprintf(r.w, "  submitting %s %5.1f%% (%d/%d)\n",
		submittingStyle.Styled(meter(p.SubmissionPercent())),
		p.SubmissionPercent(), p.Submitted, p.Total)
	fmt.Fprintf(r.w, "  completing %s %5.1f%% (%d/%d)\n",
		completingStyle.Styled(meter(p.CompletionPercent())),
		p.CompletionPercent(), p.Collected, p.Total)
}

// meter renders a percentage as a fixed-width bar.
func meter(pct float64) string {
	filled := int(pct * meterWidth / 100.0)
	if filled > meterWidth {
		filled = meterWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", meterWidth-filled) + "]"
}

// reportResults renders the projected result records as an aligned table,
// one row per responding address, already sorted by address value.
func reportResults(w io.Writer, results []types.Result, withHostNames bool) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no hosts responded")
		return
	}
	// For neat display, size the address column to the longest address so
	// the reply columns don't zig-zag around.
	addrwidth := len("IPAddress")
	for _, result := range results {
		if l := len(result.IPAddress); l > addrwidth {
			addrwidth = l
		}
	}
	fmt.Fprintf(w, "%-*s  %5s  %3s  %s", addrwidth, "IPAddress", "Bytes", "Ttl", "ResponseTime")
	if withHostNames {
		fmt.Fprint(w, "  HostName")
	}
	fmt.Fprintln(w)
	for _, result := range results {
		// pad before styling: ANSI escapes would throw off %-*s widths.
		fmt.Fprintf(w, "%s  %5d  %3d  %10dms",
			liveAddressStyle.Styled(fmt.Sprintf("%-*s", addrwidth, result.IPAddress)),
			result.Bytes, result.Ttl, result.ResponseTime)
		if withHostNames {
			fmt.Fprintf(w, "  %s", result.HostName)
		}
		fmt.Fprintln(w)
	}
}

// reportOutcomes renders raw, unprojected probe outcomes, one line per
// successful probe.
func reportOutcomes(w io.Writer, outcomes []types.ProbeOutcome) {
	if len(outcomes) == 0 {
		fmt.Fprintln(w, "no hosts responded")
		return
	}
	for _, o := range outcomes {
		fmt.Fprintf(w, "%s %s: %d bytes, ttl %d, rtt %s\n",
			liveAddressStyle.Styled(o.Address.String()), o.Status, o.Bytes, o.Ttl, o.RTT)
	}
}
