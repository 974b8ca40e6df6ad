// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package sweep implements an asynchronous IPv4 sweep engine: it paces ICMP
echo probe submission across a contiguous address range, collects the
out-of-order completion notifications, tracks submission and completion
progress, and projects the successful replies into compact result records.

	            +----------+  Task   +--------+
	iprange --->| Sweeper  |-------->| Prober |--+
	            | (pacing) |         +--------+  | Outcome
	            +----------+                     v
	                 |  wait            +-----------+
	                 +----------------->| collector |---> []Result
	                                    +-----------+

The dispatching loop is the only sequential, paced actor: it suspends for
the configured interval between successive submissions but never blocks on
a previous probe's completion. There is no worker-pool abstraction in the
engine itself; each probe is independently dispatched and independently
resolved by the prober's own completion machinery, so the number of
concurrently outstanding probes is unbounded by default (the [Prober]
implementation may opt into a bound). Completion order is unconstrained;
submission order is strictly the address order of the range.

One [Progress] snapshot goes to the optional progress sink after every
submission and every collected outcome; both derived percentages are
monotonically non-decreasing and reach 100 exactly when the sweep is done.

There are no retries and no per-probe cancellation: every probe resolves
exactly once as Success, Failure, or Timeout, and non-responding addresses
are the expected case, silently absent from the filtered results.
*/
package sweep
