// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package probe issues single ICMP(v4) echo exchanges with a fixed timeout.

A [Pinger] accepts [types.ProbeTask] descriptions and resolves each into
exactly one [types.ProbeOutcome], delivered asynchronously through a
per-probe callback:

	         +---+
	Task --->| P |---> report(Outcome)
	         +---+

Every probe resolves, always: a reply within the timeout is a Success
carrying the reply's payload size, TTL and round-trip time; no reply is a
Timeout; and a probe that cannot even be put on the wire is a Failure.
Probing is fire-and-forget from the caller's perspective, matching network
stacks that complete each echo exchange independently.

Raw-socket ICMP needs root (or CAP_NET_RAW); [AsUnprivileged] switches to
UDP-based echoes for environments where the ping_group_range allows them.

# Acknowledgements

Under its hood, [Pinger] leverages [go-ping/ping] for the actual echo
exchanges and, when a fan-out bound is requested, [gammazero/workerpool] as
the limiting goroutine pool.

[go-ping/ping]: https://github.com/go-ping/ping
[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package probe
