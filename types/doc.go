// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package types defines pingsweep's information model. Which is rather simple
and revolves around [Address], [ProbeTask], [ProbeOutcome], and the
projected [Result] record.

An [Address] is an IPv4 address kept in its 32 bit integer form, so that
address ranges can be enumerated and results ordered by plain integer
arithmetic; the dotted-quad string form is derived on demand and the two
forms round-trip without loss.

A [ProbeTask] describes one in-flight ICMP echo exchange. Tasks carry an
opaque correlation token ([github.com/rs/xid] ids) so that the completion
side can be keyed by token instead of by some stringly-typed event name.
Each task resolves exactly once into a [ProbeOutcome]: either a reply
arrived ([Success], with reply size, TTL and round-trip time), the probe
could not be carried out ([Failure]), or the fixed per-probe timeout
expired ([Timeout]). There are no retries.

Please keep in mind that pingsweep is inherently concurrent: outcomes
travel between goroutines, so [ProbeTask] and [ProbeOutcome] are plain
immutable values. Copy them, don't share them.

[github.com/rs/xid]: https://github.com/rs/xid
*/
package types
