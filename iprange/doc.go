// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package iprange enumerates contiguous, inclusive IPv4 address ranges.

A [Range] is just its two boundary addresses; [Range.Addresses] then hands
out lazy iterators over the enclosed addresses in strictly increasing
integer order, handling the full 32 bit address space without overflow. A
reversed range (end preceding start) yields an empty enumeration rather
than an error, mirroring what sweep operators expect from the classic
"start/end address" style of sweep tools.
*/
package iprange
