// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package iprange

import (
	"fmt"

	"github.com/siemens/pingsweep/types"
)

// Range is a contiguous, inclusive IPv4 address range. A Range with End
// preceding Start is simply empty; this permissive behavior is deliberate,
// so callers that care should check Count before sweeping.
type Range struct {
	Start types.Address `json:"start"`
	End   types.Address `json:"end"`
}

// New returns the inclusive address range from start to end.
func New(start, end types.Address) Range {
	return Range{Start: start, End: end}
}

// Parse returns the range described by two dotted-quad boundary addresses.
func Parse(start, end string) (Range, error) {
	s, err := types.ParseAddress(start)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range start: %w", err)
	}
	e, err := types.ParseAddress(end)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range end: %w", err)
	}
	return Range{Start: s, End: e}, nil
}

// Count returns the number of addresses in the range: End−Start+1, or 0
// for a reversed range. The count for the full IPv4 space is 1<<32 and
// thus doesn't fit a uint32, hence uint64.
func (r Range) Count() uint64 {
	if r.End < r.Start {
		return 0
	}
	return uint64(r.End) - uint64(r.Start) + 1
}

// String renders the range in "start-end" form.
func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Addresses returns a fresh iterator walking the range from Start to End
// inclusive, in strictly increasing integer order. Iterators are cheap;
// call Addresses again to restart the walk.
func (r Range) Addresses() *Iterator {
	it := &Iterator{next: uint64(r.Start), last: uint64(r.End)}
	if r.End < r.Start {
		it.next = it.last + 1 // already exhausted
	}
	return it
}

// Iterator lazily enumerates the addresses of a Range. The next/last
// cursors are uint64 so that 255.255.255.255 can be yielded and passed
// without wrapping around.
type Iterator struct {
	next uint64
	last uint64
}

// Next returns the next address of the range, or false once the range is
// exhausted.
func (it *Iterator) Next() (types.Address, bool) {
	if it.next > it.last {
		return 0, false
	}
	addr := types.Address(it.next)
	it.next++
	return addr, true
}
