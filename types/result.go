// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "strconv"

// Result is the compact record projected from a successful probe outcome:
// one responding address with its echo reply details. HostName is optional
// decoration added by a reverse-DNS lookup after the sweep; the engine
// itself never fills it in.
type Result struct {
	IPAddress    string `json:"ip_address"`
	Bytes        int    `json:"bytes"`
	Ttl          int    `json:"ttl"`
	ResponseTime int    `json:"response_time"` // round-trip time in ms.
	HostName     string `json:"host_name,omitempty"`
}

// NewResult projects a Success outcome into a Result record. Projecting a
// non-Success outcome is a programming error.
func NewResult(o ProbeOutcome) Result {
	if o.Status != Success {
		panic("types: cannot project a " + o.Status.String() + " outcome into a Result")
	}
	return Result{
		IPAddress:    o.Address.String(),
		Bytes:        o.Bytes,
		Ttl:          o.Ttl,
		ResponseTime: int(o.RTT.Milliseconds()),
	}
}

// Fields returns the record as a flat string slice in column order
// (IPAddress, Bytes, Ttl, ResponseTime, HostName), ready for delimited
// output.
func (r Result) Fields() []string {
	return []string{
		r.IPAddress,
		strconv.Itoa(r.Bytes),
		strconv.Itoa(r.Ttl),
		strconv.Itoa(r.ResponseTime),
		r.HostName,
	}
}
