// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package iprange

import (
	"github.com/siemens/pingsweep/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

func collect(r Range) []string {
	addrs := []string{}
	for it := r.Addresses(); ; {
		addr, ok := it.Next()
		if !ok {
			break
		}
		addrs = append(addrs, addr.String())
	}
	return addrs
}

var _ = Describe("address ranges", func() {

	It("parses boundary addresses", func() {
		r := Successful(Parse("192.168.1.1", "192.168.1.3"))
		Expect(r.Start.String()).To(Equal("192.168.1.1"))
		Expect(r.End.String()).To(Equal("192.168.1.3"))
		Expect(r.String()).To(Equal("192.168.1.1-192.168.1.3"))
	})

	It("rejects malformed boundaries", func() {
		Expect(Parse("not-an-ip", "10.0.0.1")).Error().To(
			MatchError(ContainSubstring("range start")))
		Expect(Parse("10.0.0.1", "::1")).Error().To(
			MatchError(ContainSubstring("range end")))
	})

	It("enumerates inclusively in strictly increasing order", func() {
		r := Successful(Parse("192.168.1.254", "192.168.2.2"))
		Expect(r.Count()).To(BeEquivalentTo(5))
		Expect(collect(r)).To(Equal([]string{
			"192.168.1.254", "192.168.1.255",
			"192.168.2.0", "192.168.2.1", "192.168.2.2",
		}))
	})

	It("has exactly end-start+1 elements, stepping by one", func() {
		r := Successful(Parse("10.0.0.0", "10.0.1.0"))
		Expect(r.Count()).To(BeEquivalentTo(257))
		var prev types.Address
		n := uint64(0)
		for it := r.Addresses(); ; {
			addr, ok := it.Next()
			if !ok {
				break
			}
			if n > 0 {
				Expect(uint64(addr)).To(Equal(uint64(prev)+1), "gap after %s", prev)
			}
			prev = addr
			n++
		}
		Expect(n).To(Equal(r.Count()))
	})

	It("yields a single address for a degenerate range", func() {
		r := Successful(Parse("10.0.0.5", "10.0.0.5"))
		Expect(r.Count()).To(BeEquivalentTo(1))
		Expect(collect(r)).To(Equal([]string{"10.0.0.5"}))
	})

	It("is empty when end precedes start", func() {
		r := Successful(Parse("10.0.0.5", "10.0.0.1"))
		Expect(r.Count()).To(BeZero())
		Expect(collect(r)).To(BeEmpty())
	})

	It("restarts from a fresh iterator each time", func() {
		r := Successful(Parse("127.0.0.1", "127.0.0.3"))
		first := collect(r)
		Expect(collect(r)).To(Equal(first))
	})

	It("covers the full 32 bit space without wrapping", func() {
		r := Successful(Parse("0.0.0.0", "255.255.255.255"))
		Expect(r.Count()).To(BeEquivalentTo(uint64(1) << 32))

		// ...and the iterator terminates at the very top of the space.
		top := Successful(Parse("255.255.255.254", "255.255.255.255"))
		Expect(collect(top)).To(Equal([]string{
			"255.255.255.254", "255.255.255.255",
		}))
	})

})
