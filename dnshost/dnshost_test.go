// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnshost

import (
	"context"
	"net"
	"time"

	"github.com/siemens/pingsweep/types"

	"github.com/miekg/dns"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
	. "github.com/thediveo/success"
)

// ptrServer runs a tiny in-process DNS server answering PTR queries from a
// fixed address-to-name table.
func ptrServer(names map[string]string) (addr string, shutdown func()) {
	pc := Successful(net.ListenPacket("udp", "127.0.0.1:0"))
	srv := &dns.Server{
		PacketConn: pc,
		Handler: dns.HandlerFunc(func(w dns.ResponseWriter, req *dns.Msg) {
			defer GinkgoRecover()
			m := new(dns.Msg)
			m.SetReply(req)
			q := req.Question[0]
			if q.Qtype == dns.TypePTR {
				if name, ok := names[q.Name]; ok {
					m.Answer = append(m.Answer, &dns.PTR{
						Hdr: dns.RR_Header{
							Name: q.Name, Rrtype: dns.TypePTR,
							Class: dns.ClassINET, Ttl: 60,
						},
						Ptr: name,
					})
				}
			}
			Expect(w.WriteMsg(m)).To(Succeed())
		}),
	}
	go func() {
		defer GinkgoRecover()
		Expect(srv.ActivateAndServe()).To(Succeed())
	}()
	return pc.LocalAddr().String(), func() { Expect(srv.Shutdown()).To(Succeed()) }
}

var _ = Describe("reverse DNS decoration", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	It("handles multiple stops", func() {
		srvaddr, shutdown := ptrServer(nil)
		defer shutdown()
		dnsclnt := dns.Client{}
		resolver := Successful(New(context.Background(), 1, &dnsclnt, srvaddr))
		for i := 0; i < 2; i++ {
			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				resolver.StopWait()
				close(done)
			}()
			Eventually(done).WithTimeout(1 * time.Second).Should(BeClosed())
		}
	})

	It("reverse-resolves a single address", NodeTimeout(30*time.Second), func(ctx context.Context) {
		srvaddr, shutdown := ptrServer(map[string]string{
			"1.1.168.192.in-addr.arpa.": "printer.fritz.box.",
		})
		defer shutdown()
		dnsclnt := dns.Client{}
		resolver := Successful(New(ctx, 2, &dnsclnt, srvaddr))
		defer resolver.StopWait()

		names := make(chan string, 1)
		resolver.ResolveAddr(ctx, Successful(types.ParseAddress("192.168.1.1")),
			func(name string, err error) {
				defer GinkgoRecover()
				Expect(err).NotTo(HaveOccurred())
				names <- name
			})
		Eventually(names).WithTimeout(5 * time.Second).Should(Receive(Equal("printer.fritz.box")))
	})

	It("reports missing PTR records as errors", NodeTimeout(30*time.Second), func(ctx context.Context) {
		srvaddr, shutdown := ptrServer(nil)
		defer shutdown()
		dnsclnt := dns.Client{}
		resolver := Successful(New(ctx, 1, &dnsclnt, srvaddr))
		defer resolver.StopWait()

		errs := make(chan error, 1)
		resolver.ResolveAddr(ctx, Successful(types.ParseAddress("10.0.0.1")),
			func(name string, err error) {
				errs <- err
			})
		Eventually(errs).WithTimeout(5 * time.Second).Should(Receive(
			MatchError(ContainSubstring("no PTR record"))))
	})

	It("annotates a result set, leaving unresolvable records alone", NodeTimeout(30*time.Second), func(ctx context.Context) {
		srvaddr, shutdown := ptrServer(map[string]string{
			"1.1.168.192.in-addr.arpa.": "gw.example.net.",
			"3.1.168.192.in-addr.arpa.": "nas.example.net.",
		})
		defer shutdown()
		dnsclnt := dns.Client{}
		resolver := Successful(New(ctx, 2, &dnsclnt, srvaddr))
		defer resolver.StopWait()

		results := []types.Result{
			{IPAddress: "192.168.1.1", Bytes: 32, Ttl: 64, ResponseTime: 1},
			{IPAddress: "192.168.1.2", Bytes: 32, Ttl: 64, ResponseTime: 1},
			{IPAddress: "192.168.1.3", Bytes: 32, Ttl: 128, ResponseTime: 2},
		}
		resolver.Annotate(ctx, results)
		Expect(results[0].HostName).To(Equal("gw.example.net"))
		Expect(results[1].HostName).To(BeEmpty())
		Expect(results[2].HostName).To(Equal("nas.example.net"))
	})

})
