// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"os"
	"time"

	"github.com/siemens/pingsweep/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
	. "github.com/thediveo/success"
)

var _ = Describe("pinger", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(5 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	It("handles multiple stops", func() {
		pinger := New(WithMaxOutstanding(1))
		for i := 0; i < 2; i++ {
			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				pinger.StopWait()
				close(done)
			}()
			Eventually(done).WithTimeout(1 * time.Second).Should(BeClosed())
		}
	})

	It("resolves probes as Failure when cancelled before starting", func() {
		pinger := New()
		defer pinger.StopWait()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		outcomes := make(chan types.ProbeOutcome, 1)
		task := types.NewProbeTask(Successful(types.ParseAddress("127.0.0.1")), time.Second)
		pinger.Probe(ctx, task, func(o types.ProbeOutcome) { outcomes <- o })
		Eventually(outcomes).WithTimeout(2 * time.Second).Should(Receive(And(
			HaveField("Token", task.Token),
			HaveField("Status", types.Failure),
		)))
	})

	It("receives an echo reply from localhost", NodeTimeout(30*time.Second), func(ctx context.Context) {
		if os.Getuid() != 0 {
			Skip("needs root")
		}
		pinger := New()
		defer pinger.StopWait()
		outcomes := make(chan types.ProbeOutcome, 1)
		task := types.NewProbeTask(Successful(types.ParseAddress("127.0.0.1")), 0)
		pinger.Probe(ctx, task, func(o types.ProbeOutcome) { outcomes <- o })
		var outcome types.ProbeOutcome
		Eventually(outcomes).WithTimeout(5 * time.Second).Should(Receive(&outcome))
		Expect(outcome.Token).To(Equal(task.Token))
		Expect(outcome.Status).To(Equal(types.Success))
		Expect(outcome.Bytes).NotTo(BeZero())
		Expect(outcome.Ttl).NotTo(BeZero())
	})

	It("times out probing the void", NodeTimeout(30*time.Second), func(ctx context.Context) {
		if os.Getuid() != 0 {
			Skip("needs root")
		}
		pinger := New()
		defer pinger.StopWait()
		outcomes := make(chan types.ProbeOutcome, 1)
		// RFC 5737 TEST-NET-1; nothing should answer from there.
		task := types.NewProbeTask(Successful(types.ParseAddress("192.0.2.1")), 500*time.Millisecond)
		pinger.Probe(ctx, task, func(o types.ProbeOutcome) { outcomes <- o })
		Eventually(outcomes).WithTimeout(5 * time.Second).Should(Receive(
			HaveField("Status", types.Timeout)))
	})

	It("keeps probing within the outstanding bound", func() {
		pinger := New(WithMaxOutstanding(2))
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // probes resolve immediately as Failure, no sockets needed.
		outcomes := make(chan types.ProbeOutcome, 8)
		for i := 0; i < 8; i++ {
			task := types.NewProbeTask(types.Address(0x7f000001+i), time.Second)
			pinger.Probe(ctx, task, func(o types.ProbeOutcome) { outcomes <- o })
		}
		pinger.StopWait()
		Expect(outcomes).To(HaveLen(8))
	})

})
