// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnshost

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/siemens/pingsweep/types"

	"github.com/gammazero/workerpool"
	"github.com/miekg/dns"
)

// Resolver is a (size-limited) pool of DNS client connections for reverse
// lookups, all talking to the same DNS resolver address.
type Resolver struct {
	workers *workerpool.WorkerPool
	mu      sync.Mutex // protects the pool of DNS connections
	free    []*dns.Conn
}

// New returns a pool of the specified size of DNS client connections, with
// each connection talking to the same DNS resolver address. Reverse
// lookups are submitted using [Resolver.ResolveAddr]; whole result sets
// are decorated in one go using [Resolver.Annotate].
//
// The passed context is used for creating (dialing) the DNS client
// connections only.
func New(ctx context.Context, size int, dnsclnt *dns.Client, addr string) (*Resolver, error) {
	resolver := &Resolver{
		workers: workerpool.New(size),
	}
	free := make([]*dns.Conn, 0, size)
	for i := 0; i < size; i++ {
		conn, err := dnsclnt.DialContext(ctx, addr)
		if err != nil {
			// Immediately release all connections created so far.
			for _, conn := range free {
				conn.Close()
			}
			return nil, fmt.Errorf("cannot dial DNS resolver %s: %w", addr, err)
		}
		free = append(free, conn)
	}
	resolver.free = free
	return resolver, nil
}

// Submit a task to the DNS client connection pool, where it gets enqueued
// to be executed on an available DNS client connection.
func (r *Resolver) Submit(task func(conn *dns.Conn)) {
	r.workers.Submit(func() { r.task(task) })
}

// ResolveAddr submits a PTR query for the specified address and passes the
// resulting host name (without the trailing root dot) or a lookup error to
// the specified callback function fn. Addresses without a PTR record
// report an error, not an empty name.
//
// Please note that when the passed context is cancelled this will cancel
// all in-flight as well as scheduled reverse lookup jobs.
func (r *Resolver) ResolveAddr(ctx context.Context, addr types.Address, fn func(string, error)) {
	r.Submit(func(conn *dns.Conn) {
		var name string
		var err error
		defer func() { fn(name, err) }() // ...ensure triggering the result callback on our way out

		// don't try to resolve if the context has been cancelled; trigger
		// the callback immediately with the context error.
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var arpa string
		arpa, err = dns.ReverseAddr(addr.String())
		if err != nil {
			return
		}
		msg := dns.Msg{
			MsgHdr: dns.MsgHdr{Id: dns.Id()},
		}
		msg.SetQuestion(arpa, dns.TypePTR)
		dnsclnt := dns.Client{}
		var reply *dns.Msg
		reply, _, err = dnsclnt.ExchangeWithConn(&msg, conn)
		if err != nil {
			return
		}
		for _, rr := range reply.Answer {
			if ptr, ok := rr.(*dns.PTR); ok {
				name = strings.TrimSuffix(ptr.Ptr, ".")
				return
			}
		}
		err = fmt.Errorf("no PTR record for %s", addr)
	})
}

// Annotate decorates a sweep's result records in place with the host names
// their addresses reverse-resolve into, running the lookups concurrently
// over the connection pool. Records whose addresses don't reverse-resolve
// keep an empty HostName; reverse lookup is decoration, never an error
// source. Annotate returns once all lookups are done or the context got
// cancelled.
func (r *Resolver) Annotate(ctx context.Context, results []types.Result) {
	var wg sync.WaitGroup
	for i := range results {
		addr, err := types.ParseAddress(results[i].IPAddress)
		if err != nil {
			continue
		}
		i := i
		wg.Add(1)
		r.ResolveAddr(ctx, addr, func(name string, err error) {
			defer wg.Done()
			if err != nil {
				return
			}
			// Each lookup writes only its own record, so no locking needed.
			results[i].HostName = name
		})
	}
	wg.Wait()
}

// task grabs the next free DNS client and passes it to the specified
// function. After the function returns, the connection is put back into
// the free list.
func (r *Resolver) task(task func(conn *dns.Conn)) {
	r.mu.Lock()
	if len(r.free) == 0 {
		panic("no free DNS client connection available")
	}
	last := len(r.free) - 1
	conn := r.free[last]
	r.free = r.free[:last]
	r.mu.Unlock()
	task(conn)
	r.mu.Lock()
	r.free = append(r.free, conn)
	r.mu.Unlock()
}

// StopWait waits for all enqueued reverse lookup tasks to finish, and then
// shuts down the pool.
func (r *Resolver) StopWait() {
	r.workers.StopWait()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conn := range r.free {
		conn.Close()
	}
	r.free = nil
}
