// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package dnshost decorates sweep results with host names via reverse DNS.

Host naming is pure post-processing: the sweep engine itself never touches
DNS, and a failed reverse lookup simply leaves a record's HostName empty.
[Resolver] keeps a small pool of DNS client connections so that a result
set's PTR queries run concurrently without hammering the resolver.

Usage

	dnsclnt := dns.Client{}
	resolver, err := dnshost.New(
	    context.Background(),
	    4,                 // number of parallel DNS connections and thus workers
	    &dnsclnt,
	    "192.168.1.1:53",  // address of server/resolver
	)
	resolver.Annotate(ctx, results) // fills in HostName across the set
	resolver.StopWait()

# Acknowledgements

Under its hood, [Resolver] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package dnshost
