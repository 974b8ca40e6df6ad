// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	interval        *time.Duration
	probeTimeout    *time.Duration
	rawMode         *bool
	resolveNames    *bool
	outputPath      *string
	unprivileged    *bool
	maxOutstanding  *uint
	dnsWorkerNumber *uint
	spinnerInterval *time.Duration
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "pingsweep [flags] startaddress endaddress",
		Short:   "pingsweep probes a contiguous IPv4 range with paced ICMP echoes and reports the live hosts",
		Version: "1.0",
		Args:    cobra.ExactArgs(2),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if *interval < time.Millisecond {
				return fmt.Errorf("--interval must be at least 1ms")
			}
			if *probeTimeout < 100*time.Millisecond {
				return fmt.Errorf("--timeout must be at least 100ms")
			}
			if *dnsWorkerNumber < 1 || *dnsWorkerNumber > 10 {
				return fmt.Errorf("--dns-workers out of range [1..10]")
			}
			if *spinnerInterval < 10*time.Millisecond {
				return fmt.Errorf("--spinner must be at least 10ms")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return SweepAndReport(context.Background(), args[0], args[1])
		},
	}
	// Sets up the flags.
	interval = rootCmd.PersistentFlags().Duration(
		"interval", 25*time.Millisecond, "pacing interval between probe submissions")
	probeTimeout = rootCmd.PersistentFlags().Duration(
		"timeout", 2*time.Second, "per-probe echo reply timeout")
	rawMode = rootCmd.PersistentFlags().Bool(
		"raw", false, "emit unprojected probe outcomes instead of result records")
	resolveNames = rootCmd.PersistentFlags().Bool(
		"resolve", false, "decorate results with reverse-DNS host names")
	outputPath = rootCmd.PersistentFlags().StringP(
		"output", "o", "", "write results to this CSV file, sorted by address")
	unprivileged = rootCmd.PersistentFlags().Bool(
		"unprivileged", false, "use unprivileged UDP echoes instead of raw ICMP sockets")
	maxOutstanding = rootCmd.PersistentFlags().Uint(
		"max-outstanding", 0, "bound on concurrently outstanding probes (0: unbounded)")
	dnsWorkerNumber = rootCmd.PersistentFlags().Uint(
		"dns-workers", 4, "number of parallel reverse-DNS lookup workers")
	spinnerInterval = rootCmd.PersistentFlags().Duration(
		"spinner", 100*time.Millisecond, "spinner interval")
	return
}
