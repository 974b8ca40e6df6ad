// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/siemens/pingsweep/types"
)

// writeCSV persists the result records to a comma-delimited file with a
// header row, in the order given (the projector already sorted them by
// address value). The HostName column is only emitted when reverse-DNS
// decoration was requested.
func writeCSV(path string, results []types.Result, withHostNames bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	header := []string{"IPAddress", "Bytes", "Ttl", "ResponseTime"}
	if withHostNames {
		header = append(header, "HostName")
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, result := range results {
		fields := result.Fields()
		if !withHostNames {
			fields = fields[:len(fields)-1]
		}
		if err := w.Write(fields); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
