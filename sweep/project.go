// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"sort"

	"github.com/siemens/pingsweep/types"
)

// Project filters the outcomes of a finished sweep down to the successful
// replies and maps each into a compact [types.Result] record, sorted by
// ascending address value. Failures and timeouts are dropped silently, so
// a range with zero live hosts projects into an empty, non-error slice.
func Project(outcomes []types.ProbeOutcome) []types.Result {
	successes := Successes(outcomes)
	results := make([]types.Result, 0, len(successes))
	for _, o := range successes {
		results = append(results, types.NewResult(o))
	}
	return results
}

// Successes returns only the Success outcomes, sorted by ascending address
// value, without any projection.
func Successes(outcomes []types.ProbeOutcome) []types.ProbeOutcome {
	successes := make([]types.ProbeOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Status != types.Success {
			continue
		}
		successes = append(successes, o)
	}
	sort.Slice(successes, func(a, b int) bool {
		return successes[a].Address < successes[b].Address
	})
	return successes
}
