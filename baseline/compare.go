// SPDX-License-Identifier: MIT

package baseline

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/contagion/report"
)

// KendallTau returns the Tau-a rank correlation between the scores of a and
// b: 1 when both order every pair of nodes the same way, -1 when they
// disagree on every pair.
//
// Errors: ErrInvalidParameter if either report is nil, their lengths
// differ, or they hold fewer than two nodes.
func KendallTau(a, b *report.Report) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%w: nil report", ErrInvalidParameter)
	}
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%w: reports cover %d and %d nodes", ErrInvalidParameter, a.Len(), b.Len())
	}
	if a.Len() < 2 {
		return 0, fmt.Errorf("%w: need at least 2 nodes, got %d", ErrInvalidParameter, a.Len())
	}

	return stat.Kendall(a.Scores, b.Scores, nil), nil
}
