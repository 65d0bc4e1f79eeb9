// Package grasp - 1-opt (position swap) local search.
//
// SwapOpt exchanges the cities at two path positions when the four edges
// touching those positions get cheaper. It is the comparison operator for
// local-search benchmarking (see bench.go) and is NOT combined with TwoOpt
// in the same descent.
//
// Design:
//   - Candidate pairs 1 ≤ i < j ≤ n−2: the first and last positions stay
//     fixed so every touched edge index stays in range.
//   - The acceptance test compares the same four edge slots before and
//     after the swap; overlapping slots for adjacent pairs cancel
//     symmetrically, so the comparison stays self-consistent.
//   - First-improvement with restart, exactly like TwoOpt: accepted swaps
//     re-evaluate the full cached cost, rejected swaps are reverted.
//
// Complexity: O(n²) per sweep plus O(n) per accepted move (full
// re-evaluation); terminates because integer costs strictly decrease.
package grasp

// SwapOpt descends the tour in place to a swap local optimum under the
// first-improvement rule. The cached TotalDistance must be valid on entry
// and is valid on return.
func SwapOpt(t *Tour, m DistanceModel) {
	n := len(t.Path)
	if n < 4 {
		return
	}

	var (
		improved bool // set when a swap is kept in the current sweep
		i, j     int  // candidate positions
		before   int  // touched-edge total prior to the swap
		after    int  // touched-edge total once swapped
	)

	improved = true
	for improved {
		improved = false

		for i = 1; i < n-1; i++ {
			for j = i + 1; j < n-1; j++ {
				before = touchedEdges(t, m, i, j)

				t.Path[i], t.Path[j] = t.Path[j], t.Path[i]
				after = touchedEdges(t, m, i, j)

				if after < before {
					// Keep the swap; restore full cache consistency.
					_ = t.Reevaluate(m)
					improved = true
					break
				}

				// Revert.
				t.Path[i], t.Path[j] = t.Path[j], t.Path[i]
			}
			if improved {
				break
			}
		}
	}
}

// touchedEdges sums the four edges adjacent to positions i and j in the
// current path: (i-1,i), (i,i+1), (j-1,j), (j,j+1).
//
// Contract: 1 <= i < j <= n-2 so all five indices are in range.
//
// Complexity: O(1).
func touchedEdges(t *Tour, m DistanceModel, i, j int) int {
	p := t.Path

	return m.At(p[i-1], p[i]) + m.At(p[i], p[i+1]) +
		m.At(p[j-1], p[j]) + m.At(p[j], p[j+1])
}
