// Package grasp - 2-opt local search (first-improvement).
//
// TwoOpt performs deterministic first-improvement 2-opt on an open tour.
// A move at (i, j) replaces edges (p[i-1],p[i]) and (p[j-1],p[j]) with
// (p[i-1],p[j-1]) and (p[i],p[j]) by reversing the segment p[i..j-1]:
//
//	Δ = d(a,c) + d(b,e) − d(a,b) − d(c,e),
//	a=p[i−1], b=p[i], c=p[j−1], e=p[j].
//
// Design:
//   - Deterministic scanning order 1 ≤ i < j ≤ n−1; j−i == 1 is skipped
//     (reversing a single element is a no-op).
//   - First-improvement: the sweep restarts from the top after every
//     accepted move; terminates when a full sweep finds nothing.
//   - The cached cost is updated incrementally (cost += Δ) instead of
//     re-summing the whole tour on every acceptance; the cache is exact
//     again the moment the move is applied.
//   - No RNG, no allocations, O(1) per candidate check, O(j−i) per
//     accepted reversal.
//
// Complexity: O(n²) per sweep; the sweep count is bounded by the total
// achievable improvement (integer costs strictly decrease on acceptance).
package grasp

// TwoOpt descends the tour in place to a 2-opt local optimum under the
// first-improvement rule. The cached TotalDistance must be valid on entry
// (run Reevaluate after construction) and is valid on return.
func TwoOpt(t *Tour, m DistanceModel) {
	n := len(t.Path)
	if n < 4 {
		// No non-adjacent pair exists; the tour is trivially 2-opt optimal.
		return
	}

	var (
		improved   bool // set when a move is accepted in the current sweep
		i, j       int  // candidate cut positions
		a, b, c, e int  // boundary cities around the cut
		delta      int  // new edges minus old edges (negative is good)
		lo, hi     int  // reversal bounds
	)

	improved = true
	for improved {
		improved = false

		for i = 1; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				if j-i == 1 {
					continue
				}

				a = t.Path[i-1]
				b = t.Path[i]
				c = t.Path[j-1]
				e = t.Path[j]

				delta = m.At(a, c) + m.At(b, e) - m.At(a, b) - m.At(c, e)
				if delta >= 0 {
					continue
				}

				// Apply: reverse p[i..j-1] in place and patch the cache.
				lo, hi = i, j-1
				for lo < hi {
					t.Path[lo], t.Path[hi] = t.Path[hi], t.Path[lo]
					lo++
					hi--
				}
				t.TotalDistance += delta

				improved = true
				break
			}
			if improved {
				break
			}
		}
	}
}
