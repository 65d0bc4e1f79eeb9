// Package grasp - path-relinking between two tours.
//
// Relink walks source toward target one positional mismatch at a time,
// locally optimizing after every step and keeping the best intermediate
// state. This is guided search, not crossover: positions are processed
// exactly once in index order, so no swap is ever revisited.
//
// Per mismatched position i:
//  1. locate target.Path[i]'s city inside the (mutating) source path,
//  2. swap it into position i,
//  3. re-evaluate and descend with TwoOpt,
//  4. snapshot if the result strictly beats the best seen.
//
// After the walk the source is restored to the best snapshot, which may be
// the original, an intermediate, or the fully relinked state — hence the
// bounded-improvement guarantee: the final cost never exceeds the source's
// original cost.
//
// Complexity: O(n) swaps, each followed by a 2-opt descent; dominated by
// the descents.
package grasp

// Relink intensifies src toward dst in place. shortCircuit stops the walk
// as soon as the refreshed cost equals the best recorded so far — a
// performance knob only; pass false for the reference full walk.
//
// Contract: src and dst are evaluated tours over the same model.
func Relink(src, dst *Tour, m DistanceModel, shortCircuit bool) {
	var (
		bestDistance = src.TotalDistance
		bestPath     = make([]int, len(src.Path))
	)
	copy(bestPath, src.Path)

	n := len(src.Path)

	var (
		i   int // walk position
		pos int // current location of dst.Path[i]'s city inside src
	)
	for i = 0; i < n; i++ {
		if src.Path[i] == dst.Path[i] {
			continue
		}

		// The city is guaranteed present: both paths permute the same set.
		// Scan from 0 — the 2-opt pass below may move already-fixed cities.
		for pos = 0; pos < n; pos++ {
			if src.Path[pos] == dst.Path[i] {
				break
			}
		}

		src.Path[i], src.Path[pos] = src.Path[pos], src.Path[i]
		_ = src.Reevaluate(m)

		TwoOpt(src, m)

		if src.TotalDistance < bestDistance {
			bestDistance = src.TotalDistance
			copy(bestPath, src.Path)
		}

		if shortCircuit && bestDistance == src.TotalDistance {
			break
		}
	}

	// Restore the best snapshot found along the trajectory.
	copy(src.Path, bestPath)
	src.TotalDistance = bestDistance
}
