// Package grasp - semi-greedy randomized construction.
//
// Construct builds one complete tour from scratch: start at a uniformly
// random city, then repeatedly rank the unvisited cities by distance to the
// last placed city, restrict to the nearest third (the restricted candidate
// list) and pick uniformly inside it.
//
// Design:
//   - Randomness comes only from the supplied *rand.Rand (seedable tests).
//   - Candidate ranking breaks distance ties by ascending city index so a
//     fixed seed yields one reproducible tour.
//   - The produced tour is a valid permutation but its cost is NOT
//     evaluated; callers run Reevaluate (the improvement loop does).
//
// Complexity: O(n² log n) time (n ranking rounds), O(n) space.
package grasp

import (
	"math/rand"
	"sort"
)

// rclDivisor restricts the candidate list to the nearest third of the
// remaining cities: k = ceil(remaining/3).
const rclDivisor = 3

// candidate pairs an unvisited city with its distance to the last placed
// city for one ranking round.
type candidate struct {
	city int
	d    int
}

// Construct returns one randomized semi-greedy tour over the model.
// rng==nil selects the deterministic default stream.
//
// The procedure always terminates in n placement steps; when a single city
// remains the candidate list has size 1 and the choice is forced.
func Construct(m DistanceModel, rng *rand.Rand) *Tour {
	n := m.N()
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	t := &Tour{Path: make([]int, 0, n)}

	// Remaining cities, ascending index; shrinks as cities are placed.
	remaining := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		remaining[i] = i
	}

	// Uniform random start city.
	start := r.Intn(len(remaining))
	t.Path = append(t.Path, remaining[start])
	remaining = append(remaining[:start], remaining[start+1:]...)

	// Scratch candidate buffer reused across rounds (no per-round allocs).
	cands := make([]candidate, 0, n)

	var (
		last int // city placed most recently
		c    int // unvisited city under ranking
		k    int // restricted candidate list size
		next int // chosen city for this round
		j    int // removal scan index
	)
	for len(remaining) > 0 {
		last = t.Path[len(t.Path)-1]

		// Rank unvisited cities by ascending distance to last; equal
		// distances order by ascending city index for determinism.
		cands = cands[:0]
		for _, c = range remaining {
			cands = append(cands, candidate{city: c, d: m.At(last, c)})
		}
		sort.Slice(cands, func(a, b int) bool {
			if cands[a].d != cands[b].d {
				return cands[a].d < cands[b].d
			}

			return cands[a].city < cands[b].city
		})

		// RCL = nearest third, at least one candidate.
		k = (len(cands) + rclDivisor - 1) / rclDivisor
		next = cands[r.Intn(k)].city

		t.Path = append(t.Path, next)

		// Drop next from remaining, preserving ascending order.
		for j = 0; j < len(remaining); j++ {
			if remaining[j] == next {
				remaining = append(remaining[:j], remaining[j+1:]...)
				break
			}
		}
	}

	return t
}
