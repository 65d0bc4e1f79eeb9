// Package grasp - bounded, diversity-filtered elite pool.
//
// The pool retains high-quality tours for the path-relinking phase while
// forcing its members pairwise apart by at least minDiff positions
// (SymmetricDifference). Acceptance policy, in order:
//
//  1. Empty pool ⇒ insert unconditionally.
//  2. A candidate closer than minDiff to ANY member is dropped — even when
//     it beats every member on cost. Diversity over greed; intentional.
//  3. Accepted + spare capacity ⇒ append.
//  4. Accepted + at capacity ⇒ replace the worst member only if the
//     candidate is strictly cheaper than it; otherwise drop the candidate.
//
// Ownership: one pool per run, mutated only through update/snapshot, both
// serialized by the internal mutex. Candidates are cloned by the caller
// before submission, so the pool owns its members outright.
package grasp

import "sync"

// minDiffFraction sets the diversity threshold to 10% of the instance
// size: minDiff = round(0.1 * n), fixed per run.
const minDiffFraction = 0.1

// minDifference computes the per-run diversity threshold for n cities.
func minDifference(n int) int {
	return int(minDiffFraction*float64(n) + 0.5)
}

// elitePool is a bounded collection of tours with pairwise position-wise
// distance >= minDiff. Members are unsorted; the worst member is located
// by scan on demand (pools are small).
type elitePool struct {
	mu      sync.Mutex
	members []*Tour
	maxSize int
	minDiff int
}

// newElitePool sizes an empty pool for maxSize members with diversity
// threshold minDiff.
func newElitePool(maxSize, minDiff int) *elitePool {
	return &elitePool{
		members: make([]*Tour, 0, maxSize),
		maxSize: maxSize,
		minDiff: minDiff,
	}
}

// update inserts candidate subject to the diversity and quality rules.
// The pool takes ownership of candidate; callers must submit a clone.
//
// Complexity: O(size·n) for the diversity scan.
func (p *elitePool) update(candidate *Tour) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.members) == 0 {
		p.members = append(p.members, candidate)

		return
	}

	// Reject near-duplicates of any member.
	var s *Tour
	for _, s = range p.members {
		if SymmetricDifference(s, candidate) < p.minDiff {
			return
		}
	}

	if len(p.members) < p.maxSize {
		p.members = append(p.members, candidate)

		return
	}

	// At capacity: replace the current worst only on strict improvement.
	var (
		worst int // index of the costliest member
		k     int
	)
	for k = 1; k < len(p.members); k++ {
		if p.members[k].TotalDistance > p.members[worst].TotalDistance {
			worst = k
		}
	}
	if candidate.TotalDistance < p.members[worst].TotalDistance {
		p.members[worst] = candidate
	}
}

// snapshot returns an independent copy of the current membership, cloning
// every tour so the relinking phase can mutate freely while workers are
// still draining.
//
// Complexity: O(size·n).
func (p *elitePool) snapshot() []*Tour {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*Tour, len(p.members))
	var k int
	for k = range p.members {
		out[k] = p.members[k].Clone()
	}

	return out
}

// size reports the current member count.
func (p *elitePool) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.members)
}
