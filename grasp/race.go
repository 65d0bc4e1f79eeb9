// Package grasp - shared best-score coordination between workers.
//
// A race is the single coordination object handed by reference to every
// worker (never ambient globals). It exposes exactly the surface the
// coordinator contract needs:
//
//   - tryPublish(tour) — compare-and-swap publication of a strictly
//     smaller cost; the published tour is snapshotted under a short-held
//     mutex so the winning permutation itself can be returned.
//   - shouldStop / signalStop — cooperative stop flag, checked once per
//     trial; a worker mid-trial always finishes before observing it.
//   - expired — wall-clock deadline check.
//
// Consistency: the best cost is monotonically non-increasing — the CAS
// loop only replaces a larger value. Reads are lock-free; concurrent
// near-simultaneous improvements may interleave snapshot writes, so the
// snapshot guard re-compares under the mutex.
package grasp

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// race carries the shared minimum cost, the winning tour snapshot, the
// cooperative stop flag and the run deadline.
type race struct {
	bestCost  atomic.Int64 // smallest published cost; math.MaxInt64 until first publication
	stop      atomic.Bool  // cooperative stop signal
	trials    atomic.Int64 // completed construct+improve trials
	deadline  time.Time    // absolute wall-clock budget boundary
	onImprove func(int)    // optional improvement callback (may be nil)

	mu   sync.Mutex // guards best
	best *Tour      // snapshot of the cheapest published tour
}

// newRace initializes the coordination state for one run.
func newRace(deadline time.Time, onImprove func(int)) *race {
	r := &race{deadline: deadline, onImprove: onImprove}
	r.bestCost.Store(math.MaxInt64)

	return r
}

// tryPublish installs t as the new best iff its cost is strictly smaller
// than the current published minimum. Returns whether the publication won.
// The tour is cloned under the mutex; the caller keeps ownership of t.
//
// Complexity: O(1) on loss, O(n) clone on win.
func (r *race) tryPublish(t *Tour) bool {
	c := int64(t.TotalDistance)

	for {
		cur := r.bestCost.Load()
		if c >= cur {
			return false
		}
		if !r.bestCost.CompareAndSwap(cur, c) {
			continue // lost the interleave; re-read and re-compare
		}

		// Snapshot under short-held exclusion. A racing winner with an even
		// smaller cost may already hold the slot; re-compare before writing.
		r.mu.Lock()
		if r.best == nil || t.TotalDistance < r.best.TotalDistance {
			r.best = t.Clone()
		}
		r.mu.Unlock()

		if r.onImprove != nil {
			r.onImprove(t.TotalDistance)
		}

		return true
	}
}

// bestSnapshot returns an independent copy of the current best tour, or nil
// when nothing has been published.
func (r *race) bestSnapshot() *Tour {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.best == nil {
		return nil
	}

	return r.best.Clone()
}

// shouldStop reports the cooperative stop flag.
func (r *race) shouldStop() bool { return r.stop.Load() }

// signalStop raises the cooperative stop flag for all workers.
func (r *race) signalStop() { r.stop.Store(true) }

// expired reports whether the wall-clock budget has elapsed.
func (r *race) expired() bool { return !time.Now().Before(r.deadline) }
