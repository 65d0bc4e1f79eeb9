// Package grasp - tour representation and cost bookkeeping.
//
// A Tour is a candidate solution: an open permutation of all city indices
// plus its cached cyclic length. The cache discipline is strict: every
// mutation either updates the cache incrementally (local-search moves,
// which know their delta) or calls Reevaluate before the tour is observed
// by any other component.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from
//     types.go.
//   - O(n) helpers, in-place mutation where possible, explicit Clone when
//     ownership crosses a boundary (elite pool, best snapshot).
package grasp

// Tour is a permutation of all city indices (open form; the closing edge
// Path[n-1]→Path[0] is implied) with its cached total cyclic length.
type Tour struct {
	// Path holds each city index exactly once; len(Path) == model order.
	Path []int

	// TotalDistance caches the cyclic length of Path. Valid whenever the
	// tour is at rest; local-search sweeps may hold it stale mid-move but
	// restore consistency before returning.
	TotalDistance int
}

// Reevaluate recomputes TotalDistance from scratch: the sum over
// consecutive pairs plus the closing edge. The single entry point for full
// cost recomputation.
//
// Returns ErrPathLength if the path does not cover the model order; this is
// a contract breach by the caller, never produced by engine-built tours.
//
// Complexity: O(n) time, O(1) space.
func (t *Tour) Reevaluate(m DistanceModel) error {
	n := m.N()
	if len(t.Path) != n {
		return ErrPathLength
	}

	var (
		sum int // running cyclic length
		i   int // edge index
	)
	for i = 0; i < n-1; i++ {
		sum += m.At(t.Path[i], t.Path[i+1])
	}
	// Closing edge back to the start; for n==1 this is the zero self-loop.
	sum += m.At(t.Path[n-1], t.Path[0])

	t.TotalDistance = sum

	return nil
}

// Clone returns an independent deep copy. Use whenever a tour's ownership
// crosses a goroutine or pool boundary.
//
// Complexity: O(n) time, O(n) space.
func (t *Tour) Clone() *Tour {
	cp := &Tour{
		Path:          make([]int, len(t.Path)),
		TotalDistance: t.TotalDistance,
	}
	copy(cp.Path, t.Path)

	return cp
}

// ValidatePermutation checks that path is a permutation of {0..n-1} of
// length n: no out-of-range entries, no duplicates, no omissions.
//
// Complexity: O(n) time, O(n) space for the marker slice.
func ValidatePermutation(path []int, n int) error {
	if n <= 0 || len(path) != n {
		return ErrPathLength
	}

	seen := make([]bool, n)

	var (
		i int // position
		v int // city at position i
	)
	for i = 0; i < n; i++ {
		v = path[i]
		if v < 0 || v >= n {
			return ErrNotPermutation
		}
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// SymmetricDifference counts positions k where a.Path[k] != b.Path[k] — the
// position-wise Hamming distance over the permutation representation (NOT a
// set difference). This is the elite-pool diversity metric.
//
// Contract: both paths have equal length (engine tours over one model
// always do); extra positions of a longer path are ignored.
//
// Complexity: O(n) time, O(1) space.
func SymmetricDifference(a, b *Tour) int {
	n := len(a.Path)
	if len(b.Path) < n {
		n = len(b.Path)
	}

	var (
		k    int // position
		diff int // mismatch count
	)
	for k = 0; k < n; k++ {
		if a.Path[k] != b.Path[k] {
			diff++
		}
	}

	return diff
}
