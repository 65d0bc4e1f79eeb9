// Package grasp_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal
// and avoid duplicating functionality that already lives in focused test
// files.
package grasp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/grasptsp/dist"
	"github.com/katalvlaran/grasptsp/grasp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)

	// optimal4 is the known optimal cyclic cost of the canonical 4-city
	// scenario instance (path 0,1,2,3: 1+4+6+3).
	optimal4 = 14
)

// -----------------------------------------------------------------------------
// Instance builders
// -----------------------------------------------------------------------------

// matrix4 returns the canonical 4-city scenario instance.
func matrix4(t testing.TB) *dist.Matrix {
	t.Helper()

	m, err := dist.New(4, [][]int{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})
	if err != nil {
		t.Fatalf("matrix4: %v", err)
	}

	return m
}

// circle returns an n-city ring instance: cities evenly spaced on a circle
// of radius r, so the optimal tour follows the boundary.
func circle(t testing.TB, n int, r float64) *dist.Matrix {
	t.Helper()

	pts := make([][2]float64, n)
	var (
		i     int
		theta float64
	)
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{r * math.Cos(theta), r * math.Sin(theta)}
	}

	m, err := dist.FromCoords(pts)
	if err != nil {
		t.Fatalf("circle(%d): %v", n, err)
	}

	return m
}

// single returns the degenerate one-city instance.
func single(t testing.TB) *dist.Matrix {
	t.Helper()

	m, err := dist.New(1, [][]int{{0}})
	if err != nil {
		t.Fatalf("single: %v", err)
	}

	return m
}

// -----------------------------------------------------------------------------
// Tour builders
// -----------------------------------------------------------------------------

// evaluatedTour wraps a path into a Tour with its cache populated.
func evaluatedTour(t testing.TB, m *dist.Matrix, path []int) *grasp.Tour {
	t.Helper()

	tr := &grasp.Tour{Path: append([]int(nil), path...)}
	if err := tr.Reevaluate(m); err != nil {
		t.Fatalf("Reevaluate(%v): %v", path, err)
	}

	return tr
}

// randomPermutation returns a shuffled permutation of 0..n-1.
func randomPermutation(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	rng.Shuffle(n, func(a, b int) { p[a], p[b] = p[b], p[a] })

	return p
}

// permutations4 enumerates all 24 permutations of {0,1,2,3}.
func permutations4() [][]int {
	var (
		out  [][]int
		a    = []int{0, 1, 2, 3}
		heap func(k int)
	)
	heap = func(k int) {
		if k == 1 {
			out = append(out, append([]int(nil), a...))

			return
		}
		var i int
		for i = 0; i < k; i++ {
			heap(k - 1)
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
		}
	}
	heap(len(a))

	return out
}

// Repeat runs fn as n sequential subtests; handy for flushing out
// nondeterminism in randomized components.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()

	var i int
	for i = 0; i < n; i++ {
		ok := t.Run("rep", fn)
		if !ok {
			return
		}
	}
}
