package grasp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grasptsp/grasp"
)

// TestReevaluate_KnownCost checks the cyclic sum on the canonical 4-city
// instance: 0→1→2→3→0 = 1+4+6+3 = 14.
func TestReevaluate_KnownCost(t *testing.T) {
	m := matrix4(t)

	tr := evaluatedTour(t, m, []int{0, 1, 2, 3})
	require.Equal(t, optimal4, tr.TotalDistance)
}

// TestReevaluate_Idempotent verifies evaluation is stable across calls.
func TestReevaluate_Idempotent(t *testing.T) {
	m := matrix4(t)
	tr := evaluatedTour(t, m, []int{2, 0, 3, 1})

	first := tr.TotalDistance
	require.NoError(t, tr.Reevaluate(m))
	require.Equal(t, first, tr.TotalDistance)
}

// TestReevaluate_SingleCity covers the degenerate instance: path [0],
// closing self-loop of length 0.
func TestReevaluate_SingleCity(t *testing.T) {
	m := single(t)

	tr := &grasp.Tour{Path: []int{0}}
	require.NoError(t, tr.Reevaluate(m))
	require.Equal(t, 0, tr.TotalDistance)
}

// TestReevaluate_LengthContract checks the fatal length mismatch sentinel.
func TestReevaluate_LengthContract(t *testing.T) {
	m := matrix4(t)

	tr := &grasp.Tour{Path: []int{0, 1, 2}}
	require.ErrorIs(t, tr.Reevaluate(m), grasp.ErrPathLength)
}

// TestClone_Independence verifies a clone shares no backing storage.
func TestClone_Independence(t *testing.T) {
	m := matrix4(t)
	tr := evaluatedTour(t, m, []int{0, 1, 2, 3})

	cp := tr.Clone()
	cp.Path[0], cp.Path[1] = cp.Path[1], cp.Path[0]
	cp.TotalDistance = -1

	require.Equal(t, []int{0, 1, 2, 3}, tr.Path)
	require.Equal(t, optimal4, tr.TotalDistance)
}

// TestValidatePermutation covers the permutation contract cases.
func TestValidatePermutation(t *testing.T) {
	cases := []struct {
		name string
		path []int
		n    int
		want error
	}{
		{"valid", []int{2, 0, 1}, 3, nil},
		{"single", []int{0}, 1, nil},
		{"short", []int{0, 1}, 3, grasp.ErrPathLength},
		{"long", []int{0, 1, 2, 3}, 3, grasp.ErrPathLength},
		{"duplicate", []int{0, 1, 1}, 3, grasp.ErrNotPermutation},
		{"out of range", []int{0, 1, 3}, 3, grasp.ErrNotPermutation},
		{"negative", []int{0, -1, 2}, 3, grasp.ErrNotPermutation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := grasp.ValidatePermutation(tc.path, tc.n)
			if tc.want == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSymmetricDifference verifies the position-wise Hamming metric — the
// same city set in a different order still counts mismatched positions.
func TestSymmetricDifference(t *testing.T) {
	a := &grasp.Tour{Path: []int{0, 1, 2, 3}}
	b := &grasp.Tour{Path: []int{0, 1, 2, 3}}
	c := &grasp.Tour{Path: []int{0, 2, 1, 3}}
	d := &grasp.Tour{Path: []int{3, 2, 1, 0}}

	require.Equal(t, 0, grasp.SymmetricDifference(a, b))
	require.Equal(t, 2, grasp.SymmetricDifference(a, c))
	require.Equal(t, 4, grasp.SymmetricDifference(a, d))
	require.Equal(t, 2, grasp.SymmetricDifference(c, a)) // symmetric
}
