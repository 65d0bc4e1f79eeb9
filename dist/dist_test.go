package dist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grasptsp/dist"
)

// TestNew_ValidMatrix verifies round-trip access on a small valid instance.
func TestNew_ValidMatrix(t *testing.T) {
	rows := [][]int{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	}

	m, err := dist.New(4, rows)
	require.NoError(t, err)
	require.Equal(t, 4, m.N())
	require.Equal(t, 4, m.At(1, 2))
	require.Equal(t, 4, m.At(2, 1))
	require.Equal(t, 0, m.At(3, 3))
}

// TestNew_ContractViolations checks every sentinel the constructor can emit.
func TestNew_ContractViolations(t *testing.T) {
	cases := []struct {
		name string
		n    int
		rows [][]int
		want error
	}{
		{"zero order", 0, nil, dist.ErrBadShape},
		{"ragged rows", 2, [][]int{{0, 1}, {1}}, dist.ErrBadShape},
		{"row count mismatch", 3, [][]int{{0, 1, 2}, {1, 0, 3}}, dist.ErrBadShape},
		{"negative entry", 2, [][]int{{0, -1}, {-1, 0}}, dist.ErrNegativeWeight},
		{"non-zero diagonal", 2, [][]int{{1, 2}, {2, 0}}, dist.ErrNonZeroDiagonal},
		{"asymmetric", 2, [][]int{{0, 2}, {3, 0}}, dist.ErrAsymmetry},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dist.New(tc.n, tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFromCoords_EUC2D verifies the TSPLIB nearest-integer rounding:
// 3-4-5 triangle plus a pair at distance sqrt(2) ≈ 1.414 → 1.
func TestFromCoords_EUC2D(t *testing.T) {
	pts := [][2]float64{{0, 0}, {3, 4}, {1, 1}}

	m, err := dist.FromCoords(pts)
	require.NoError(t, err)
	require.Equal(t, 5, m.At(0, 1))
	require.Equal(t, 1, m.At(0, 2))
	require.Equal(t, m.At(1, 2), m.At(2, 1))
	require.Equal(t, 0, m.At(0, 0))
}

// TestFromCoords_SingleCity covers the degenerate one-city model.
func TestFromCoords_SingleCity(t *testing.T) {
	m, err := dist.FromCoords([][2]float64{{7, 7}})
	require.NoError(t, err)
	require.Equal(t, 1, m.N())
	require.Equal(t, 0, m.At(0, 0))
}

// TestCheckIndex exercises the untrusted-index guard.
func TestCheckIndex(t *testing.T) {
	m, err := dist.FromCoords([][2]float64{{0, 0}, {1, 0}})
	require.NoError(t, err)

	require.NoError(t, m.CheckIndex(0))
	require.NoError(t, m.CheckIndex(1))
	require.ErrorIs(t, m.CheckIndex(-1), dist.ErrOutOfRange)
	require.ErrorIs(t, m.CheckIndex(2), dist.ErrOutOfRange)
}
