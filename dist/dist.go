// SPDX-License-Identifier: MIT
// Package dist — immutable symmetric integer distance models.
//
// A Matrix is the read-only contract every solver in this module relies on:
// an n×n grid of non-negative integer inter-city distances with a zero
// diagonal and d(i,j) == d(j,i). Once constructed it is never mutated, so it
// may be shared freely across goroutines without synchronization.
//
// Design:
//   - Dense row-major []int storage; At is a single multiply-add index.
//   - Strict sentinel errors from errors.go on construction; the hot-path
//     accessor At performs no error handling (contract: valid indices).
//   - FromCoords applies the TSPLIB EUC_2D convention: the Euclidean length
//     rounded to the nearest integer via floor(sqrt(dx²+dy²) + 0.5).
//
// Complexity:
//   - New/Validate: O(n²) scan. FromCoords: O(n²) pair loop.
//   - At/N: O(1), no allocations.
package dist

import "math"

// Matrix is a dense, immutable, symmetric distance matrix over n cities
// indexed 0..n-1. The zero value is not usable; construct via New or
// FromCoords.
type Matrix struct {
	n int   // matrix order (number of cities)
	w []int // row-major weights, len == n*n
}

// New builds a Matrix from n explicit rows and validates the full contract:
// square shape, non-negative entries, zero diagonal, symmetry.
//
// Complexity: O(n²) time, O(n²) space for the dense copy.
func New(n int, rows [][]int) (*Matrix, error) {
	if n <= 0 || len(rows) != n {
		return nil, ErrBadShape
	}

	m := &Matrix{n: n, w: make([]int, n*n)}

	var (
		i, j int // row/column indices
		v    int // entry under inspection
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrBadShape
		}
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if v < 0 {
				return nil, ErrNegativeWeight
			}
			if i == j && v != 0 {
				return nil, ErrNonZeroDiagonal
			}
			m.w[i*n+j] = v
		}
	}

	// Symmetry over the upper triangle (lower is implied).
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.w[i*n+j] != m.w[j*n+i] {
				return nil, ErrAsymmetry
			}
		}
	}

	return m, nil
}

// FromCoords builds a Matrix from 2-D city coordinates using the TSPLIB
// EUC_2D weight function: w(i,j) = floor(sqrt(dx²+dy²) + 0.5).
//
// Complexity: O(n²) time, O(n²) space.
func FromCoords(pts [][2]float64) (*Matrix, error) {
	n := len(pts)
	if n <= 0 {
		return nil, ErrBadShape
	}

	m := &Matrix{n: n, w: make([]int, n*n)}

	var (
		i, j   int     // pair indices
		dx, dy float64 // coordinate deltas
		d      int     // rounded Euclidean distance
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			d = int(math.Floor(math.Sqrt(dx*dx+dy*dy) + 0.5))
			m.w[i*n+j] = d
			m.w[j*n+i] = d
		}
	}

	return m, nil
}

// N returns the matrix order (number of cities).
func (m *Matrix) N() int { return m.n }

// At returns the distance between cities i and j.
//
// Contract: 0 <= i,j < N(). Callers on hot paths index valid cities only;
// out-of-range indices panic via the underlying slice bound check.
func (m *Matrix) At(i, j int) int { return m.w[i*m.n+j] }

// CheckIndex verifies that city index i lies in [0, n). Exposed for callers
// that ingest untrusted indices before entering hot loops.
func (m *Matrix) CheckIndex(i int) error {
	if i < 0 || i >= m.n {
		return ErrOutOfRange
	}

	return nil
}
