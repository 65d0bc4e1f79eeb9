// SPDX-License-Identifier: MIT
// Package dist: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dist
// package. All constructors MUST return these sentinels and tests MUST check
// them via errors.Is. No function should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers.

package dist

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dist: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when the requested order is invalid (n <= 0)
	// or the supplied rows do not form an n×n matrix.
	ErrBadShape = errors.New("dist: invalid shape")

	// ErrNegativeWeight signals a negative inter-city distance; distances
	// must be non-negative integers.
	ErrNegativeWeight = errors.New("dist: negative distance")

	// ErrNonZeroDiagonal signals that a self-distance d(i,i) != 0 was
	// observed; the model requires a zero diagonal.
	ErrNonZeroDiagonal = errors.New("dist: diagonal not zero")

	// ErrAsymmetry signals that d(i,j) != d(j,i) for some pair; only
	// symmetric instances are supported.
	ErrAsymmetry = errors.New("dist: matrix is not symmetric")

	// ErrOutOfRange indicates that a city index is outside [0, n).
	ErrOutOfRange = errors.New("dist: city index out of range")
)
