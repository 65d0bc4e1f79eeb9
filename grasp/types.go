// Package grasp - shared types, options and the sentinel error set.
//
// This file defines ONLY package-level contracts: the DistanceModel
// interface the engine consumes, the Variant/Options configuration surface,
// the Result produced by Solve, and strict sentinel errors. All exported
// functions return these sentinels and tests check them via errors.Is; no
// fmt.Errorf in hot paths.
package grasp

import (
	"errors"
	"time"
)

var (
	// ErrNilModel is returned when a nil DistanceModel is passed to an
	// exported entry point.
	ErrNilModel = errors.New("grasp: nil distance model")

	// ErrEmptyModel is returned when the model reports a non-positive
	// number of cities.
	ErrEmptyModel = errors.New("grasp: model has no cities")

	// ErrPathLength signals a Tour whose path length does not match the
	// model order. This is a programming-contract breach by the caller;
	// tours produced by the engine never trigger it.
	ErrPathLength = errors.New("grasp: path length does not match city count")

	// ErrNotPermutation signals a path with an out-of-range or duplicated
	// city index.
	ErrNotPermutation = errors.New("grasp: path is not a permutation")

	// ErrBadOptions is returned when Options fail validation (negative
	// budget, negative worker count, non-positive elite size for the
	// path-relinking variant, unknown variant).
	ErrBadOptions = errors.New("grasp: invalid options")

	// ErrNoSolution is returned if the coordinator can prove that no trial
	// completed. The worker loops run their first trial before consulting
	// the deadline, so this is a defensive sentinel, not an expected path.
	ErrNoSolution = errors.New("grasp: no trial completed")
)

// DistanceModel is the immutable distance contract the engine relies on:
// n > 0 cities indexed 0..n-1, At symmetric with a zero diagonal and
// non-negative integer entries. Implementations must be safe for
// concurrent reads (dist.Matrix qualifies).
type DistanceModel interface {
	// N reports the number of cities.
	N() int
	// At returns the distance between cities i and j, 0 <= i,j < N().
	At(i, j int) int
}

// Variant selects the coordinator behavior in Solve.
type Variant uint8

const (
	// VariantBasic races construct + 2-opt trials and returns the best.
	VariantBasic Variant = iota
	// VariantStaticPR additionally maintains an elite pool and finishes
	// with a pairwise path-relinking sweep over its members.
	VariantStaticPR
)

// Options configures a Solve run. The zero value is NOT usable; start from
// DefaultOptions and override what you need.
type Options struct {
	// TimeLimit is the wall-clock budget for the whole run. Workers check
	// it cooperatively once per trial, so the actual runtime may overshoot
	// by up to one trial. A zero budget still completes one trial per
	// worker (the first trial always runs).
	TimeLimit time.Duration

	// Workers is the number of parallel trial loops. 0 ⇒ runtime.NumCPU().
	Workers int

	// EliteSize bounds the elite pool (VariantStaticPR only).
	EliteSize int

	// Seed drives all randomness. Worker streams are derived from it with
	// a SplitMix64 mix, so a fixed seed with Workers==1 reproduces exactly.
	// 0 selects the stable default stream.
	Seed int64

	// Variant picks the coordinator (basic or static path-relinking).
	Variant Variant

	// RelinkBudget soft-bounds the final pairwise path-relinking sweep
	// (VariantStaticPR): each pair checks it before starting. 0 lets the
	// sweep run to completion — it is already bounded by the pair count,
	// at most EliteSize·(EliteSize−1)/2 combinations.
	RelinkBudget time.Duration

	// RelinkShortCircuit stops a path-relinking walk as soon as the
	// refreshed cost equals the best recorded along the walk. Performance
	// knob only; the reference behavior (false) walks every mismatched
	// position.
	RelinkShortCircuit bool

	// OnImprove, when non-nil, is invoked after each published improvement
	// with the new best cost. Called concurrently from worker goroutines;
	// the callback must be cheap and goroutine-safe.
	OnImprove func(total int)
}

// DefaultOptions mirrors the defaults of the reference command line:
// 120 s budget, elite pool of 10, all CPUs, basic variant.
func DefaultOptions() Options {
	return Options{
		TimeLimit: 120 * time.Second,
		Workers:   0,
		EliteSize: 10,
		Seed:      0,
		Variant:   VariantBasic,
	}
}

// Result is the outcome of a Solve run.
type Result struct {
	// Path is the winning permutation of all city indices (open form; the
	// closing edge Path[n-1]→Path[0] is implied).
	Path []int

	// TotalDistance is the cyclic length of Path.
	TotalDistance int

	// Trials counts completed construct+improve trials across all workers
	// (path-relinking combinations are not counted as trials).
	Trials int

	// Elapsed is the wall-clock duration of the whole run.
	Elapsed time.Duration
}

// validateOptions checks internal consistency of Options without touching
// the model.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrBadOptions
	}
	if opts.Workers < 0 {
		return ErrBadOptions
	}
	switch opts.Variant {
	case VariantBasic:
		// EliteSize is ignored.
	case VariantStaticPR:
		if opts.EliteSize <= 0 {
			return ErrBadOptions
		}
	default:
		return ErrBadOptions
	}

	return nil
}

// validateModel guards the model shape shared by every exported entry point.
//
// Complexity: O(1) — value contracts (symmetry, negativity) are owned by
// the model constructor, not re-scanned here.
func validateModel(m DistanceModel) error {
	if m == nil {
		return ErrNilModel
	}
	if m.N() <= 0 {
		return ErrEmptyModel
	}

	return nil
}
