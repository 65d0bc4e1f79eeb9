// Package grasp implements a parallel GRASP (Greedy Randomized Adaptive
// Search Procedure) engine for the symmetric Travelling Salesman Problem.
//
// It races independent construct→improve trials across worker goroutines
// under a wall-clock budget, tracking a shared best tour:
//
//   - Construct — semi-greedy tour building over a restricted candidate
//     list (the nearest third of the unvisited cities).
//
//   - TwoOpt / SwapOpt — deterministic first-improvement local search
//     descents (edge exchange and position swap).
//
//   - VariantBasic — multi-start construct + 2-opt racing until expiry.
//
//   - VariantStaticPR — VariantBasic plus a diversity-filtered elite pool
//     and a final pairwise path-relinking sweep over its members.
//
//   - CompareLocalSearch — standalone 2-opt vs swap benchmark runs.
//
// All randomness flows through an explicit seed (Options.Seed); worker
// streams are derived deterministically, so single-worker runs reproduce
// exactly. Costs are non-negative integers throughout; a tour's cached
// TotalDistance is kept consistent at every point other goroutines may
// observe it.
//
// Use this package when you need good tours fast on instances in the
// hundreds of cities and can trade optimality guarantees for a time budget.
package grasp
