// Package grasp - unified dispatcher and parallel coordinators.
//
// Solve is the canonical entry point: validate inputs, spawn one trial
// loop per worker, join, optionally run the elite path-relinking sweep,
// and return the best tour snapshot.
//
// Coordinator state machine: Running → TimeExpired (terminal). The first
// worker to observe an elapsed budget raises the shared stop flag; every
// other worker observes the flag (or expiry itself) at the top of its next
// trial and exits. A worker mid-trial finishes that trial, so the actual
// wall clock may overrun by up to one trial — accepted by design.
//
// Guarantees:
//   - At least one full trial completes per worker even under a zero or
//     already-elapsed budget: the first loop iteration runs its body before
//     consulting the deadline.
//   - The returned Result carries the actual winning permutation (not a
//     placeholder reconstruction); its cached cost is exact.
//   - Published best costs are monotonically non-increasing in aggregate.
package grasp

import (
	"runtime"
	"sync"
	"time"
)

// Solve runs the configured GRASP variant against the model and returns
// the best tour found within the wall-clock budget.
//
// Errors: ErrNilModel/ErrEmptyModel on a broken model, ErrBadOptions on an
// inconsistent configuration, ErrNoSolution only if provably no trial
// completed (defensive; the first-trial guarantee prevents it).
func Solve(m DistanceModel, opts Options) (Result, error) {
	start := time.Now()

	if err := validateModel(m); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	rc := newRace(start.Add(opts.TimeLimit), opts.OnImprove)

	// The elite pool exists only for the path-relinking variant.
	var pool *elitePool
	if opts.Variant == VariantStaticPR {
		pool = newElitePool(opts.EliteSize, minDifference(m.N()))
	}

	// Phase 1: racing construct→improve trials across workers.
	var wg sync.WaitGroup
	var w int
	for w = 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			trialLoop(m, opts, id, rc, pool)
		}(w)
	}
	wg.Wait()

	// Phase 2: pairwise path-relinking over the elite members.
	if pool != nil {
		relinkSweep(m, opts, rc, pool)
	}

	best := rc.bestSnapshot()
	if best == nil {
		return Result{}, ErrNoSolution
	}

	return Result{
		Path:          best.Path,
		TotalDistance: best.TotalDistance,
		Trials:        int(rc.trials.Load()),
		Elapsed:       time.Since(start),
	}, nil
}

// trialLoop is one worker's unbounded trial loop: construct a semi-greedy
// tour, descend with 2-opt, publish, optionally feed the elite pool. The
// first trial runs unconditionally; afterwards the loop observes the stop
// flag and the deadline once per trial.
func trialLoop(m DistanceModel, opts Options, id int, rc *race, pool *elitePool) {
	rng := deriveRNG(opts.Seed, uint64(id))

	first := true
	for {
		if !first {
			if rc.shouldStop() {
				break
			}
			if rc.expired() {
				rc.signalStop()
				break
			}
		}
		first = false

		t := Construct(m, rng)
		_ = t.Reevaluate(m) // engine-built tours always satisfy the length contract
		TwoOpt(t, m)

		rc.trials.Add(1)
		rc.tryPublish(t)

		if pool != nil {
			pool.update(t.Clone())
		}
	}
}

// relinkSweep runs the intensification phase: for every unordered elite
// pair (i, j), clone member i, relink it toward member j, polish with
// 2-opt and attempt to publish. The outer index is parallelized; each pair
// checks the optional sweep budget before starting.
//
// A pool with fewer than two members degrades gracefully to a no-op.
func relinkSweep(m DistanceModel, opts Options, rc *race, pool *elitePool) {
	members := pool.snapshot()
	if len(members) < 2 {
		return
	}

	var (
		useBudget bool
		deadline  time.Time
	)
	if opts.RelinkBudget > 0 {
		useBudget = true
		deadline = time.Now().Add(opts.RelinkBudget)
	}

	var wg sync.WaitGroup
	var i int
	for i = 0; i < len(members); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			var (
				j int
				s *Tour
			)
			for j = i + 1; j < len(members); j++ {
				if useBudget && time.Now().After(deadline) {
					return
				}

				// members[i] stays pristine; the walk mutates the clone.
				s = members[i].Clone()
				Relink(s, members[j], m, opts.RelinkShortCircuit)
				TwoOpt(s, m)

				rc.tryPublish(s)
			}
		}(i)
	}
	wg.Wait()
}
