// Package grasp - standalone local-search comparison runs.
//
// CompareLocalSearch benchmarks the two descent operators against each
// other: for every run it constructs one fresh semi-greedy tour per
// operator and times the descent to its local optimum. It is a measurement
// mode, not part of the optimization core; persisting or printing the
// samples is the caller's concern.
package grasp

import "time"

// LocalSearchSample is one benchmark run: final cost and descent duration
// for each operator, starting from independent constructions.
type LocalSearchSample struct {
	Run         int           // 1-based run index
	TwoOptDist  int           // 2-opt local optimum cost
	TwoOptTime  time.Duration // 2-opt descent duration
	SwapOptDist int           // swap local optimum cost
	SwapOptTime time.Duration // swap descent duration
}

// CompareLocalSearch executes runs benchmark rounds on the model with a
// deterministic stream derived from seed.
//
// Errors: model sentinels from validateModel; runs <= 0 yields an empty
// sample set.
func CompareLocalSearch(m DistanceModel, runs int, seed int64) ([]LocalSearchSample, error) {
	if err := validateModel(m); err != nil {
		return nil, err
	}

	rng := rngFromSeed(seed)
	samples := make([]LocalSearchSample, 0, runs)

	var (
		run     int
		t       *Tour
		started time.Time
		s       LocalSearchSample
	)
	for run = 1; run <= runs; run++ {
		s = LocalSearchSample{Run: run}

		t = Construct(m, rng)
		_ = t.Reevaluate(m)
		started = time.Now()
		TwoOpt(t, m)
		s.TwoOptTime = time.Since(started)
		s.TwoOptDist = t.TotalDistance

		t = Construct(m, rng)
		_ = t.Reevaluate(m)
		started = time.Now()
		SwapOpt(t, m)
		s.SwapOptTime = time.Since(started)
		s.SwapOptDist = t.TotalDistance

		samples = append(samples, s)
	}

	return samples, nil
}
