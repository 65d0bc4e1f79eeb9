// Command grasp solves symmetric TSP instances with the GRASP engine.
//
// Variants:
//
//	basic     — multi-start construct + 2-opt racing a time budget
//	staticpr  — basic plus elite pool and pairwise path-relinking
//	benchmark — 2-opt vs swap local-search comparison runs (CSV output)
//
// The command is a thin shell: flag parsing, instance loading and output
// formatting live here; the engine itself never touches files or stdout.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/grasptsp/grasp"
	"github.com/katalvlaran/grasptsp/tsplib"
)

func main() {
	var (
		instanceFile = flag.String("f", "instances/bays29.tsp", "path to the TSPLIB-like instance file")
		timeLimit    = flag.Int("t", 120, "time limit for the GRASP run in seconds")
		variant      = flag.String("v", "basic", "variant: basic | staticpr | benchmark")
		eliteSize    = flag.Int("e", 10, "elite pool size for staticpr (ignored for basic)")
		seed         = flag.Int64("seed", 0, "random seed; 0 selects the stable default stream")
		workers      = flag.Int("workers", 0, "parallel workers; 0 uses all CPUs")
		runs         = flag.Int("runs", 100, "benchmark repetitions (benchmark variant only)")
	)
	flag.Parse()

	m, err := tsplib.Load(*instanceFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load instance:", err)
		os.Exit(2)
	}

	switch strings.ToLower(*variant) {
	case "basic", "staticpr":
		opts := grasp.DefaultOptions()
		opts.TimeLimit = time.Duration(*timeLimit) * time.Second
		opts.EliteSize = *eliteSize
		opts.Seed = *seed
		opts.Workers = *workers
		opts.OnImprove = func(total int) {
			fmt.Println("Improved distance =", total)
		}
		if strings.ToLower(*variant) == "staticpr" {
			opts.Variant = grasp.VariantStaticPR
		}

		res, err := grasp.Solve(m, opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, "solve:", err)
			os.Exit(1)
		}

		fmt.Println("\nBest solution found:", res.Path)
		fmt.Println("Total distance:", res.TotalDistance)
		fmt.Printf("Trials: %d, elapsed: %s\n", res.Trials, res.Elapsed.Round(time.Millisecond))

	case "benchmark":
		samples, err := grasp.CompareLocalSearch(m, *runs, *seed)
		if err != nil {
			fmt.Fprintln(os.Stderr, "benchmark:", err)
			os.Exit(1)
		}

		for _, s := range samples {
			fmt.Printf("Run %d: 2-opt distance=%d time=%s | swap distance=%d time=%s\n",
				s.Run, s.TwoOptDist, s.TwoOptTime, s.SwapOptDist, s.SwapOptTime)
		}

		out := instanceName(*instanceFile) + "_benchmark_results.csv"
		if err = writeCSV(out, samples); err != nil {
			fmt.Fprintln(os.Stderr, "write csv:", err)
			os.Exit(1)
		}
		fmt.Println("Benchmark results saved to", out)

	default:
		fmt.Fprintf(os.Stderr, "unknown variant %q; use basic | staticpr | benchmark\n", *variant)
		os.Exit(2)
	}
}

// instanceName strips the directory and extension from the instance path.
func instanceName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// writeCSV persists benchmark samples with the canonical header.
func writeCSV(path string, samples []grasp.LocalSearchSample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err = w.Write([]string{"Run", "2-opt Distance", "2-opt Time (µs)", "Swap Distance", "Swap Time (µs)"}); err != nil {
		return err
	}
	for _, s := range samples {
		rec := []string{
			strconv.Itoa(s.Run),
			strconv.Itoa(s.TwoOptDist),
			strconv.FormatInt(s.TwoOptTime.Microseconds(), 10),
			strconv.Itoa(s.SwapOptDist),
			strconv.FormatInt(s.SwapOptTime.Microseconds(), 10),
		}
		if err = w.Write(rec); err != nil {
			return err
		}
	}

	return w.Error()
}
