// Package grasptsp is a parallel GRASP engine for the symmetric Travelling
// Salesman Problem — randomized construction, local search and
// path-relinking racing against a wall-clock budget.
//
// 🚀 What is grasp?
//
//	A reproducible, thread-safe solver toolkit that brings together:
//		• Distance models: dense symmetric integer matrices + EUC_2D geometry
//		• Construction: semi-greedy restricted-candidate-list tours
//		• Local search: first-improvement 2-opt and 1-opt (swap) descents
//		• Intensification: diversity-filtered elite pool + path-relinking
//		• Orchestration: multi-start workers sharing a lock-free best score
//		• Benchmarking: 2-opt vs swap comparison runs on TSPLIB instances
//
// ✨ Why choose grasp?
//
//   - Reproducible – every random stream is seedable, per-worker derived
//   - Rock-solid guarantees – strict sentinel errors, invariant-checked tours
//   - Pure Go – no cgo, no hidden deps
//   - Budget-driven – a single wall-clock limit governs the whole run
//
// Under the hood, everything is organized under three subpackages:
//
//	dist/   — immutable integer distance matrices (EXPLICIT / EUC_2D)
//	tsplib/ — loader for the symmetric TSPLIB-like text format
//	grasp/  — the optimization core: construct → improve → relink → race
//
// Quick start:
//
//	m, _ := tsplib.Load("instances/bays29.tsp")
//	res, _ := grasp.Solve(m, grasp.DefaultOptions())
//	fmt.Println(res.TotalDistance, res.Path)
package grasptsp
