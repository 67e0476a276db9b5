// Package lvperm is a small, dependency-light permutation algebra for
// reordering array-like data deterministically and reversibly.
//
// 🚀 What is lvperm?
//
//	A pure-Go library that brings together:
//		• Permutation values: validated bijections on {0..N-1}, immutable
//		• Sorting permutations: stable index sort of a sub-range, fixed points elsewhere
//		• Application: gather (Apply) and its exact inverse (ApplyInv)
//		• Algebra: left-to-right composition, inverse, lexicographic ordering
//
// ✨ Why choose lvperm?
//
//   - Deterministic – stability comes from the sort key, not the sort routine
//   - Safe – inputs are never mutated, errors are sentinels matched with errors.Is
//   - Generic – Apply/ApplyInv work on any slice type
//
// Layout:
//
//	perm/          — Permutation type and operations
//	internal/cli/  — permsort command tree (cobra + charmbracelet/log)
//	cmd/permsort/  — permsort binary
//
// Quick example:
//
//	values = [1 5 2 -2 7 -4], sort [1,4)
//	perm   = [0 3 2 1 4 5]
//	sorted = [1 -2 2 5 7 -4]
//
//	go get github.com/katalvlaran/lvperm/perm
package lvperm
