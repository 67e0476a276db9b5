package perm

import (
	"cmp"
	"slices"
)

// SortingPerm returns the permutation p of length n that stably sorts
// values[from:to) in non-decreasing order and fixes every other position.
//
// After p is built, Apply(p, values[:n]) yields a slice whose [from,to) range
// is sorted while positions outside the range keep their original values.
// Equal values keep their original relative order.
//
// Algorithm:
//  1. Validate 0 ≤ from ≤ to ≤ n and len(values) ≥ n.
//  2. Sort order = [0..k-1] (k = to-from) by the key (values[from+j], j).
//     The position tie-break makes stability a property of the key,
//     so an unstable sort routine is sufficient.
//  3. mapping[from+j] = from+order[j] inside the range, mapping[i] = i outside.
//
// values is read-only. Floating-point keys are ordered with cmp.Compare,
// which places NaN before every number.
//
// Errors: ErrInvalidRange.
//
// Complexity: O(n + k·log k) time, O(n) space.
func SortingPerm[E cmp.Ordered](values []E, from, to, n int) (Permutation, error) {
	return SortingPermFunc(values, from, to, n, cmp.Compare[E])
}

// SortingPermFunc is SortingPerm with a caller-supplied three-way comparator,
// for keys that are not cmp.Ordered. compare must be a strict weak ordering;
// ties are still broken by original position. It panics if compare is nil.
func SortingPermFunc[E any](values []E, from, to, n int, compare func(a, b E) int) (Permutation, error) {
	if err := validateRange(len(values), from, to, n); err != nil {
		return Permutation{}, err
	}

	window := values[from:to]
	order := make([]int, len(window))
	for j := range order {
		order[j] = j
	}
	slices.SortFunc(order, func(x, y int) int {
		if c := compare(window[x], window[y]); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})

	mapping := make([]int, n)
	for i := range mapping {
		mapping[i] = i
	}
	for j, k := range order {
		mapping[from+j] = from + k
	}

	return Permutation{mapping: mapping}, nil
}
