package perm

import "fmt"

// Apply reorders a by p and returns a fresh slice b with
//
//	b[i] = a[p.At(i)]
//
// i.e. the value that lands at position i is the one previously at p.At(i).
// a is never modified.
//
// Errors: ErrLengthMismatch if len(a) != p.Len(); the result is then nil.
//
// Complexity: O(N) time and space.
func Apply[S ~[]E, E any](p Permutation, a S) (S, error) {
	if len(a) != len(p.mapping) {
		return nil, fmt.Errorf("%w: slice length %d, permutation length %d", ErrLengthMismatch, len(a), len(p.mapping))
	}
	b := make(S, len(a))
	for i, src := range p.mapping {
		b[i] = a[src]
	}

	return b, nil
}

// ApplyInv undoes Apply: it returns a fresh slice b with
//
//	b[p.At(i)] = a[i]
//
// so ApplyInv(p, Apply(p, a)) and Apply(p, ApplyInv(p, a)) both equal a.
// a is never modified.
//
// Errors: ErrLengthMismatch if len(a) != p.Len(); the result is then nil.
//
// Complexity: O(N) time and space.
func ApplyInv[S ~[]E, E any](p Permutation, a S) (S, error) {
	if len(a) != len(p.mapping) {
		return nil, fmt.Errorf("%w: slice length %d, permutation length %d", ErrLengthMismatch, len(a), len(p.mapping))
	}
	b := make(S, len(a))
	for i, dst := range p.mapping {
		b[dst] = a[i]
	}

	return b, nil
}
