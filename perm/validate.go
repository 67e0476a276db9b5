package perm

import "fmt"

// Validate checks that mapping is a permutation of {0..n-1} of length n.
// It allocates a single O(n) marker slice and nothing else.
//
// The first violation found is reported, wrapped around ErrInvalidPermutation:
//   - len(mapping) != n
//   - a value outside [0..n-1]
//   - a value that appears twice
//
// Complexity: O(n) time, O(n) space.
func Validate(mapping []int, n int) error {
	if n < 0 || len(mapping) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidPermutation, len(mapping), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = mapping[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: value %d at position %d out of range [0,%d)", ErrInvalidPermutation, v, i, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate value %d at position %d", ErrInvalidPermutation, v, i)
		}
		seen[v] = true
	}

	return nil
}

// validateRange enforces 0 ≤ from ≤ to ≤ n ≤ size for the sorting factories.
func validateRange(size, from, to, n int) error {
	if from < 0 || from > to || to > n {
		return fmt.Errorf("%w: [%d,%d) not within [0,%d]", ErrInvalidRange, from, to, n)
	}
	if size < n {
		return fmt.Errorf("%w: %d values, need at least %d", ErrInvalidRange, size, n)
	}

	return nil
}
