// Package perm: sentinel error set.
// Every function returns one of these (possibly wrapped with position detail
// via fmt.Errorf("%w: ...")); callers match with errors.Is.
// No function panics on user-triggered error conditions.

package perm

import "errors"

var (
	// ErrInvalidPermutation is returned when a mapping is not a bijection on
	// {0..N-1}: a duplicate value, a value out of range, or a length that
	// disagrees with the expected N.
	ErrInvalidPermutation = errors.New("perm: mapping is not a permutation")

	// ErrInvalidRange is returned by the sorting factories when the bounds
	// violate 0 ≤ from ≤ to ≤ n, or when len(values) < n.
	ErrInvalidRange = errors.New("perm: invalid range")

	// ErrLengthMismatch is returned when Apply, ApplyInv or Compose receive
	// an operand whose length differs from the permutation's length.
	ErrLengthMismatch = errors.New("perm: length mismatch")
)
