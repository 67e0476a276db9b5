package perm

import "slices"

// Compare orders permutations lexicographically by their mappings: the first
// differing position decides, and a proper prefix sorts first. It returns
// -1, 0 or +1. The order is only meant to be deterministic (tests, ordered
// containers); it carries no group-theoretic meaning.
func Compare(a, b Permutation) int {
	return slices.Compare(a.mapping, b.mapping)
}

// Compare is the method form of Compare(p, q).
func (p Permutation) Compare(q Permutation) int { return Compare(p, q) }

// Equal reports whether p and q have the same length and mapping.
func (p Permutation) Equal(q Permutation) bool {
	return slices.Equal(p.mapping, q.mapping)
}
