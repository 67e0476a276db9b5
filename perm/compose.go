package perm

import "fmt"

// Compose returns r = p∘q in Herstein's circle notation, (p∘q)(x) = q(p(x)):
// applying r is the same as applying p first and then q.
//
//	Apply(r, x) == Apply(q, Apply(p, x))
//
// Because Apply gathers (b[i] = a[p.At(i)]), the product mapping is
//
//	r.At(i) = p.At(q.At(i))
//
// The convention is left-to-right and asymmetric: p.Compose(q) and
// q.Compose(p) differ in general. Compose is associative and Identity(N)
// is a two-sided identity.
//
// Errors: ErrLengthMismatch if p.Len() != q.Len().
//
// Complexity: O(N) time and space.
func (p Permutation) Compose(q Permutation) (Permutation, error) {
	if len(p.mapping) != len(q.mapping) {
		return Permutation{}, fmt.Errorf("%w: compose %d with %d", ErrLengthMismatch, len(p.mapping), len(q.mapping))
	}
	m := make([]int, len(p.mapping))
	for i, v := range q.mapping {
		m[i] = p.mapping[v]
	}

	return Permutation{mapping: m}, nil
}

// Inverse returns the unique permutation inv with p.Compose(inv) equal to the
// identity. Apply(p.Inverse(), a) equals ApplyInv(p, a).
//
// Complexity: O(N) time and space.
func (p Permutation) Inverse() Permutation {
	m := make([]int, len(p.mapping))
	for i, v := range p.mapping {
		m[v] = i
	}

	return Permutation{mapping: m}
}
