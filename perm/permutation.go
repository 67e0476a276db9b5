package perm

import "fmt"

// Permutation is an immutable bijection on {0..N-1}.
//
// Position i of the mapping holds the image of i. The zero value is the
// empty permutation (N = 0). Values are safe to copy and to share between
// goroutines; no method mutates the receiver.
type Permutation struct {
	mapping []int
}

// New builds a Permutation from an explicit mapping, taking N = len(mapping).
// The mapping is copied, so later changes to the caller's slice are not
// observed.
//
// Errors: ErrInvalidPermutation if mapping is not a bijection on {0..N-1}.
//
// Complexity: O(N) time and space.
func New(mapping []int) (Permutation, error) {
	return NewN(mapping, len(mapping))
}

// NewN is New with an explicit length expectation: mapping must be a
// permutation of {0..n-1} and len(mapping) must equal n.
func NewN(mapping []int, n int) (Permutation, error) {
	if err := Validate(mapping, n); err != nil {
		return Permutation{}, err
	}

	return Permutation{mapping: append([]int(nil), mapping...)}, nil
}

// Identity returns the identity permutation i → i of length n.
// It panics if n is negative.
func Identity(n int) Permutation {
	if n < 0 {
		panic(fmt.Sprintf("perm: Identity with negative length %d", n))
	}
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}

	return Permutation{mapping: m}
}

// Len returns N, the number of points the permutation acts on.
func (p Permutation) Len() int { return len(p.mapping) }

// At returns the image of i. It panics if i is outside [0, Len()).
func (p Permutation) At(i int) int { return p.mapping[i] }

// Mapping returns a copy of the underlying index sequence.
func (p Permutation) Mapping() []int {
	return append([]int(nil), p.mapping...)
}

// IsIdentity reports whether every point is a fixed point.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.mapping {
		if v != i {
			return false
		}
	}

	return true
}

// String renders the mapping like a slice, e.g. "[1 0 2]".
func (p Permutation) String() string {
	return fmt.Sprint(p.mapping)
}
