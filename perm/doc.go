// Package perm provides an immutable Permutation type with a small algebra:
// sorting permutations, gather/scatter application and composition.
//
// 🚀 What is a Permutation here?
//
//	A bijection on {0..N-1} stored as an index sequence: position i holds
//	the image of i. Applying p to a slice a is a "gather":
//
//	    b[i] = a[p[i]]
//
//	so the value that ends up at position i is the one that was at p[i].
//
// ✨ Key features:
//   - SortingPerm: stable index sort of a sub-range [from,to), fixed points elsewhere
//   - Apply / ApplyInv: fresh output slices, inputs are never mutated
//   - Compose: left-to-right convention, T.Compose(P) applies T first, then P
//   - Compare / Equal: lexicographic total order over mappings
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvperm/perm"
//
//	values := []int{1, 5, 2, -2, 7, -4}
//	p, err := perm.SortingPerm(values, 1, 4, len(values))
//	if err != nil {
//	  // ErrInvalidRange
//	}
//	sorted, _ := perm.Apply(p, values)   // [1 -2 2 5 7 -4]
//	orig, _ := perm.ApplyInv(p, sorted)  // [1 5 2 -2 7 -4]
//
// Composition follows Herstein's circle notation, (T∘P)(x) = P(T(x)):
//
//	r, _ := t.Compose(q)
//	// Apply(r, x) == Apply(q, Apply(t, x)) for every x of matching length
//
// Errors:
//   - ErrInvalidPermutation — a mapping is not a bijection on {0..N-1}.
//   - ErrInvalidRange       — bad [from,to) bounds or values shorter than N.
//   - ErrLengthMismatch     — operand length differs from Len().
//
// Performance:
//
//   - SortingPerm: O(N + k·log k) for a range of length k
//   - Apply, ApplyInv, Compose, Inverse, Validate: O(N)
//
// Permutations are immutable values and safe for concurrent readers.
package perm
