package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvperm/perm"
)

// TestNew_Valid verifies that a bijection is accepted and stored verbatim.
func TestNew_Valid(t *testing.T) {
	p, err := perm.New([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []int{2, 0, 1}, p.Mapping())
	assert.Equal(t, 2, p.At(0))
	assert.Equal(t, "[2 0 1]", p.String())
}

// TestNew_Invalid covers every way a mapping can fail to be a bijection.
func TestNew_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		mapping []int
	}{
		{"duplicate", []int{0, 1, 1}},
		{"out of range high", []int{0, 3, 1}},
		{"negative", []int{0, -1, 1}},
		{"missing zero", []int{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := perm.New(tc.mapping)
			assert.ErrorIs(t, err, perm.ErrInvalidPermutation)
			assert.Equal(t, 0, p.Len(), "no instance on failure")
		})
	}
}

// TestNewN_LengthExpectation checks the explicit length contract.
func TestNewN_LengthExpectation(t *testing.T) {
	_, err := perm.NewN([]int{0, 1}, 3)
	assert.ErrorIs(t, err, perm.ErrInvalidPermutation, "len(mapping) != n")

	_, err = perm.NewN(nil, -1)
	assert.ErrorIs(t, err, perm.ErrInvalidPermutation, "negative n")

	p, err := perm.NewN([]int{1, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, p.Mapping())
}

// TestNew_CopiesInput ensures the caller's slice is not aliased.
func TestNew_CopiesInput(t *testing.T) {
	src := []int{1, 0, 2}
	p, err := perm.New(src)
	require.NoError(t, err)

	src[0], src[1] = 0, 1
	assert.Equal(t, []int{1, 0, 2}, p.Mapping(), "mutating the source must not leak in")

	out := p.Mapping()
	out[0] = 9
	assert.Equal(t, 1, p.At(0), "mutating Mapping() must not leak in")
}

// TestEmptyPermutation confirms N = 0 is a valid permutation.
func TestEmptyPermutation(t *testing.T) {
	p, err := perm.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	assert.True(t, p.Equal(perm.Identity(0)))
	assert.True(t, p.Equal(perm.Permutation{}), "zero value is the empty permutation")
	assert.Equal(t, "[]", p.String())
}

func TestIdentity(t *testing.T) {
	id := perm.Identity(4)
	assert.Equal(t, []int{0, 1, 2, 3}, id.Mapping())
	assert.True(t, id.IsIdentity())

	p, err := perm.New([]int{0, 2, 1, 3})
	require.NoError(t, err)
	assert.False(t, p.IsIdentity())

	assert.Panics(t, func() { perm.Identity(-1) })
}

// TestValidate_BijectionInvariant checks every constructed permutation
// passes Validate on its own mapping.
func TestValidate_BijectionInvariant(t *testing.T) {
	values := []int{9, 3, 3, 0, -7, 12, 3, 1}
	for from := 0; from <= len(values); from++ {
		for to := from; to <= len(values); to++ {
			p, err := perm.SortingPerm(values, from, to, len(values))
			require.NoError(t, err)
			assert.NoError(t, perm.Validate(p.Mapping(), len(values)), "range [%d,%d)", from, to)
		}
	}
}
