package transposition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transpose/permutation"
	"github.com/katalvlaran/transpose/transposition"
)

func TestList_SortedAndComplete(t *testing.T) {
	entries := transposition.List()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"permutation", "stencil", "zigzag"}, transposition.Names())
	for _, e := range entries {
		assert.Equal(t, transposition.FamilyBlockTransposition, e.Family, e.Name)
		assert.NotEmpty(t, e.Description, e.Name)
		assert.NotNil(t, e.New, e.Name)
		if e.NeedsKey {
			assert.NotEmpty(t, e.KeyHint, e.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	e, ok := transposition.Lookup("ZigZag")
	require.True(t, ok)
	assert.Equal(t, "zigzag", e.Name)
	assert.True(t, e.NeedsKey)

	e, ok = transposition.Lookup(" stencil ")
	require.True(t, ok)
	assert.False(t, e.NeedsKey)

	_, ok = transposition.Lookup("monoalphabetic")
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	g, err := transposition.Open("zigzag", "5x4")
	require.NoError(t, err)
	assert.Equal(t, zigzag5x4Fixture, g.Permutation().Indices())

	g, err = transposition.Open("stencil", "ignored")
	require.NoError(t, err)
	assert.Equal(t, 36, g.BlockSize())

	g, err = transposition.Open("permutation", "(1,0)")
	require.NoError(t, err)
	assert.Equal(t, 2, g.BlockSize())
}

func TestOpen_Errors(t *testing.T) {
	cases := []struct {
		name, cipher, key string
		err               error
	}{
		{"Unknown", "caesar", "", transposition.ErrUnknownCipher},
		{"ZigzagNoKey", "zigzag", "", transposition.ErrInvalidKey},
		{"ZigzagZero", "zigzag", "0x9", transposition.ErrInvalidKey},
		{"PermutationSyntax", "permutation", "(a,b)", transposition.ErrInvalidKey},
		{"PermutationNotBijective", "permutation", "(1,1)", permutation.ErrInvalidPermutation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transposition.Open(tc.cipher, tc.key)
			require.ErrorIs(t, err, tc.err)
		})
	}
}
