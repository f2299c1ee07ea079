package transposition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transpose/permutation"
	"github.com/katalvlaran/transpose/transposition"
)

func TestParseExplicit(t *testing.T) {
	e, err := transposition.ParseExplicit("(2,0,3,1)")
	require.NoError(t, err)
	assert.Equal(t, 4, e.BlockSize())
	assert.Equal(t, []int{2, 0, 3, 1}, e.Permutation().Indices())
}

func TestParseExplicit_Errors(t *testing.T) {
	_, err := transposition.ParseExplicit("(2,zero,1)")
	require.ErrorIs(t, err, transposition.ErrInvalidKey)
	require.ErrorIs(t, err, permutation.ErrSyntax)

	_, err = transposition.ParseExplicit("")
	require.ErrorIs(t, err, transposition.ErrInvalidKey)

	_, err = transposition.ParseExplicit("(0,0,1)")
	require.ErrorIs(t, err, permutation.ErrInvalidPermutation)
	require.NotErrorIs(t, err, transposition.ErrInvalidKey)
}

func TestNewExplicit(t *testing.T) {
	_, err := transposition.NewExplicit(permutation.Permutation{})
	require.ErrorIs(t, err, permutation.ErrInvalidPermutation)

	e, err := transposition.NewExplicit(permutation.MustNew([]int{1, 0}))
	require.NoError(t, err)
	assert.Equal(t, 2, e.BlockSize())
}
