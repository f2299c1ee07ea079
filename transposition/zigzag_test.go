package transposition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transpose/transposition"
)

var zigzag5x4Fixture = []int{0, 9, 10, 19, 1, 8, 11, 18, 2, 7, 12, 17, 3, 6, 13, 16, 4, 5, 14, 15}

func TestZigzag_Fixture(t *testing.T) {
	z, err := transposition.NewZigzag(5, 4)
	require.NoError(t, err)
	assert.Equal(t, 20, z.BlockSize())
	assert.Equal(t, 5, z.Height())
	assert.Equal(t, 4, z.Width())
	assert.Equal(t, zigzag5x4Fixture, z.Permutation().Indices())
	assert.Equal(t, "5x4", z.String())
}

func TestParseZigzag(t *testing.T) {
	for _, key := range []string{"5x4", "5X4", " 5x4 ", "5 x 4"} {
		z, err := transposition.ParseZigzag(key)
		require.NoError(t, err, key)
		assert.Equal(t, zigzag5x4Fixture, z.Permutation().Indices(), key)
	}
}

func TestParseZigzag_Errors(t *testing.T) {
	keys := []string{
		"", "5", "x", "5x", "x4", "5x4x3", "fivexfour", "5*4",
		"0x4", "5x0", "0x0", "-5x4", "5x-4",
		"2000x2000",
	}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			_, err := transposition.ParseZigzag(key)
			require.ErrorIs(t, err, transposition.ErrInvalidKey)
		})
	}
}

// TestZigzag_Geometry checks the column-wise write pattern on several shapes:
// even columns run top to bottom, odd columns bottom to top.
func TestZigzag_Geometry(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 3}, {3, 2}, {4, 4}, {9, 8}}
	for _, hw := range shapes {
		h, w := hw[0], hw[1]
		z, err := transposition.NewZigzag(h, w)
		require.NoError(t, err)
		g := z.Grid()
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				row := y
				if x%2 == 1 {
					row = h - 1 - y
				}
				v, err := g.At(x, row)
				require.NoError(t, err)
				require.Equal(t, x*h+y, v, "%dx%d cell (%d,%d)", h, w, x, row)
			}
		}
	}
}

func TestZigzag_SingleColumnIsIdentity(t *testing.T) {
	z, err := transposition.NewZigzag(6, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, z.Permutation().Indices())
}

func TestZigzag_GridString(t *testing.T) {
	z, err := transposition.NewZigzag(5, 4)
	require.NoError(t, err)
	want := "" +
		" 0  9 10 19\n" +
		" 1  8 11 18\n" +
		" 2  7 12 17\n" +
		" 3  6 13 16\n" +
		" 4  5 14 15"
	assert.Equal(t, want, z.Grid().String())
}

// TestZigzag_LargeOrder pins an order that does not fit in int64.
func TestZigzag_LargeOrder(t *testing.T) {
	z, err := transposition.NewZigzag(23, 111)
	require.NoError(t, err)
	assert.Equal(t, "17677222122743295840", z.Permutation().Order().String())
}
