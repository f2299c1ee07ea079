package ngram_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transpose/ngram"
)

func TestCount_Basic(t *testing.T) {
	tab, err := ngram.Count("ABABA", 2)
	require.NoError(t, err)
	assert.Equal(t, ngram.Table{"AB": 2, "BA": 2}, tab)

	tab, err = ngram.Count("AAAA", 3)
	require.NoError(t, err)
	assert.Equal(t, ngram.Table{"AAA": 2}, tab, "overlapping windows are counted")
}

// TestCount_FullWindow checks that the last window, starting at L-n, counts.
func TestCount_FullWindow(t *testing.T) {
	tab, err := ngram.Count("XYZ", 3)
	require.NoError(t, err)
	assert.Equal(t, ngram.Table{"XYZ": 1}, tab)

	tab, err = ngram.Count("AB", 1)
	require.NoError(t, err)
	assert.Equal(t, ngram.Table{"A": 1, "B": 1}, tab)
}

func TestCount_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		n    int
	}{
		{"Zero", "ABC", 0},
		{"Negative", "ABC", -2},
		{"TooWide", "ABC", 4},
		{"EmptyText", "", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ngram.Count(tc.text, tc.n)
			require.ErrorIs(t, err, ngram.ErrInvalidWindow)
		})
	}
}

func TestCount_Runes(t *testing.T) {
	tab, err := ngram.Count("ÄÖÄ", 2)
	require.NoError(t, err)
	assert.Equal(t, ngram.Table{"ÄÖ": 1, "ÖÄ": 1}, tab)
}

// TestCount_Exhaustive checks that counts sum to L-n+1 for every valid n.
func TestCount_Exhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	buf := make([]byte, 300)
	for i := range buf {
		buf[i] = byte('A' + rng.Intn(4))
	}
	text := string(buf)
	for n := 1; n <= len(text); n += 7 {
		tab, err := ngram.Count(text, n)
		require.NoError(t, err)
		require.Equal(t, len(text)-n+1, tab.Total(), "n=%d", n)
	}
}

func TestNamedForms(t *testing.T) {
	text := "THETHENTHE"
	for n, fn := range map[int]func(string) (ngram.Table, error){
		1: ngram.Monograph,
		2: ngram.Digraph,
		3: ngram.Trigraph,
	} {
		got, err := fn(text)
		require.NoError(t, err)
		want, err := ngram.Count(text, n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}
	tri, _ := ngram.Trigraph(text)
	assert.Equal(t, 3, tri["THE"])
}

func TestEntriesAndByCount(t *testing.T) {
	tab := ngram.Table{"B": 3, "A": 1, "C": 3, "D": 2}
	assert.Equal(t, []ngram.Entry{{Sequence: "A", Count: 1}, {Sequence: "B", Count: 3}, {Sequence: "C", Count: 3}, {Sequence: "D", Count: 2}}, tab.Entries())
	assert.Equal(t, []ngram.Entry{{Sequence: "B", Count: 3}, {Sequence: "C", Count: 3}, {Sequence: "D", Count: 2}, {Sequence: "A", Count: 1}}, tab.ByCount())
}

func TestWriteTo(t *testing.T) {
	tab, err := ngram.Digraph("ABCAB")
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := tab.WriteTo(&buf)
	require.NoError(t, err)
	want := "AB: 2\nBC: 1\nCA: 1\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
	assert.Equal(t, want, tab.String())
}

func TestParseWindow(t *testing.T) {
	cases := map[string]int{"mono": 1, "di": 2, "tri": 3, "TRI": 3, " 4 ": 4, "12": 12}
	for in, want := range cases {
		got, err := ngram.ParseWindow(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "ng", "quad", "0", "-1", "2.5"} {
		_, err := ngram.ParseWindow(in)
		require.ErrorIs(t, err, ngram.ErrUnknownAnalysis, in)
	}
}
