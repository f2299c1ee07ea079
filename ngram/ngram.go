package ngram

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Table maps each n-symbol sequence to its number of occurrences.
type Table map[string]int

// Entry is one row of a Table.
type Entry struct {
	Sequence string
	Count    int
}

// String renders the entry as "sequence: count".
func (e Entry) String() string {
	return e.Sequence + ": " + strconv.Itoa(e.Count)
}

// Count tallies every window of n runes in text, at positions 0..L-n
// inclusive, so that the counts sum to L-n+1.
// Returns ErrInvalidWindow if n <= 0 or n exceeds the rune length of text.
func Count(text string, n int) (Table, error) {
	runes := []rune(text)
	if n <= 0 || n > len(runes) {
		return nil, fmt.Errorf("%w: n=%d for %d symbols", ErrInvalidWindow, n, len(runes))
	}
	t := make(Table)
	for i := 0; i+n <= len(runes); i++ {
		t[string(runes[i:i+n])]++
	}
	return t, nil
}

// Monograph counts single symbols.
func Monograph(text string) (Table, error) { return Count(text, 1) }

// Digraph counts symbol pairs.
func Digraph(text string) (Table, error) { return Count(text, 2) }

// Trigraph counts symbol triples.
func Trigraph(text string) (Table, error) { return Count(text, 3) }

// Total returns the sum of all counts.
func (t Table) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// Entries returns the rows sorted lexicographically by sequence.
func (t Table) Entries() []Entry {
	out := make([]Entry, 0, len(t))
	for seq, c := range t {
		out = append(out, Entry{Sequence: seq, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Sequence < out[j].Sequence
	})
	return out
}

// ByCount returns the rows by descending count; ties are broken
// lexicographically.
func (t Table) ByCount() []Entry {
	out := t.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// WriteTo writes one "sequence: count" line per entry, in lexicographic
// order. It implements io.WriterTo.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, e := range t.Entries() {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// String returns the WriteTo rendering.
func (t Table) String() string {
	var b strings.Builder
	_, _ = t.WriteTo(&b)
	return b.String()
}

// Analysis names accepted by ParseWindow.
const (
	Mono = "mono"
	Di   = "di"
	Tri  = "tri"
)

var windows = map[string]int{
	Mono: 1,
	Di:   2,
	Tri:  3,
}

// ParseWindow maps an analysis name to its window width: "mono" → 1,
// "di" → 2, "tri" → 3, or a positive decimal integer → itself.
// Returns ErrUnknownAnalysis for anything else.
func ParseWindow(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if n, ok := windows[name]; ok {
		return n, nil
	}
	n, err := strconv.Atoi(name)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q (want mono, di, tri or a positive integer)", ErrUnknownAnalysis, name)
	}
	return n, nil
}
