// Package ngram counts contiguous symbol sequences, the basic statistic used
// to attack transposition ciphers: a transposition preserves monograph
// frequencies exactly while scrambling digraphs and trigraphs.
//
// What:
//
//   - Count slides a window of n runes across the text and tallies every
//     full-width window, overlapping windows included.
//   - Monograph, Digraph and Trigraph are the n = 1, 2, 3 forms.
//   - Table renders as "sequence: count" lines in lexicographic order so
//     that output is reproducible across runs.
//   - ParseWindow maps the analysis names "mono", "di", "tri" or a decimal
//     n to a window width.
//
// Complexity:
//
//   - Count: O(L·n) time, O(min(L, |Σ|^n)) memory for text length L.
//   - Entries, ByCount, WriteTo: O(k log k) for k distinct sequences.
//
// Errors:
//
//   - ErrInvalidWindow: n <= 0 or n > L.
//   - ErrUnknownAnalysis: ParseWindow does not recognize the name.
package ngram
