// Package alphabet defines the restricted symbol sets that classical ciphers
// operate on, and the lossy filter that normalizes raw text into them.
//
// What:
//
//   - Alphabet is an ordered set of runes with O(1) membership tests.
//   - Latin is the default 26-letter uppercase alphabet.
//   - Filter upper-cases text, keeps alphabet members (and optionally spaces)
//     and silently drops everything else.
//   - Random draws a uniform symbol from the alphabet using a caller-supplied
//     *rand.Rand, which is how block ciphers pad their final block.
//
// Why:
//
//   - Historic ciphers were defined over a small plain-text alphabet; digits,
//     punctuation and lower case simply did not exist for them.
//   - Keeping membership as the single keep/drop criterion makes the filter
//     idempotent: filtering filtered text returns it unchanged.
//
// Complexity:
//
//   - New:    O(k) time and memory for k symbols.
//   - Filter: O(n) time, O(n) memory.
//   - Random: O(1).
//
// Errors:
//
//   - ErrEmptyAlphabet: New was given no symbols.
//
// Filtering never fails: characters outside the alphabet are dropped without
// warning. This is documented, intentional preprocessing, not an error path.
package alphabet
