// Package permutation provides an immutable, validated bijection on block
// positions, the primitive every transposition cipher is built on.
//
// What:
//
//   - Permutation holds P, a bijection on {0, …, B-1}. It is validated once at
//     construction and never mutated afterwards.
//   - Apply reorders a block: out[i] = block[P[i]].
//   - Invert returns Q with Q[P[i]] = i, computed in a single pass into a
//     fresh slice.
//   - Then, Cycles and Order expose the group structure of P, which is what a
//     cryptanalyst inspects when a transposition is applied repeatedly.
//   - Parse and String use the historical notation "(9,0,18,1,…)".
//
// Why:
//
//   - Inverting a non-bijective table silently corrupts decryption. Validating
//     at construction turns that into an immediate, inspectable error.
//
// Complexity:
//
//   - New, Invert, Apply, Then, Cycles: O(B) time, O(B) memory.
//   - Order: O(B) plus the LCM fold over cycle lengths.
//
// Errors:
//
//   - ErrInvalidPermutation: the sequence is empty, holds an index outside
//     0..B-1, or repeats an index.
//   - ErrLengthMismatch: a block or second permutation has a different length.
//   - ErrSyntax: Parse could not read the notation.
package permutation
