// Package transposition implements classical block-transposition ciphers:
// symbols are reordered inside fixed-size blocks by an explicit permutation,
// never substituted.
//
// What:
//
//   - Generator is the capability every cipher key family provides: derive a
//     permutation.Permutation and report its block size.
//   - Stencil is the fixed 6×6 rotating grille from the 1911 "Manual of
//     Cryptography" (page 80). It takes no key; B = 36.
//   - Zigzag writes symbols down one column, up the next, and reads the grid
//     row by row. Its key is "HxW"; B = H·W.
//   - Explicit accepts any permutation written as "(2,0,3,1)".
//   - Cipher is the engine: filter, pad the final block with random alphabet
//     symbols, permute every block independently; decrypt with the inverse.
//   - Lookup, List and Open expose a static name → constructor registry.
//
// Padding:
//
//	Encryption appends B - (len mod B) random alphabet symbols when the
//	filtered text does not fill whole blocks. Decryption returns them
//	verbatim: no length travels with the ciphertext, so padding cannot be
//	told apart from genuine trailing symbols.
//
// Determinism:
//
//	Padding randomness is always injected. WithSeed and WithRand configure a
//	Cipher's own source (guarded by a mutex); EncryptWithRand takes a
//	per-call source. Seed 0 selects a fixed default seed, and each block
//	size draws from its own stream of that seed.
//
// Complexity:
//
//   - Encrypt, Decrypt: O(n) time and memory for n input symbols.
//   - NewZigzag: O(H·W).
//
// Errors:
//
//   - ErrInvalidKey: a generator key is malformed or dimensionally inconsistent.
//   - ErrMisalignedBlock: ciphertext length is not a multiple of B.
//   - ErrUnknownCipher: no registry entry has the requested name.
//   - permutation.ErrInvalidPermutation: an explicit key is not a bijection.
//
// Security: none. These are pedagogical, historically faithful ciphers.
package transposition
