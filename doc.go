// Package transpose is a small toolkit for historic block transposition
// ciphers: the rotating 6×6 stencil, the zigzag column route and explicit
// block permutations, plus n-gram frequency counting for looking at what
// they produce.
//
// 🚀 What is in the box?
//
//	• Permutations: validate, apply, invert, compose, parse "(9,0,18,…)"
//	• Grids: row-major integer grids with quarter-turn rotation
//	• Ciphers: filter → pad → permute every block, and back again
//	• N-grams: overlapping mono-, di-, tri- and n-graph counts
//	• CLI: `transpose encrypt | decrypt | list | dist | show`
//
// ✨ Why transpose?
//
//   - Small, explicit API: every failure is a sentinel error you can errors.Is
//   - Deterministic when asked: seeded padding for reproducible output
//   - Safe for concurrent use: a Cipher guards its padding source
//
// Packages:
//
//	alphabet/      ordered symbol sets, filtering and random padding symbols
//	permutation/   the Permutation value, Apply/ApplyTo, Invert, Then, Parse
//	grid/          row-major grids used to lay out and display permutations
//	transposition/ Stencil, Zigzag and Explicit generators, Cipher, registry
//	ngram/         frequency tables of overlapping n-symbol windows
//	cmd/transpose  the command-line front end
//
// Quick ASCII example, zigzag 5×4 (columns written down, up, down, up):
//
//	A J K T
//	B I L S        plain  ABCDEFGHIJKLMNOPQRST
//	C H M R   →    cipher AJKTBILSCHMRDGNQEFOP
//	D G N Q
//	E F O P
//
//	go install github.com/katalvlaran/transpose/cmd/transpose@latest
package transpose
