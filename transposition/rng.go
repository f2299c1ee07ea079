package transposition

import "math/rand"

// defaultRNGSeed is the padding seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// paddingRNG returns the padding source for a cipher of the given block size.
// Seed 0 selects defaultRNGSeed. The block size selects an independent
// stream, so one seed shared by ciphers of different block sizes does not
// repeat the same padding symbols across them.
//
// Complexity: O(1).
func paddingRNG(seed int64, blockSize int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(mixSeed(seed, uint64(blockSize))))
}

// mixSeed folds stream into seed with the SplitMix64 finalizer.
func mixSeed(seed int64, stream uint64) int64 {
	x := uint64(seed) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
