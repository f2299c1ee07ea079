package ngram_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/transpose/ngram"
)

// BenchmarkTrigraph measures trigraph counting over 64 KiB of text.
func BenchmarkTrigraph(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	buf := make([]byte, 64<<10)
	for i := range buf {
		buf[i] = byte('A' + rng.Intn(26))
	}
	text := string(buf)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ngram.Trigraph(text); err != nil {
			b.Fatal(err)
		}
	}
}
