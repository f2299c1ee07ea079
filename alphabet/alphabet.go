package alphabet

import (
	"math/rand"
	"strings"
	"unicode/utf8"
)

// LatinSymbols is the default plain-text alphabet of historic ciphers.
const LatinSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Latin is the default 26-letter uppercase alphabet.
var Latin = MustNew(LatinSymbols)

// Alphabet is an ordered set of symbols. It is immutable once built and safe
// for concurrent use.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// New builds an Alphabet from the distinct runes of s, in order of first
// appearance. Symbols are upper-cased so that they agree with Filter, which
// upper-cases its input before testing membership. Duplicates are tolerated
// and ignored.
// Returns ErrEmptyAlphabet if s holds no runes.
// Complexity: O(k) time and memory.
func New(s string) (*Alphabet, error) {
	s = strings.ToUpper(s)
	if utf8.RuneCountInString(s) == 0 {
		return nil, ErrEmptyAlphabet
	}
	a := &Alphabet{
		symbols: make([]rune, 0, utf8.RuneCountInString(s)),
		index:   make(map[rune]int, len(s)),
	}
	for _, r := range s {
		if _, dup := a.index[r]; dup {
			continue
		}
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}

	return a, nil
}

// MustNew is like New but panics on error. Intended for package-level
// alphabets built from constants.
func MustNew(s string) *Alphabet {
	a, err := New(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of distinct symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// At returns the i-th symbol. It panics if i is out of range, like a slice.
func (a *Alphabet) At(i int) rune {
	return a.symbols[i]
}

// Contains reports whether r is a member of the alphabet.
// Complexity: O(1).
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Symbols returns the alphabet as a string, in order.
func (a *Alphabet) Symbols() string {
	return string(a.symbols)
}

// String implements fmt.Stringer.
func (a *Alphabet) String() string {
	return a.Symbols()
}

// Filter converts text to upper case and keeps only alphabet members. A
// space that is not a member is kept only when keepSpaces is true. Every
// other character is dropped silently.
// Complexity: O(n) time, O(n) memory.
func (a *Alphabet) Filter(text string, keepSpaces bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		switch {
		case a.Contains(r):
			b.WriteRune(r)
		case r == ' ' && keepSpaces:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Random returns a symbol drawn uniformly from the alphabet using rng.
// The caller owns rng; *rand.Rand is not goroutine-safe.
// Complexity: O(1).
func (a *Alphabet) Random(rng *rand.Rand) rune {
	return a.symbols[rng.Intn(len(a.symbols))]
}

// Filter applies Latin.Filter to text.
func Filter(text string, keepSpaces bool) string {
	return Latin.Filter(text, keepSpaces)
}
