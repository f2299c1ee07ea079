package permutation

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Permutation is an immutable bijection on {0, …, Len()-1}. The zero value is
// an empty permutation and is not valid for use with Apply.
type Permutation struct {
	p []int
}

// New validates indices and returns the Permutation they describe. The input
// slice is copied; later changes to it do not affect the result.
// Returns ErrInvalidPermutation (wrapped with the offending position) when
// indices is empty, out of range, or repeats a value.
// Complexity: O(B) time and memory.
func New(indices []int) (Permutation, error) {
	n := len(indices)
	if n == 0 {
		return Permutation{}, fmt.Errorf("%w: empty sequence", ErrInvalidPermutation)
	}
	seen := make([]bool, n)
	p := make([]int, n)
	for i, v := range indices {
		if v < 0 || v >= n {
			return Permutation{}, fmt.Errorf("%w: index %d at position %d outside 0..%d", ErrInvalidPermutation, v, i, n-1)
		}
		if seen[v] {
			return Permutation{}, fmt.Errorf("%w: index %d repeated at position %d", ErrInvalidPermutation, v, i)
		}
		seen[v] = true
		p[i] = v
	}

	return Permutation{p: p}, nil
}

// MustNew is like New but panics on error. Use it only for fixed tables.
func MustNew(indices []int) Permutation {
	p, err := New(indices)
	if err != nil {
		panic(err)
	}
	return p
}

// Identity returns the identity permutation of length n.
// Returns ErrInvalidPermutation for n < 1.
func Identity(n int) (Permutation, error) {
	if n < 1 {
		return Permutation{}, fmt.Errorf("%w: length %d", ErrInvalidPermutation, n)
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return Permutation{p: p}, nil
}

// Len returns the block size B.
func (p Permutation) Len() int {
	return len(p.p)
}

// At returns P[i]. It panics if i is out of range, like a slice.
func (p Permutation) At(i int) int {
	return p.p[i]
}

// Indices returns a copy of the underlying table.
func (p Permutation) Indices() []int {
	out := make([]int, len(p.p))
	copy(out, p.p)
	return out
}

// Equal reports whether p and q describe the same mapping.
func (p Permutation) Equal(q Permutation) bool {
	if len(p.p) != len(q.p) {
		return false
	}
	for i := range p.p {
		if p.p[i] != q.p[i] {
			return false
		}
	}
	return true
}

// Invert returns Q such that Q[P[i]] = i for every i. P is not modified.
// Complexity: O(B) time, one allocation of B ints.
func (p Permutation) Invert() Permutation {
	q := make([]int, len(p.p))
	for i, v := range p.p {
		q[v] = i
	}
	return Permutation{p: q}
}

// Then returns the permutation equivalent to applying p and then q:
// Apply(p.Then(q), b) == Apply(q, Apply(p, b)).
// Returns ErrLengthMismatch if the lengths differ.
func (p Permutation) Then(q Permutation) (Permutation, error) {
	if len(p.p) != len(q.p) {
		return Permutation{}, fmt.Errorf("%w: %d then %d", ErrLengthMismatch, len(p.p), len(q.p))
	}
	r := make([]int, len(p.p))
	for i, v := range q.p {
		r[i] = p.p[v]
	}
	return Permutation{p: r}, nil
}

// Cycles decomposes the mapping i -> P[i] into disjoint cycles. Each cycle
// starts at its smallest element and cycles are ordered by that element.
// Fixed points appear as cycles of length one.
func (p Permutation) Cycles() [][]int {
	seen := make([]bool, len(p.p))
	var cycles [][]int
	for start := range p.p {
		if seen[start] {
			continue
		}
		var c []int
		for i := start; !seen[i]; i = p.p[i] {
			seen[i] = true
			c = append(c, i)
		}
		cycles = append(cycles, c)
	}

	return cycles
}

// Order returns the smallest k ≥ 1 such that applying p k times yields the
// identity. It is the least common multiple of the cycle lengths, which
// outgrows int64 for moderate block sizes (zigzag 23x111 already does).
func (p Permutation) Order() *big.Int {
	order := big.NewInt(1)
	var g, n big.Int
	for _, c := range p.Cycles() {
		n.SetInt64(int64(len(c)))
		g.GCD(nil, nil, order, &n)
		order.Mul(order.Quo(order, &g), &n)
	}
	return order
}

// String renders p in the historical notation "(9,0,18,…)".
func (p Permutation) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range p.p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(')')
	return b.String()
}

// Parse reads a permutation written as "(9,0,18,1)", "9,0,18,1" or
// "9 0 18 1". Commas and whitespace both separate values; the enclosing
// parentheses are optional.
// Returns ErrSyntax for unreadable input and ErrInvalidPermutation when the
// values do not form a bijection.
func Parse(s string) (Permutation, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") != strings.HasSuffix(s, ")") {
		return Permutation{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrSyntax, s)
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return Permutation{}, fmt.Errorf("%w: no values", ErrSyntax)
	}
	indices := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Permutation{}, fmt.Errorf("%w: value %q at position %d", ErrSyntax, f, i)
		}
		indices[i] = v
	}

	return New(indices)
}
