package permutation

import "errors"

var (
	// ErrInvalidPermutation indicates that a sequence is not a bijection on 0..B-1.
	ErrInvalidPermutation = errors.New("permutation: sequence is not a bijection on 0..B-1")
	// ErrLengthMismatch indicates an operand whose length differs from the permutation's.
	ErrLengthMismatch = errors.New("permutation: length mismatch")
	// ErrSyntax indicates malformed permutation notation.
	ErrSyntax = errors.New("permutation: malformed notation")
)
