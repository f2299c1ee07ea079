package alphabet

import "errors"

// ErrEmptyAlphabet indicates that an alphabet was requested with no symbols.
var ErrEmptyAlphabet = errors.New("alphabet: alphabet must contain at least one symbol")
