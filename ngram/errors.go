package ngram

import "errors"

var (
	// ErrInvalidWindow indicates a window width outside 1..len(text).
	ErrInvalidWindow = errors.New("ngram: window must satisfy 0 < n <= len(text)")
	// ErrUnknownAnalysis indicates an unrecognized analysis name.
	ErrUnknownAnalysis = errors.New("ngram: unknown analysis")
)
