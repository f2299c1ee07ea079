package transposition

import "errors"

var (
	// ErrInvalidKey indicates a generator key that is malformed or
	// dimensionally inconsistent, including zigzag keys whose block would
	// exceed MaxBlockSize symbols.
	ErrInvalidKey = errors.New("transposition: invalid key")
	// ErrMisalignedBlock indicates ciphertext whose length is not a multiple
	// of the block size.
	ErrMisalignedBlock = errors.New("transposition: ciphertext is not block aligned")
	// ErrUnknownCipher indicates a registry lookup for an unsupported name.
	ErrUnknownCipher = errors.New("transposition: unknown cipher")
	// ErrNilGenerator indicates a nil Generator passed to New.
	ErrNilGenerator = errors.New("transposition: generator is nil")
)
