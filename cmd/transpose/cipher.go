package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transpose/alphabet"
	"github.com/katalvlaran/transpose/internal/config"
	"github.com/katalvlaran/transpose/transposition"
)

// cipherFlags are shared by encrypt, decrypt and show.
type cipherFlags struct {
	name string
	key  string
}

func (f *cipherFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "cipher", "c", "", "cipher name (see 'transpose list')")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "cipher key")
}

// generator resolves the cipher entry and its key. The key comes from the
// flag, then the configuration, then an interactive prompt when the cipher
// needs one.
func (a *app) generator(f cipherFlags, confirm bool) (transposition.Entry, transposition.Generator, error) {
	name := f.name
	if name == "" {
		name = a.cfg.Cipher
	}
	if name == "" {
		return transposition.Entry{}, nil, fmt.Errorf("no cipher given: use --cipher or %sCIPHER", config.EnvPrefix)
	}
	entry, ok := transposition.Lookup(name)
	if !ok {
		return transposition.Entry{}, nil, fmt.Errorf("%w: %q", transposition.ErrUnknownCipher, name)
	}

	key := f.key
	if key == "" {
		key = a.cfg.Key
	}
	if key == "" && entry.NeedsKey {
		prompted, err := a.prompt(fmt.Sprintf("Key for %s (%s)", entry.Name, entry.KeyHint), confirm)
		if err != nil {
			return transposition.Entry{}, nil, fmt.Errorf("%w: %w", transposition.ErrInvalidKey, err)
		}
		key = prompted
	}

	g, err := transposition.Open(entry.Name, key)
	if err != nil {
		return transposition.Entry{}, nil, err
	}
	a.log.Debug("cipher resolved", "cipher", entry.Name, "block_size", g.BlockSize())
	return entry, g, nil
}

// cipher builds a Cipher from the resolved generator, the configured
// alphabet and the padding seed.
func (a *app) cipher(f cipherFlags, confirm bool) (*transposition.Cipher, error) {
	_, g, err := a.generator(f, confirm)
	if err != nil {
		return nil, err
	}

	alpha := alphabet.Latin
	if a.cfg.Alphabet != "" {
		if alpha, err = alphabet.New(a.cfg.Alphabet); err != nil {
			return nil, err
		}
	}

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.log.Debug("padding source", "seed", seed, "alphabet", alpha.Len())

	return transposition.New(g, transposition.WithAlphabet(alpha), transposition.WithSeed(seed))
}
