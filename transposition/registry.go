package transposition

import (
	"fmt"
	"sort"
	"strings"
)

// FamilyBlockTransposition is the family every registered cipher derives from.
const FamilyBlockTransposition = "Block Transposition Cipher"

// Constructor derives a Generator from a textual key.
type Constructor func(key string) (Generator, error)

// Entry describes a registered cipher.
type Entry struct {
	Name        string
	Family      string
	Description string
	// NeedsKey is false for ciphers that ignore their key.
	NeedsKey bool
	// KeyHint documents the key format, e.g. "HxW".
	KeyHint string
	New     Constructor
}

// registry is built once at package initialization and never modified.
var registry = map[string]Entry{
	"stencil": {
		Name:        "stencil",
		Family:      FamilyBlockTransposition,
		Description: "fixed 6x6 rotating grille (Manual of Cryptography, 1911, p. 80)",
		NeedsKey:    false,
		New: func(key string) (Generator, error) {
			return NewStencil(key)
		},
	},
	"zigzag": {
		Name:        "zigzag",
		Family:      FamilyBlockTransposition,
		Description: "columns written alternately down and up, rows read (Manual of Cryptography, 1911, p. 21)",
		NeedsKey:    true,
		KeyHint:     "HxW",
		New: func(key string) (Generator, error) {
			return ParseZigzag(key)
		},
	},
	"permutation": {
		Name:        "permutation",
		Family:      FamilyBlockTransposition,
		Description: "explicit block permutation",
		NeedsKey:    true,
		KeyHint:     "(i0,i1,...)",
		New: func(key string) (Generator, error) {
			return ParseExplicit(key)
		},
	},
}

// Lookup returns the registry entry for name. Names are case-insensitive.
func Lookup(name string) (Entry, bool) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// List returns all registered ciphers sorted by name.
func List() []Entry {
	entries := make([]Entry, 0, len(registry))
	for _, e := range registry {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Names returns the registered cipher names sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, e := range List() {
		names = append(names, e.Name)
	}
	return names
}

// Open looks up name and derives its Generator from key.
// Returns ErrUnknownCipher for unregistered names, or the constructor's error.
func Open(name, key string) (Generator, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
	g, err := e.New(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	return g, nil
}
