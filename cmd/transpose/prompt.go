package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	errNoTerminal  = errors.New("no key given and standard input is not a terminal")
	errKeyMismatch = errors.New("keys do not match")
)

// promptKey reads a key from the controlling terminal without echo. With
// confirm set the key is read twice and both entries must agree.
func promptKey(label string, confirm bool) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errNoTerminal
	}

	return readKey(func(prompt string) (string, error) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read key: %w", err)
		}
		return string(b), nil
	}, label, confirm)
}

// readKey asks read for the key and, with confirm set, for a second entry
// that must match the first. Surrounding whitespace is ignored.
func readKey(read func(prompt string) (string, error), label string, confirm bool) (string, error) {
	key, err := read(label + ": ")
	if err != nil {
		return "", err
	}
	key = strings.TrimSpace(key)
	if !confirm {
		return key, nil
	}
	again, err := read("Repeat for confirmation: ")
	if err != nil {
		return "", err
	}
	if key != strings.TrimSpace(again) {
		return "", errKeyMismatch
	}
	return key, nil
}
