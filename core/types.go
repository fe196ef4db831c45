// Package core declares the sentinel errors shared by the word and
// alphabet primitives.
//
// Errors:
//
//	ErrEmptyAlphabet   - alphabet constructed with no symbols.
//	ErrDuplicateSymbol - the same symbol supplied twice to NewAlphabet.
//	ErrSymbolNotFound  - IndexOf called with a symbol outside the alphabet.
//	ErrIndexOutOfRange - SymbolAt called with an index outside [0, Size).
package core

import "errors"

// Sentinel errors for alphabet construction and lookup.
var (
	// ErrEmptyAlphabet indicates NewAlphabet was called with no symbols.
	ErrEmptyAlphabet = errors.New("core: alphabet must contain at least one symbol")

	// ErrDuplicateSymbol indicates the same symbol appeared twice in NewAlphabet.
	ErrDuplicateSymbol = errors.New("core: duplicate alphabet symbol")

	// ErrSymbolNotFound indicates a lookup for a symbol the alphabet does not contain.
	ErrSymbolNotFound = errors.New("core: symbol not in alphabet")

	// ErrIndexOutOfRange indicates a symbol index outside [0, Size).
	ErrIndexOutOfRange = errors.New("core: symbol index out of range")
)
