package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")
	ErrBadStateString  = errors.New("cubesim: malformed 54-character state string")

	// Locator errors
	ErrEdgeNotFound = errors.New("cubesim: no edge piece with that color pair")
	ErrStateCorrupt = errors.New("cubesim: cube state is corrupt (duplicate edge piece)")
)
