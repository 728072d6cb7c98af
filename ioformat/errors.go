package ioformat

import "errors"

// Sentinel errors for the reader collaborator. These are genuine I/O/parse
// errors (spec §7 kind 2) — callers get them back wrapped with line-number
// context via fmt.Errorf("%w", ...), not a panic, since a malformed file
// is user input, not a programmer error.
var (
	// ErrBadHeader indicates a format's mandatory header line (DIMACS "p
	// edge N M", MTX "%%MatrixMarket ...", or the dimension line that
	// follows it) was missing or malformed.
	ErrBadHeader = errors.New("ioformat: bad or missing header line")

	// ErrMalformedLine indicates a data line could not be parsed into the
	// tokens its format expects.
	ErrMalformedLine = errors.New("ioformat: malformed line")

	// ErrUnknownExtension indicates ReadFile was given a path whose
	// extension does not map to any supported format.
	ErrUnknownExtension = errors.New("ioformat: unrecognized file extension")
)
