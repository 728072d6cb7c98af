package mapping

import "errors"

var (
	// ErrIndexOutOfRange indicates Decode.Decode was asked to translate a
	// vertex index outside the range of the permutation at some level of
	// its stack — a fatal diagnostic per spec §7 kind 4, not a normal
	// error condition.
	ErrIndexOutOfRange = errors.New("mapping: decode index out of range")

	// ErrInconsistentMapping indicates BuildMapping's round-trip check
	// (r2l[l2r[v]] == v for every v) failed, meaning the two orderings it
	// was given are not inverses of each other over the same vertex set.
	ErrInconsistentMapping = errors.New("mapping: l2r/r2l round-trip check failed")
)
