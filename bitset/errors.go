package bitset

import "errors"

// Sentinel errors for bitset operations.
//
// Out-of-range bit indices and capacity mismatches between operands are
// argument errors (spec §7 kind 1 in the design notes): rather than make
// every hot bitscan call site handle a returned error, Dense and Sparse
// check the index and panic with one of these values. Callers that need
// to validate untrusted input should check bounds themselves before
// calling in.

// ErrCapacityMismatch indicates that a set operation taking another Set
// (Or, And, Xor, AndNot, IsDisjoint, IsSubsetOf, Equals) was called with
// an operand of different logical capacity or of the other backend type.
// The out-of-place DenseUnion/DenseIntersection/... helpers do not check.
var ErrCapacityMismatch = errors.New("bitset: capacity mismatch")

// ErrIndexOutOfRange indicates a bit index outside [0, cap) was passed to
// a single-bit or range operation.
var ErrIndexOutOfRange = errors.New("bitset: index out of range")
