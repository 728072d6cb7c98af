package bitset

// Set is the common interface satisfied by Dense and Sparse. Graph
// adjacency (package graph) is generic over Set so the storage backend is
// a construction-time choice, not a type-hierarchy one.
type Set interface {
	// Cap returns the logical capacity (exclusive upper bound on elements).
	Cap() int

	// IsSet reports whether bit b is set. Panics if b is out of [0, Cap()).
	IsSet(b int) bool

	// Set sets bit b. Panics if b is out of [0, Cap()).
	Set(b int)

	// Clear clears bit b. Panics if b is out of [0, Cap()).
	Clear(b int)

	// SetRange sets all bits in [lo, hi], inclusive.
	SetRange(lo, hi int)

	// ClearRange clears all bits in [lo, hi], inclusive.
	ClearRange(lo, hi int)

	// Count returns the number of set bits.
	Count() int

	// CountInRange returns the number of set bits in [lo, hi], inclusive.
	CountInRange(lo, hi int) int

	// Lsb returns the least-significant set bit, or NoBit if empty.
	Lsb() int

	// Msb returns the most-significant set bit, or NoBit if empty.
	Msb() int

	// IsEmpty reports whether no bit is set.
	IsEmpty() bool

	// IsDisjoint reports whether this set and other share no bit.
	IsDisjoint(other Set) bool

	// IsSubsetOf reports whether every bit of this set is also set in other.
	IsSubsetOf(other Set) bool

	// Equals reports whether this set and other have identical contents.
	Equals(other Set) bool

	// Or sets this := this | other.
	Or(other Set)

	// And sets this := this & other.
	And(other Set)

	// Xor sets this := this ^ other.
	Xor(other Set)

	// AndNot sets this := this &^ other (set difference).
	AndNot(other Set)

	// Clone returns an independent copy of this set.
	Clone() Set

	// InitScan returns a Scanner positioned for the given mode.
	InitScan(mode ScanMode) *Scanner
}

// blockCount returns the number of 64-bit blocks needed for cap elements.
func blockCount(cap int) int {
	return (cap + 63) / 64
}
