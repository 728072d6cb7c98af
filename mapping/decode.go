package mapping

import "fmt"

// Decode is a stack of new-to-old permutations, typically accumulated by
// successive Reorder calls as a graph is progressively relabeled. Decode
// unwinds the stack to translate a vertex index in the most-recently
// relabeled space back to its original identity.
type Decode struct {
	orderings [][]int
}

// NewDecode returns an empty Decode.
func NewDecode() *Decode {
	return &Decode{}
}

// AddOrdering pushes a new-to-old permutation onto the stack. It becomes
// the first one applied by subsequent Decode calls.
func (d *Decode) AddOrdering(perm []int) {
	d.orderings = append(d.orderings, perm)
}

// Len returns the number of orderings currently on the stack.
func (d *Decode) Len() int { return len(d.orderings) }

// Decode translates v through every ordering on the stack, most recently
// pushed first, returning the vertex identity in the original (unpermuted)
// space. Panics if v falls outside any level's range, since that
// indicates a permutation/graph-size mismatch rather than recoverable
// user input (spec §7 kind 4).
func (d *Decode) Decode(v int) int {
	for i := len(d.orderings) - 1; i >= 0; i-- {
		perm := d.orderings[i]
		if v < 0 || v >= len(perm) {
			panic(fmt.Errorf("Decode.Decode: vertex %d out of range [0,%d) at level %d: %w", v, len(perm), i, ErrIndexOutOfRange))
		}
		v = perm[v]
	}
	return v
}

// DecodeList applies Decode to every element of vs, returning a new slice.
func (d *Decode) DecodeList(vs []int) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = d.Decode(v)
	}
	return out
}

// ReverseInPlace overwrites p with its inverse permutation: after the
// call, p[old] == new for every index that used to hold p[new] == old.
func ReverseInPlace(p []int) {
	inv := make([]int, len(p))
	for newIdx, oldIdx := range p {
		inv[oldIdx] = newIdx
	}
	copy(p, inv)
}
