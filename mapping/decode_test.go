package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeSingleOrdering(t *testing.T) {
	d := NewDecode()
	// new-to-old: new index 0 was old vertex 2, etc.
	d.AddOrdering([]int{2, 0, 1})
	assert.Equal(t, 2, d.Decode(0))
	assert.Equal(t, 0, d.Decode(1))
	assert.Equal(t, 1, d.Decode(2))
}

func TestDecodeStacksMostRecentFirst(t *testing.T) {
	d := NewDecode()
	d.AddOrdering([]int{1, 0}) // pushed first, applied last
	d.AddOrdering([]int{0, 1}) // pushed second, applied first (identity here)
	assert.Equal(t, 1, d.Decode(0))
	assert.Equal(t, 0, d.Decode(1))
}

func TestDecodeListAppliesToEach(t *testing.T) {
	d := NewDecode()
	d.AddOrdering([]int{2, 0, 1})
	assert.Equal(t, []int{2, 0, 1}, d.DecodeList([]int{0, 1, 2}))
}

func TestDecodeOutOfRangePanics(t *testing.T) {
	d := NewDecode()
	d.AddOrdering([]int{0, 1, 2})
	assert.Panics(t, func() { d.Decode(5) })
}

func TestReverseInPlaceComputesInverse(t *testing.T) {
	p := []int{2, 0, 1}
	ReverseInPlace(p)
	assert.Equal(t, []int{1, 2, 0}, p)
}
