package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseSetIsSetClear(t *testing.T) {
	d := NewDense(130)
	require.False(t, d.IsSet(65))
	d.Set(65)
	assert.True(t, d.IsSet(65))
	d.Clear(65)
	assert.False(t, d.IsSet(65))
}

func TestDenseCountMatchesPopcount(t *testing.T) {
	d := NewDenseFromBits(200, []int{0, 1, 63, 64, 127, 128, 199})
	assert.Equal(t, 7, d.Count())
}

func TestDenseSetRangeBoundaries(t *testing.T) {
	d := NewDense(200)
	d.SetRange(10, 150)
	for k := 0; k < 10; k++ {
		assert.False(t, d.IsSet(k), "bit %d should be unset", k)
	}
	for k := 10; k <= 150; k++ {
		assert.True(t, d.IsSet(k), "bit %d should be set", k)
	}
	for k := 151; k < 200; k++ {
		assert.False(t, d.IsSet(k), "bit %d should be unset", k)
	}
	assert.Equal(t, 141, d.CountInRange(10, 150))
}

func TestDenseClearRange(t *testing.T) {
	d := NewDense(128)
	d.SetRange(0, 127)
	d.ClearRange(32, 95)
	assert.Equal(t, 64, d.Count())
	assert.True(t, d.IsSet(31))
	assert.False(t, d.IsSet(32))
	assert.False(t, d.IsSet(95))
	assert.True(t, d.IsSet(96))
}

func TestDenseUnionIntersectionCardinality(t *testing.T) {
	a := NewDenseFromBits(64, []int{0, 1, 2, 10})
	b := NewDenseFromBits(64, []int{2, 10, 20})

	union := NewDense(64)
	DenseUnion(a, b, union)
	inter := NewDense(64)
	DenseIntersection(a, b, inter)

	assert.Equal(t, union.Count()+inter.Count(), a.Count()+b.Count())
}

func TestDenseSubsetDisjointEquals(t *testing.T) {
	a := NewDenseFromBits(64, []int{1, 2})
	b := NewDenseFromBits(64, []int{1, 2, 3})
	c := NewDenseFromBits(64, []int{10, 11})

	assert.True(t, a.IsSubsetOf(b))
	assert.False(t, b.IsSubsetOf(a))
	assert.True(t, a.IsDisjoint(c))
	assert.False(t, a.IsDisjoint(b))
	assert.True(t, a.Clone().Equals(a))
}

func TestDenseLsbMsbEmpty(t *testing.T) {
	d := NewDense(64)
	assert.Equal(t, NoBit, d.Lsb())
	assert.Equal(t, NoBit, d.Msb())
	assert.True(t, d.IsEmpty())
}

func TestDenseScanForwardReverseAreReversed(t *testing.T) {
	bits := []int{0, 5, 64, 70, 127, 128, 199}
	d := NewDenseFromBits(200, bits)

	var fwd []int
	sc := d.InitScan(ScanForward)
	for b := sc.Next(); b != NoBit; b = sc.Next() {
		fwd = append(fwd, b)
	}

	var rev []int
	scr := d.InitScan(ScanReverse)
	for b := scr.Next(); b != NoBit; b = scr.Next() {
		rev = append(rev, b)
	}

	assert.Equal(t, bits, fwd)
	for i, j := 0, len(fwd)-1; i < len(fwd); i, j = i+1, j-1 {
		assert.Equal(t, fwd[i], rev[j])
	}
}

func TestDenseDestructiveScanClearsBits(t *testing.T) {
	d := NewDenseFromBits(128, []int{1, 2, 3})
	sc := d.InitScanDestructive(ScanForward)
	for b := sc.Next(); b != NoBit; b = sc.Next() {
	}
	assert.True(t, d.IsEmpty())
}

func TestDenseOutOfRangePanics(t *testing.T) {
	d := NewDense(10)
	assert.Panics(t, func() { d.IsSet(10) })
	assert.Panics(t, func() { d.Set(-1) })
}

func TestDenseCapacityMismatchPanics(t *testing.T) {
	a := NewDense(64)
	b := NewDense(128)
	assert.Panics(t, func() { a.Or(b) })
}
