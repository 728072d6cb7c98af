package mapping

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/degeneracy"
	"github.com/katalvlaran/bitgraph/graph"
)

// OriginalGraphLabel is GraphMap's fixed label for the left-hand side of a
// single-ordering mapping, matching spec.md §4.10's literal string.
const OriginalGraphLabel = "ORIGINAL GRAPH"

// GraphMap is a bidirectional vertex translation between two labeled
// orderings of the same graph: l2r[v] gives v's identity on the right,
// r2l is its inverse.
type GraphMap struct {
	LabelL string
	LabelR string
	l2r    []int
	r2l    []int
}

func invertPerm(p []int) []int {
	out := make([]int, len(p))
	for i, v := range p {
		out[v] = i
	}
	return out
}

func checkConsistent(l2r, r2l []int) {
	for v := range l2r {
		if r2l[l2r[v]] != v {
			panic(fmt.Errorf("GraphMap: r2l[l2r[%d]]=%d, want %d: %w", v, r2l[l2r[v]], v, ErrInconsistentMapping))
		}
	}
}

// BuildMapping runs two independent Sorters over g — one configured by
// (algL, placeL), one by (algR, placeR) — and composes their orderings
// into an l2r/r2l translation between the two labelings. It panics if the
// resulting permutations do not round-trip (spec §7 kind 4).
func BuildMapping[B bitset.Set](g *graph.Ugraph[B], algL degeneracy.Algorithm, placeL degeneracy.Placement, labelL string, algR degeneracy.Algorithm, placeR degeneracy.Placement, labelR string) *GraphMap {
	lhsO2N := degeneracy.NewSorter(g).NewOrder(algL, placeL, true)
	rhsO2N := degeneracy.NewSorter(g).NewOrder(algR, placeR, true)
	lhsN2O := invertPerm(lhsO2N)
	rhsN2O := invertPerm(rhsO2N)

	n := g.NV
	l2r := make([]int, n)
	r2l := make([]int, n)
	for v := 0; v < n; v++ {
		l2r[v] = rhsO2N[lhsN2O[v]]
		r2l[v] = lhsO2N[rhsN2O[v]]
	}
	checkConsistent(l2r, r2l)

	return &GraphMap{LabelL: labelL, LabelR: labelR, l2r: l2r, r2l: r2l}
}

// BuildMappingSingle is the single-ordering variant: the left side is the
// graph's original labeling (LabelL == OriginalGraphLabel), the right side
// is the ordering (alg, place) produces under labelR.
func BuildMappingSingle[B bitset.Set](g *graph.Ugraph[B], alg degeneracy.Algorithm, place degeneracy.Placement, labelR string) *GraphMap {
	o2n := degeneracy.NewSorter(g).NewOrder(alg, place, true)
	n2o := invertPerm(o2n)
	gm := &GraphMap{LabelL: OriginalGraphLabel, LabelR: labelR, l2r: o2n, r2l: n2o}
	checkConsistent(gm.l2r, gm.r2l)
	return gm
}

// MapL2R translates the bits of bbIn (in LabelL's vertex space) into
// bbOut (LabelR's vertex space). If overwrite, bbOut is cleared first;
// otherwise translated bits are added to whatever it already holds.
func (gm *GraphMap) MapL2R(bbIn, bbOut bitset.Set, overwrite bool) {
	gm.translate(gm.l2r, bbIn, bbOut, overwrite)
}

// MapR2L is MapL2R's inverse direction.
func (gm *GraphMap) MapR2L(bbIn, bbOut bitset.Set, overwrite bool) {
	gm.translate(gm.r2l, bbIn, bbOut, overwrite)
}

func (gm *GraphMap) translate(perm []int, bbIn, bbOut bitset.Set, overwrite bool) {
	if overwrite && bbOut.Cap() > 0 {
		bbOut.ClearRange(0, bbOut.Cap()-1)
	}
	sc := bbIn.InitScan(bitset.ScanForward)
	for v := sc.Next(); v != bitset.NoBit; v = sc.Next() {
		bbOut.Set(perm[v])
	}
}
