package degeneracy

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/graph"
)

// KCore implements the Batagelj–Zaveršnik linear-time k-core
// decomposition over an undirected graph, optionally restricted to a
// vertex subset.
//
// State mirrors spec.md §4.8 directly: deg is the current degree (the
// core number once FindKCore returns), bin is the degree-class offset
// table into ver, ver holds vertices in non-decreasing-degree order, pos
// is ver's inverse.
type KCore[B bitset.Set] struct {
	g   *graph.Ugraph[B]
	psg bitset.Set // nil means the whole graph

	deg []int
	bin []int
	ver []int
	pos []int
}

// NewKCore returns a KCore engine over the whole of g.
func NewKCore[B bitset.Set](g *graph.Ugraph[B]) *KCore[B] {
	return &KCore[B]{g: g, deg: make([]int, g.NV), pos: make([]int, g.NV)}
}

// SetSubgraph restricts every subsequent FindKCore/FindKCoreUB/MinWidth
// call to vertices in sg: degrees, and the "neighbor of v" step, are
// computed against sg rather than the whole graph.
func (k *KCore[B]) SetSubgraph(sg bitset.Set) { k.psg = sg }

// universe returns the vertex set FindKCore iterates, ascending.
func (k *KCore[B]) universe() []int {
	if k.psg == nil {
		return identity(k.g.NV)
	}
	var vs []int
	sc := k.psg.InitScan(bitset.ScanForward)
	for v := sc.Next(); v != bitset.NoBit; v = sc.Next() {
		vs = append(vs, v)
	}
	return vs
}

// initDegrees fills k.deg for every vertex in universe and returns the
// maximum degree observed.
func (k *KCore[B]) initDegrees(universe []int) int {
	maxDeg := 0
	for _, v := range universe {
		var d int
		if k.psg == nil {
			d = k.g.Degree(v)
		} else {
			tmp := k.g.Adj[v].Clone()
			tmp.And(k.psg)
			d = tmp.Count()
		}
		k.deg[v] = d
		if d > maxDeg {
			maxDeg = d
		}
	}
	return maxDeg
}

// binSort bucket-sorts universe by k.deg into k.ver/k.pos/k.bin, following
// spec.md §4.8 step 2: count, prefix-sum, place, then shift bin back down
// by one bucket so bin[d] again points at the first vertex of degree d
// (required by swap, which reads bin[deg[u]] as "start of u's bucket").
func (k *KCore[B]) binSort(universe []int, maxDeg int) {
	k.bin = make([]int, maxDeg+1)
	for _, v := range universe {
		k.bin[k.deg[v]]++
	}
	start := 0
	for d := 0; d <= maxDeg; d++ {
		num := k.bin[d]
		k.bin[d] = start
		start += num
	}

	k.ver = make([]int, len(universe))
	for _, v := range universe {
		k.pos[v] = k.bin[k.deg[v]]
		k.ver[k.pos[v]] = v
		k.bin[k.deg[v]]++
	}

	for d := maxDeg; d >= 1; d-- {
		k.bin[d] = k.bin[d-1]
	}
	k.bin[0] = 0
}

// swap moves u to the front of its current degree bucket in ver, then
// grows that bucket's start by one and decrements u's degree — the direct
// replacement for the C SWAP macro spec.md §9 calls out by name.
func (k *KCore[B]) swap(u int) {
	du := k.deg[u]
	pu := k.pos[u]
	pw := k.bin[du]
	w := k.ver[pw]
	if u != w {
		k.ver[pu], k.ver[pw] = w, u
		k.pos[u], k.pos[w] = pw, pu
	}
	k.bin[du]++
	k.deg[u]--
}

// neighborsOf returns v's neighbor set, intersected with the subgraph
// restriction if one is set.
func (k *KCore[B]) neighborsOf(v int) bitset.Set {
	if k.psg == nil {
		return k.g.Adj[v]
	}
	tmp := k.g.Adj[v].Clone()
	tmp.And(k.psg)
	return tmp
}

// FindKCore runs the classic linear-time decomposition. On return,
// CoreNumber(v) is valid for every v in scope and KCoreOrdering returns a
// valid degeneracy ordering (minimum core first, maximum core last).
//
// Complexity: O(|V| + |E|).
func (k *KCore[B]) FindKCore() {
	universe := k.universe()
	if len(universe) == 0 {
		panic(fmt.Errorf("KCore.FindKCore: %w", ErrEmptyGraph))
	}
	maxDeg := k.initDegrees(universe)
	k.binSort(universe, maxDeg)

	for i := 0; i < len(k.ver); i++ {
		v := k.ver[i]
		dv := k.deg[v]
		sc := k.neighborsOf(v).InitScan(bitset.ScanForward)
		for u := sc.Next(); u != bitset.NoBit; u = sc.Next() {
			if k.deg[u] > dv {
				k.swap(u)
			}
		}
	}
}

// FindKCoreUB runs the UB-driven variant: given an externally known upper
// bound on the core number, vertices whose degree already exceeds ub are
// compressed so all high-core vertices land last, deterministically. It
// returns the nearest degree that actually occurs in the graph at or
// above ub (which may exceed ub if no vertex has exactly that degree).
// Implemented only for the whole graph, matching spec.md's original
// source note that subgraph mode is unsupported here.
//
// If ub is already at least the true maximum core number, FindKCoreUB is
// a no-op and returns the maximum core number (spec.md §8 testable
// property).
func (k *KCore[B]) FindKCoreUB(ub int) int {
	if k.psg != nil {
		panic("KCore.FindKCoreUB: not supported in subgraph mode")
	}
	universe := k.universe()
	if len(universe) == 0 {
		panic(fmt.Errorf("KCore.FindKCoreUB: %w", ErrEmptyGraph))
	}
	// ub is not below the maximum core number: nothing to compress, the
	// ordering FindKCore produces is the result.
	k.FindKCore()
	if maxCore := k.deg[k.ver[len(k.ver)-1]]; ub >= maxCore {
		return maxCore
	}

	maxDeg := k.initDegrees(universe)
	k.binSort(universe, maxDeg)

	w := k.ver[k.bin[ub]]
	if k.deg[w] != ub {
		ub = k.deg[w]
	}

	for deg := ub; deg >= 1; {
		pIter := k.bin[deg]
		bucketEnd := len(k.ver)
		if deg+1 < len(k.bin) {
			bucketEnd = k.bin[deg+1]
		}
		for pIter != bucketEnd {
			v := k.ver[pIter]
			dv := k.deg[v]
			sc := k.g.Adj[v].InitScan(bitset.ScanForward)
			for u := sc.Next(); u != bitset.NoBit; u = sc.Next() {
				if k.deg[u] > ub {
					k.swap2NoDecrement(u)
					if k.deg[u] == ub+1 {
						k.deg[u] = dv
					} else {
						k.deg[u]--
					}
				}
			}
			pIter++
			if deg+1 < len(k.bin) {
				bucketEnd = k.bin[deg+1]
			} else {
				bucketEnd = len(k.ver)
			}
		}

		top := deg
		for {
			deg--
			if deg <= 0 {
				break
			}
			if deg+1 < len(k.bin) && k.bin[top] != k.bin[deg] {
				break
			}
		}
	}
	return ub
}

// swap2NoDecrement is swap's position-only half: it relocates u to the
// front of its bucket and advances the bucket start, but leaves deg[u]
// untouched since FindKCoreUB assigns u's new degree itself.
func (k *KCore[B]) swap2NoDecrement(u int) {
	du := k.deg[u]
	pu := k.pos[u]
	pw := k.bin[du]
	w := k.ver[pw]
	if u != w {
		k.ver[pu], k.ver[pw] = w, u
		k.pos[u], k.pos[w] = pw, pu
	}
	k.bin[du]++
}

// MinWidth re-scans ver from last to first and returns
// max_v |N(v) ∩ unvisited|, the classical width of the ordering FindKCore
// produced. When useRealDegree is true the neighbor count ignores any
// subgraph restriction (uses the whole graph's adjacency); otherwise it
// honors SetSubgraph as FindKCore itself did. On the whole graph (no
// subgraph set), both give the same result, which equals the k-core
// number.
func (k *KCore[B]) MinWidth(useRealDegree bool) int {
	n := len(k.ver)
	visited := make([]bool, k.g.NV)
	width := 0
	for i := n - 1; i >= 0; i-- {
		v := k.ver[i]
		var neighbors bitset.Set
		if useRealDegree {
			neighbors = k.g.Adj[v]
		} else {
			neighbors = k.neighborsOf(v)
		}
		count := 0
		sc := neighbors.InitScan(bitset.ScanForward)
		for u := sc.Next(); u != bitset.NoBit; u = sc.Next() {
			if visited[u] {
				count++
			}
		}
		if count > width {
			width = count
		}
		visited[v] = true
	}
	return width
}

// CoreNumber returns v's core number. Valid after FindKCore.
func (k *KCore[B]) CoreNumber(v int) int { return k.deg[v] }

// CoreSize returns the number of vertices whose core number is exactly c.
// Valid after FindKCore.
func (k *KCore[B]) CoreSize(c int) int {
	n := 0
	for _, v := range k.ver {
		if k.deg[v] == c {
			n++
		}
	}
	return n
}

// KCoreOrdering returns the degeneracy ordering FindKCore produced, as a
// new-to-old permutation (ver itself; minimum core first, maximum core
// last). Callers that need a copy should clone the returned slice.
func (k *KCore[B]) KCoreOrdering() []int { return k.ver }
