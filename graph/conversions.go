package graph

import "github.com/katalvlaran/bitgraph/bitset"

// ToSparse rebuilds g (backed by bitset.Dense) as an equivalent graph
// backed by bitset.Sparse, preserving NV, NE, Name, and Path.
func ToSparse(g *Graph[*bitset.Dense]) *Graph[*bitset.Sparse] {
	out := New(g.NV, bitset.NewSparse)
	out.Name, out.Path = g.Name, g.Path
	for u := 0; u < g.NV; u++ {
		sc := g.Adj[u].InitScan(bitset.ScanForward)
		for v := sc.Next(); v != bitset.NoBit; v = sc.Next() {
			out.Adj[u].Set(v)
		}
	}
	out.NE = g.NE
	return out
}

// ToDense rebuilds g (backed by bitset.Sparse) as an equivalent graph
// backed by bitset.Dense, preserving NV, NE, Name, and Path.
func ToDense(g *Graph[*bitset.Sparse]) *Graph[*bitset.Dense] {
	out := New(g.NV, bitset.NewDense)
	out.Name, out.Path = g.Name, g.Path
	for u := 0; u < g.NV; u++ {
		sc := g.Adj[u].InitScan(bitset.ScanForward)
		for v := sc.Next(); v != bitset.NoBit; v = sc.Next() {
			out.Adj[u].Set(v)
		}
	}
	out.NE = g.NE
	return out
}
