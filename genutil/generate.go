package genutil

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/graph"
)

// RandomGraph samples an Erdős–Rényi-style undirected graph over n
// vertices, including each unordered pair {i,j}, i<j, independently with
// probability density. The trial order (i ascending, then j ascending
// from i+1) is fixed, so a given rng and density reproduce the same edge
// set run to run — the same determinism contract as the teacher
// package's RandomSparse constructor, adapted from one independent
// Bernoulli trial per ordered (directed) pair to one per unordered pair
// (undirected).
//
// Panics if n < 0 or density is outside [0, 1].
func RandomGraph[B bitset.Set](n int, density float64, rng *Rng, newSet graph.NewSetFunc[B]) *graph.Ugraph[B] {
	if n < 0 {
		panic(fmt.Sprintf("genutil.RandomGraph: n=%d < 0", n))
	}
	if density < 0 || density > 1 {
		panic(fmt.Sprintf("genutil.RandomGraph: density=%g not in [0,1]", density))
	}

	g := graph.NewUndirected(n, newSet)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() <= density {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}

// RandomWeights assigns every vertex of gw a weight drawn uniformly from
// [min, max], overwriting whatever SetModulusWeight or the default
// constructor had set.
//
// Panics if max < min.
func RandomWeights[B bitset.Set](gw *graph.GraphW[B], rng *Rng, min, max int64) {
	if max < min {
		panic(fmt.Sprintf("genutil.RandomWeights: max=%d < min=%d", max, min))
	}
	span := max - min + 1
	for v := range gw.W {
		gw.W[v] = min + rng.Int64N(span)
	}
}

// RandomEdgeWeights assigns every existing edge of gw a weight drawn
// uniformly from [min, max]. Vertex weights and non-edges are untouched.
//
// Panics if max < min.
func RandomEdgeWeights[B bitset.Set](gw *graph.GraphEW[B], rng *Rng, min, max int64) {
	if max < min {
		panic(fmt.Sprintf("genutil.RandomEdgeWeights: max=%d < min=%d", max, min))
	}
	span := max - min + 1
	for u := 0; u < gw.NV; u++ {
		for v := u + 1; v < gw.NV; v++ {
			if gw.IsEdge(u, v) {
				gw.SetEdgeWeight(u, v, min+rng.Int64N(span))
			}
		}
	}
}
