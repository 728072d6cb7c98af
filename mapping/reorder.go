package mapping

import (
	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/graph"
)

// reorderEdgesInto inserts, for every edge (u,v) of g with u<v, the edge
// (permO2N[u], permO2N[v]) into out. out must already be reset to g.NV
// vertices. This is the pairwise is_edge probe spec.md §4.11 calls out
// explicitly (O(|V|^2 + |E|)), distinct from degeneracy.Sorter.Reorder's
// direct neighbor-scan variant (O(|V|+|E|)) — both are legitimate
// programmatic entry points per spec §6.
//
// Failure semantics: if permO2N is not a permutation of [0, g.NV), the
// resulting graph is malformed. Validating that on every call would
// undercut the whole point of offering an O(V^2+E) and an O(V+E) path;
// the caller is responsible, matching spec.md's "debug-mode assertion
// only" note.
func reorderEdgesInto[B bitset.Set](g *graph.Ugraph[B], permO2N []int, out *graph.Ugraph[B]) {
	for u := 0; u < g.NV; u++ {
		for v := u + 1; v < g.NV; v++ {
			if g.IsEdge(u, v) {
				out.AddEdge(permO2N[u], permO2N[v])
			}
		}
	}
}

// ReorderUndirected materializes, into out, the graph obtained by
// relabeling g's vertices through the old-to-new permutation permO2N. If
// decode is non-nil, the new-to-old inverse is pushed onto it.
func ReorderUndirected[B bitset.Set](g *graph.Ugraph[B], permO2N []int, out *graph.Ugraph[B], decode *Decode) {
	out.Reset(g.NV)
	out.Name = g.Name
	out.Path = g.Path
	reorderEdgesInto(g, permO2N, out)
	if decode != nil {
		decode.AddOrdering(invertPerm(permO2N))
	}
}

// ReorderDirected is ReorderUndirected's directed counterpart: it iterates
// the full adjacency matrix rather than the upper triangle, since a
// directed edge (u,v) need not imply (v,u).
func ReorderDirected[B bitset.Set](g *graph.Graph[B], permO2N []int, out *graph.Graph[B], decode *Decode) {
	out.Reset(g.NV)
	out.Name = g.Name
	out.Path = g.Path
	for u := 0; u < g.NV; u++ {
		for v := 0; v < g.NV; v++ {
			if u != v && g.IsEdge(u, v) {
				out.AddEdge(permO2N[u], permO2N[v])
			}
		}
	}
	if decode != nil {
		decode.AddOrdering(invertPerm(permO2N))
	}
}

// ReorderWeighted is ReorderUndirected plus vertex-weight migration:
// out.W[permO2N[v]] = g.W[v].
func ReorderWeighted[B bitset.Set](g *graph.GraphW[B], permO2N []int, out *graph.GraphW[B], decode *Decode) {
	out.Reset(g.NV)
	out.Name = g.Name
	out.Path = g.Path
	reorderEdgesInto(g.Ugraph, permO2N, out.Ugraph)
	for v := 0; v < g.NV; v++ {
		out.W[permO2N[v]] = g.W[v]
	}
	if decode != nil {
		decode.AddOrdering(invertPerm(permO2N))
	}
}

// ReorderEdgeWeighted is ReorderUndirected plus vertex- and edge-weight
// migration through the same permutation.
func ReorderEdgeWeighted[B bitset.Set](g *graph.GraphEW[B], permO2N []int, out *graph.GraphEW[B], decode *Decode) {
	out.Reset(g.NV)
	out.Name = g.Name
	out.Path = g.Path
	reorderEdgesInto(g.Ugraph, permO2N, out.Ugraph)
	for v := 0; v < g.NV; v++ {
		out.SetVertexWeight(permO2N[v], g.VertexWeight(v))
	}
	for u := 0; u < g.NV; u++ {
		for v := u + 1; v < g.NV; v++ {
			if w := g.EdgeWeight(u, v); w != graph.NoWeight {
				out.SetEdgeWeight(permO2N[u], permO2N[v], w)
			}
		}
	}
	if decode != nil {
		decode.AddOrdering(invertPerm(permO2N))
	}
}
