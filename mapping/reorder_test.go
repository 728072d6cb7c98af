package mapping

import (
	"testing"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/degeneracy"
	"github.com/katalvlaran/bitgraph/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderUndirectedPreservesIsomorphism(t *testing.T) {
	g := k4MinusEdge()
	perm := degeneracy.NewSorter(g).NewOrder(degeneracy.OrderMinDegen, degeneracy.FirstToLast, true)

	out := graph.NewUndirected(g.NV, bitset.NewDense)
	decode := NewDecode()
	ReorderUndirected(g, perm, out, decode)

	require.EqualValues(t, g.NumEdges(true), out.NumEdges(true))
	for u := 0; u < g.NV; u++ {
		for v := u + 1; v < g.NV; v++ {
			assert.Equal(t, g.IsEdge(u, v), out.IsEdge(perm[u], perm[v]))
		}
	}
	require.Equal(t, 1, decode.Len())
	for v := 0; v < g.NV; v++ {
		assert.Equal(t, v, decode.Decode(perm[v]))
	}
}

func TestReorderDirectedFullMatrix(t *testing.T) {
	g := graph.New(4, bitset.NewDense)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	perm := []int{3, 2, 1, 0}
	out := graph.New(4, bitset.NewDense)
	ReorderDirected(g, perm, out, nil)

	for u := 0; u < g.NV; u++ {
		for v := 0; v < g.NV; v++ {
			assert.Equal(t, g.IsEdge(u, v), out.IsEdge(perm[u], perm[v]))
		}
	}
}

func TestReorderWeightedMigratesVertexWeights(t *testing.T) {
	g := graph.NewGraphW(4, bitset.NewDense)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.SetModulusWeight(3)

	perm := []int{3, 2, 1, 0}
	out := graph.NewGraphW(4, bitset.NewDense)
	ReorderWeighted(g, perm, out, nil)

	for v := 0; v < g.NV; v++ {
		assert.Equal(t, g.W[v], out.W[perm[v]])
	}
	assert.True(t, out.IsEdge(perm[0], perm[1]))
}

func TestReorderEdgeWeightedMigratesEdgeWeights(t *testing.T) {
	g := graph.NewGraphEW(4, bitset.NewDense)
	g.AddEdge(0, 1)
	g.SetEdgeWeight(0, 1, 42)
	g.SetVertexWeight(2, 7)

	perm := []int{1, 0, 3, 2}
	out := graph.NewGraphEW(4, bitset.NewDense)
	ReorderEdgeWeighted(g, perm, out, nil)

	assert.EqualValues(t, 42, out.EdgeWeight(perm[0], perm[1]))
	assert.EqualValues(t, 7, out.VertexWeight(perm[2]))
}
