package graph

import (
	"testing"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTriangle() *Ugraph[*bitset.Dense] {
	g := NewUndirected(3, bitset.NewDense)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)
	return g
}

func TestUgraphTriangle(t *testing.T) {
	g := buildTriangle()
	assert.EqualValues(t, 3, g.NumEdges(true))
	for v := 0; v < 3; v++ {
		assert.Equal(t, 2, g.Degree(v))
	}
	assert.True(t, g.IsEdge(0, 1))
	assert.True(t, g.IsEdge(1, 0))
}

func TestUgraphSelfLoopRejected(t *testing.T) {
	g := NewUndirected(3, bitset.NewDense)
	g.AddEdge(1, 1)
	assert.EqualValues(t, 0, g.NumEdges(true))
	assert.False(t, g.IsEdge(1, 1))
}

func TestUgraphNumEdgesLazyVsRecount(t *testing.T) {
	g := buildTriangle()
	require.EqualValues(t, 3, g.NumEdges(false))
	assert.EqualValues(t, 3, g.NumEdges(true))
}

func TestUgraphOddEdgeSumPanics(t *testing.T) {
	g := NewUndirected(2, bitset.NewDense)
	// Corrupt adjacency directly to produce an odd degree sum.
	g.Adj[0].Set(1)
	assert.Panics(t, func() { g.NumEdges(false) })
}

func TestCreateComplementIsComplete(t *testing.T) {
	g := buildTriangle()
	// Remove one edge so the complement is non-trivial.
	g.RemoveEdge(0, 1)

	complement := New(g.NV, bitset.NewDense)
	g.CreateComplement(complement)

	for u := 0; u < g.NV; u++ {
		for v := 0; v < g.NV; v++ {
			if u == v {
				continue
			}
			assert.True(t, g.IsEdge(u, v) || complement.IsEdge(u, v), "u=%d v=%d", u, v)
			assert.False(t, g.IsEdge(u, v) && complement.IsEdge(u, v))
		}
	}
}

func TestCreateSubgraphInducedEdgeCount(t *testing.T) {
	g := NewUndirected(5, bitset.NewDense)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	vs := []int{0, 1, 2}
	sub := g.CreateSubgraph(vs)
	// induced edges among {0,1,2}: (0,1),(1,2) => 2 directed insertions each way
	assert.EqualValues(t, 4, sub.NumEdges())
}

func TestDegreeUpStarEleven(t *testing.T) {
	g := NewUndirected(11, bitset.NewDense)
	for leaf := 1; leaf <= 10; leaf++ {
		g.AddEdge(0, leaf)
	}
	g.AddEdge(1, 2)
	g.AddEdge(1, 7)
	g.AddEdge(2, 7)

	assert.Equal(t, 10, g.DegreeUp(0))
	assert.Equal(t, 3, g.Degree(1))
}

func TestMaxSubgraphDegreeAndOutgoingDegree(t *testing.T) {
	g := NewUndirected(4, bitset.NewDense)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	g.AddEdge(1, 2)

	sg := bitset.NewDenseFromBits(4, []int{0, 1, 2})
	assert.Equal(t, 2, g.MaxSubgraphDegree(sg))
	assert.Equal(t, 1, g.OutgoingDegree(sg))
}

func TestDegreeSequenceAndMaxDegree(t *testing.T) {
	g := buildTriangle()
	seq := DegreeSequence(g.Graph)
	assert.Equal(t, []int{2, 2, 2}, seq)
	v, d := MaxDegree(g.Graph)
	assert.Equal(t, 2, d)
	assert.Contains(t, []int{0, 1, 2}, v)
}
