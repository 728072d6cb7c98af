package degeneracy

import (
	"sort"
	"testing"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/graph"
	"github.com/stretchr/testify/assert"
)

func triangle() *graph.Ugraph[*bitset.Dense] {
	g := graph.NewUndirected(3, bitset.NewDense)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)
	return g
}

func isPermutation(t *testing.T, perm []int, n int) {
	t.Helper()
	seen := make([]bool, n)
	for _, v := range perm {
		assert.False(t, seen[v], "vertex %d repeated", v)
		seen[v] = true
	}
	for v, s := range seen {
		assert.True(t, s, "vertex %d missing from permutation", v)
	}
}

func TestNewOrderNoneIsIdentity(t *testing.T) {
	g := triangle()
	s := NewSorter(g)
	nodes := s.NewOrder(OrderNone, FirstToLast, false)
	assert.Equal(t, []int{0, 1, 2}, nodes)
}

func TestNewOrderMinDegenOnTriangleIsPermutation(t *testing.T) {
	g := triangle()
	s := NewSorter(g)
	nodes := s.NewOrder(OrderMinDegen, FirstToLast, false)
	isPermutation(t, nodes, 3)
}

func TestAbsoluteOrderMinIsMonotonic(t *testing.T) {
	g := graph.NewUndirected(5, bitset.NewDense)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	g.AddEdge(0, 4)
	g.AddEdge(1, 2)

	s := NewSorter(g)
	nodes := s.NewOrder(OrderMin, FirstToLast, false)
	degs := make([]int, len(nodes))
	for i, v := range nodes {
		degs[i] = g.Degree(v)
	}
	assert.True(t, sort.IntsAreSorted(degs))
}

func TestAbsoluteOrderMaxIsMonotonicDescending(t *testing.T) {
	g := graph.NewUndirected(5, bitset.NewDense)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	g.AddEdge(0, 4)
	g.AddEdge(1, 2)

	s := NewSorter(g)
	nodes := s.NewOrder(OrderMax, FirstToLast, false)
	for i := 1; i < len(nodes); i++ {
		assert.GreaterOrEqual(t, g.Degree(nodes[i-1]), g.Degree(nodes[i]))
	}
}

func TestPlacementLastToFirstReversesFirstToLast(t *testing.T) {
	g := triangle()
	ftl := NewSorter(g).NewOrder(OrderMin, FirstToLast, false)
	ltf := NewSorter(g).NewOrder(OrderMin, LastToFirst, false)
	n := len(ftl)
	for i := range ftl {
		assert.Equal(t, ftl[i], ltf[n-1-i])
	}
}

func TestO2NInversionRoundTrips(t *testing.T) {
	g := triangle()
	n2o := NewSorter(g).NewOrder(OrderMinDegen, FirstToLast, false)
	o2n := NewSorter(g).NewOrder(OrderMinDegen, FirstToLast, true)
	for newIdx, oldV := range n2o {
		assert.Equal(t, newIdx, o2n[oldV])
	}
}

func TestCompositeDegenOrderingsArePermutations(t *testing.T) {
	g := graph.NewUndirected(6, bitset.NewDense)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 2}} {
		g.AddEdge(e[0], e[1])
	}
	isPermutation(t, NewSorter(g).NewOrder(OrderMinDegenCompo, FirstToLast, false), 6)
	isPermutation(t, NewSorter(g).NewOrder(OrderMaxDegenCompo, FirstToLast, false), 6)
}

func TestOrderMinWeightPanicsWithoutWeights(t *testing.T) {
	g := triangle()
	s := NewSorter(g)
	assert.Panics(t, func() { s.NewOrder(OrderMinWeight, FirstToLast, false) })
}

func TestOrderMinWeightSortsByWeight(t *testing.T) {
	g := graph.NewUndirected(4, bitset.NewDense)
	weights := []int64{40, 10, 30, 20}
	s := NewSorter(g).WithWeights(weights)
	nodes := s.NewOrder(OrderMinWeight, FirstToLast, false)
	assert.Equal(t, []int{1, 3, 2, 0}, nodes)
}

func TestSorterReorderPreservesEdgeCount(t *testing.T) {
	g := graph.NewUndirected(5, bitset.NewDense)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}} {
		g.AddEdge(e[0], e[1])
	}
	s := NewSorter(g)
	perm := s.NewOrder(OrderMinDegen, FirstToLast, true) // old-to-new

	out := graph.NewUndirected(5, bitset.NewDense)
	s.Reorder(perm, out, nil)
	assert.EqualValues(t, g.NumEdges(true), out.NumEdges(true))

	for u := 0; u < g.NV; u++ {
		for v := u + 1; v < g.NV; v++ {
			assert.Equal(t, g.IsEdge(u, v), out.IsEdge(perm[u], perm[v]))
		}
	}
}
