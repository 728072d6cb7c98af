package graph

import "github.com/katalvlaran/bitgraph/bitset"

// DegreeSequence returns Degree(v) for every vertex of g, in vertex-index
// order.
func DegreeSequence[B bitset.Set](g *Graph[B]) []int {
	seq := make([]int, g.NV)
	for v := 0; v < g.NV; v++ {
		seq[v] = g.Degree(v)
	}
	return seq
}

// MaxDegree returns the vertex with the largest degree and that degree.
// On a graph with no vertices it returns (-1, 0).
func MaxDegree[B bitset.Set](g *Graph[B]) (vertex, degree int) {
	vertex = -1
	for v := 0; v < g.NV; v++ {
		if d := g.Degree(v); d > degree || vertex == -1 {
			vertex, degree = v, d
		}
	}
	return vertex, degree
}
