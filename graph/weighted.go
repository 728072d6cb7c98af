package graph

import "github.com/katalvlaran/bitgraph/bitset"

// DefaultWeight and NoWeight are the sentinels spec.md §3 defines for
// weight vectors and matrices. Weight values throughout this package are
// int64: the spec's weight formulas (modulus assignment, Pullman 2008) are
// integer arithmetic, so a generic numeric weight type would add type
// parameters with no tested use.
const (
	DefaultWeight int64 = 1
	NoWeight      int64 = -1
)

// GraphW is an undirected graph plus a vertex-weight vector. It delegates
// every graph operation to the embedded *Ugraph[B].
type GraphW[B bitset.Set] struct {
	*Ugraph[B]
	W []int64 // length NV, W[v] is the weight of vertex v
}

// NewGraphW returns a GraphW with n vertices, no edges, and every vertex
// weight set to DefaultWeight.
func NewGraphW[B bitset.Set](n int, newSet NewSetFunc[B]) *GraphW[B] {
	gw := &GraphW[B]{Ugraph: NewUndirected(n, newSet)}
	gw.resetWeights()
	return gw
}

func (gw *GraphW[B]) resetWeights() {
	gw.W = make([]int64, gw.NV)
	for i := range gw.W {
		gw.W[i] = DefaultWeight
	}
}

// Reset discards edges, metadata, and weights, reallocating for n vertices.
func (gw *GraphW[B]) Reset(n int) {
	gw.Ugraph.Reset(n)
	gw.resetWeights()
}

// SetModulusWeight assigns w[v] = ((v+1) % m) + 1 to every vertex,
// following Pullman (2008)'s modulus weighting convention.
func (gw *GraphW[B]) SetModulusWeight(m int64) {
	for v := range gw.W {
		gw.W[v] = (int64(v+1) % m) + 1
	}
}

// MaximumWeight returns the vertex with the largest weight and that
// weight. On a graph with no vertices it returns (-1, NoWeight).
func (gw *GraphW[B]) MaximumWeight() (vertex int, w int64) {
	vertex, w = -1, NoWeight
	for v, wv := range gw.W {
		if wv > w || vertex == -1 {
			vertex, w = v, wv
		}
	}
	return vertex, w
}

// WeightScope selects which weights TransformWeights applies f to.
type WeightScope int

const (
	ScopeVertex WeightScope = iota
	ScopeEdge
	ScopeBoth
)

// GraphEW is an undirected graph plus an N×N edge-weight matrix. The
// diagonal we[v][v] holds v's vertex weight; off-diagonal we[u][v] holds
// the weight of edge (u,v) when it exists, or NoWeight otherwise. Symmetry
// (we[u][v] == we[v][u]) is maintained because the underlying graph is
// undirected and every mutator writes both cells together.
type GraphEW[B bitset.Set] struct {
	*Ugraph[B]
	we *weightMatrix
}

// NewGraphEW returns a GraphEW with n vertices, no edges, every vertex
// weight DefaultWeight, and every off-diagonal entry NoWeight.
func NewGraphEW[B bitset.Set](n int, newSet NewSetFunc[B]) *GraphEW[B] {
	gw := &GraphEW[B]{Ugraph: NewUndirected(n, newSet)}
	gw.resetWeights()
	return gw
}

func (gw *GraphEW[B]) resetWeights() {
	gw.we = newWeightMatrix(gw.NV, NoWeight)
	for v := 0; v < gw.NV; v++ {
		gw.we.set(v, v, DefaultWeight)
	}
}

// Reset discards edges, metadata, and weights, reallocating for n vertices.
func (gw *GraphEW[B]) Reset(n int) {
	gw.Ugraph.Reset(n)
	gw.resetWeights()
}

// VertexWeight returns we[v][v].
func (gw *GraphEW[B]) VertexWeight(v int) int64 { return gw.we.at(v, v) }

// SetVertexWeight sets we[v][v].
func (gw *GraphEW[B]) SetVertexWeight(v int, w int64) { gw.we.set(v, v, w) }

// EdgeWeight returns the weight of edge (u,v), or NoWeight if u == v or
// the edge does not exist.
func (gw *GraphEW[B]) EdgeWeight(u, v int) int64 {
	if u == v {
		return NoWeight
	}
	return gw.we.at(u, v)
}

// SetEdgeWeight sets the weight of edge (u,v) symmetrically. It does not
// itself insert the edge into the adjacency; callers add the edge via
// AddEdge first (matching spec.md's "e u v w" extended DIMACS reading,
// where the edge and its weight are parsed together but applied in two
// steps: AddEdge then SetEdgeWeight).
func (gw *GraphEW[B]) SetEdgeWeight(u, v int, w int64) {
	if u == v {
		return
	}
	gw.we.set(u, v, w)
	gw.we.set(v, u, w)
}

// SetModulusEdgeWeight sets we[u][v] = ((u+v+2) % m) + 1 for every edge
// (u,v), leaving non-edges at NoWeight.
func (gw *GraphEW[B]) SetModulusEdgeWeight(m int64) {
	for u := 0; u < gw.NV; u++ {
		for v := u + 1; v < gw.NV; v++ {
			if gw.IsEdge(u, v) {
				w := (int64(u+v+2) % m) + 1
				gw.SetEdgeWeight(u, v, w)
			}
		}
	}
}

// MakeEdgeWeighted sets every vertex weight (the diagonal) to NoWeight,
// turning this into a purely edge-weighted graph.
func (gw *GraphEW[B]) MakeEdgeWeighted() {
	for v := 0; v < gw.NV; v++ {
		gw.we.set(v, v, NoWeight)
	}
}

// TransformWeights applies f to every weight in scope, skipping any entry
// currently equal to NoWeight.
func (gw *GraphEW[B]) TransformWeights(f func(int64) int64, scope WeightScope) {
	if scope == ScopeVertex || scope == ScopeBoth {
		for v := 0; v < gw.NV; v++ {
			if w := gw.we.at(v, v); w != NoWeight {
				gw.we.set(v, v, f(w))
			}
		}
	}
	if scope == ScopeEdge || scope == ScopeBoth {
		for u := 0; u < gw.NV; u++ {
			for v := u + 1; v < gw.NV; v++ {
				if w := gw.we.at(u, v); w != NoWeight {
					nw := f(w)
					gw.we.set(u, v, nw)
					gw.we.set(v, u, nw)
				}
			}
		}
	}
}
