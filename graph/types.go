package graph

import "github.com/katalvlaran/bitgraph/bitset"

// NewSetFunc builds a fresh, empty bitset.Set of the given capacity. The
// two bitset backends satisfy this signature already: bitset.NewDense and
// bitset.NewSparse both return a *T that implements bitset.Set generically
// bound to B below.
type NewSetFunc[B bitset.Set] func(cap int) B

// Graph is a directed simple graph over vertices [0, NV). Adjacency is a
// slice of B (bitset.Dense or bitset.Sparse), one bitset per vertex: edge
// (u,v) exists iff Adj[u].IsSet(v).
//
// NE caches the edge count; it is kept accurate by AddEdge/RemoveEdge on
// Graph and on Ugraph alike (Ugraph.NumEdges additionally treats NE == 0
// as "unknown" and recounts it from the adjacency).
type Graph[B bitset.Set] struct {
	NV   int
	NE   uint64
	Adj  []B
	Name string
	Path string

	newSet NewSetFunc[B]
}

// New returns a directed Graph with n vertices and no edges, using newSet
// to allocate each vertex's adjacency bitset.
//
// Complexity: O(n) allocations of capacity-n bitsets.
func New[B bitset.Set](n int, newSet NewSetFunc[B]) *Graph[B] {
	g := &Graph[B]{newSet: newSet}
	g.Reset(n)
	return g
}

// Reset discards all edges and metadata and reallocates adjacency for n
// vertices. This is bitgraph's only supported way to change vertex count
// after construction (no dynamic insert/remove, per spec's non-goals).
func (g *Graph[B]) Reset(n int) {
	g.NV = n
	g.NE = 0
	g.Adj = make([]B, n)
	for i := range g.Adj {
		g.Adj[i] = g.newSet(n)
	}
	g.Name = ""
	g.Path = ""
}

// NumVertices returns NV.
func (g *Graph[B]) NumVertices() int { return g.NV }

// NumEdges returns the cached directed edge count.
func (g *Graph[B]) NumEdges() uint64 { return g.NE }

// AddEdge inserts the directed edge (u,v), incrementing NE iff the edge
// was not already present. Self-loops (u == v) are rejected silently, as
// spec.md §4.5 specifies for the directed case.
func (g *Graph[B]) AddEdge(u, v int) {
	if u == v {
		return
	}
	if !g.Adj[u].IsSet(v) {
		g.Adj[u].Set(v)
		g.NE++
	}
}

// RemoveEdge deletes the directed edge (u,v) if present.
func (g *Graph[B]) RemoveEdge(u, v int) {
	if g.Adj[u].IsSet(v) {
		g.Adj[u].Clear(v)
		g.NE--
	}
}

// IsEdge reports whether edge (u,v) exists.
func (g *Graph[B]) IsEdge(u, v int) bool { return g.Adj[u].IsSet(v) }

// Degree returns the out-degree of v.
func (g *Graph[B]) Degree(v int) int { return g.Adj[v].Count() }

// Neighbors returns v's adjacency bitset directly (not a copy); callers
// that need to mutate it independently should Clone it first.
func (g *Graph[B]) Neighbors(v int) B { return g.Adj[v] }

// RemoveAllEdgesFrom clears every outgoing edge of v.
func (g *Graph[B]) RemoveAllEdgesFrom(v int) {
	g.NE -= uint64(g.Adj[v].Count())
	g.Adj[v].ClearRange(0, g.NV-1)
}

// CreateSubgraph returns the induced subgraph on vertex subset vs
// (0-based indices into this graph), renumbered densely 0..len(vs)-1 in
// the order given.
//
// Complexity: O(|vs|^2) via pairwise IsEdge probes.
func (g *Graph[B]) CreateSubgraph(vs []int) *Graph[B] {
	out := New(len(vs), g.newSet)
	for i, u := range vs {
		for j, v := range vs {
			if i != j && g.IsEdge(u, v) {
				out.AddEdge(i, j)
			}
		}
	}
	return out
}

// CreateComplement writes this graph's complement (same vertex set, edge
// (u,v) present iff it was absent here and u != v) into out, which must
// already have out.NV == g.NV.
func (g *Graph[B]) CreateComplement(out *Graph[B]) {
	out.Reset(g.NV)
	for u := 0; u < g.NV; u++ {
		for v := 0; v < g.NV; v++ {
			if u != v && !g.IsEdge(u, v) {
				out.AddEdge(u, v)
			}
		}
	}
}

// Ugraph is the undirected refinement of Graph: AddEdge and RemoveEdge
// maintain Adj[u].IsSet(v) == Adj[v].IsSet(u), and NE counts each
// undirected edge once.
type Ugraph[B bitset.Set] struct {
	*Graph[B]
}

// NewUndirected returns an Ugraph with n vertices and no edges.
func NewUndirected[B bitset.Set](n int, newSet NewSetFunc[B]) *Ugraph[B] {
	return &Ugraph[B]{Graph: New(n, newSet)}
}

// AddEdge inserts the undirected edge {u,v}, incrementing NE by 1 iff it
// was not already present. Self-loops are rejected silently.
func (u *Ugraph[B]) AddEdge(a, b int) {
	if a == b {
		return
	}
	if u.Adj[a].IsSet(b) {
		return
	}
	u.Adj[a].Set(b)
	u.Adj[b].Set(a)
	u.NE++
}

// RemoveEdge deletes the undirected edge {a,b} if present.
func (u *Ugraph[B]) RemoveEdge(a, b int) {
	if !u.Adj[a].IsSet(b) {
		return
	}
	u.Adj[a].Clear(b)
	u.Adj[b].Clear(a)
	u.NE--
}

// NumEdges returns the number of undirected edges. If lazy is true and NE
// is non-zero, the cache is returned as-is. Otherwise (lazy is false, or
// NE is 0, which stands for "unknown") it is recomputed by
// summing every vertex's degree and halving; an odd sum is a data-model
// violation (spec §7 kind 4) and panics.
func (u *Ugraph[B]) NumEdges(lazy bool) uint64 {
	if lazy && u.NE != 0 {
		return u.NE
	}
	sum := 0
	for v := 0; v < u.NV; v++ {
		sum += u.Adj[v].Count()
	}
	if sum%2 != 0 {
		panic(ErrOddEdgeSum)
	}
	u.NE = uint64(sum / 2)
	return u.NE
}

// DegreeUp returns the number of neighbors of v with index strictly
// greater than v, used by degeneracy orderings to bound work to the upper
// triangle of the adjacency.
func (u *Ugraph[B]) DegreeUp(v int) int {
	if v+1 > u.NV-1 {
		return 0
	}
	return u.Adj[v].CountInRange(v+1, u.NV-1)
}

// MaxSubgraphDegree returns max_{v in sg} |N(v) ∩ sg|.
func (u *Ugraph[B]) MaxSubgraphDegree(sg bitset.Set) int {
	max := 0
	sc := sg.InitScan(bitset.ScanForward)
	for v := sc.Next(); v != bitset.NoBit; v = sc.Next() {
		tmp := u.Adj[v].Clone()
		tmp.And(sg)
		if c := tmp.Count(); c > max {
			max = c
		}
	}
	return max
}

// OutgoingDegree counts edges with exactly one endpoint inside sg.
func (u *Ugraph[B]) OutgoingDegree(sg bitset.Set) int {
	total := 0
	sc := sg.InitScan(bitset.ScanForward)
	for v := sc.Next(); v != bitset.NoBit; v = sc.Next() {
		tmp := u.Adj[v].Clone()
		tmp.AndNot(sg)
		total += tmp.Count()
	}
	return total
}
