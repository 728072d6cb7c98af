package degeneracy

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bitgraph/bitset"
	"github.com/katalvlaran/bitgraph/graph"
)

// Algorithm selects which ordering Sorter.NewOrder produces.
type Algorithm int

const (
	// OrderNone returns the identity permutation.
	OrderNone Algorithm = iota
	// OrderMin sorts by ascending degree.
	OrderMin
	// OrderMax sorts by descending degree.
	OrderMax
	// OrderMinWithSupport sorts by ascending degree, ties broken by
	// ascending support (sum of neighbor degrees).
	OrderMinWithSupport
	// OrderMaxWithSupport sorts by descending degree, ties broken by
	// descending support.
	OrderMaxWithSupport
	// OrderMinWeight sorts by ascending vertex weight. Requires WithWeights.
	OrderMinWeight
	// OrderMaxWeight sorts by descending vertex weight. Requires WithWeights.
	OrderMaxWeight
	// OrderMinDegen iteratively removes the minimum-current-degree vertex.
	OrderMinDegen
	// OrderMaxDegen iteratively removes the maximum-current-degree vertex.
	OrderMaxDegen
	// OrderMinDegenCompo is OrderMinDegen with ties re-broken by a
	// MIN_WITH_SUPPORT baseline order.
	OrderMinDegenCompo
	// OrderMaxDegenCompo is OrderMaxDegen with ties re-broken by a
	// MAX_WITH_SUPPORT baseline order.
	OrderMaxDegenCompo
)

// Placement selects whether NewOrder's raw extraction order is kept
// as-is (FirstToLast) or reversed (LastToFirst) before any o2n inversion.
type Placement int

const (
	FirstToLast Placement = iota
	LastToFirst
)

// DecodeRecorder is the minimal contract Sorter.Reorder needs from a
// mapping.Decode, expressed here (rather than imported) so this package
// does not depend on package mapping, which depends on this one.
type DecodeRecorder interface {
	AddOrdering(perm []int)
}

// Sorter computes vertex orderings over an undirected graph g. A single
// Sorter may be reused for several NewOrder calls; every NewOrder call
// whose algorithm needs degrees or supports reruns ComputeDegRoot and
// ComputeSupportRoot itself.
type Sorter[B bitset.Set] struct {
	g        *graph.Ugraph[B]
	nbNeigh  []int // degree, fed by ComputeDegRoot
	degNeigh []int // support = sum of neighbor degrees, fed by ComputeSupportRoot
	weights  []int64
}

// NewSorter returns a Sorter over g. g is not copied; it must outlive the
// Sorter and must not be mutated while a NewOrder call is in flight.
func NewSorter[B bitset.Set](g *graph.Ugraph[B]) *Sorter[B] {
	return &Sorter[B]{g: g}
}

// WithWeights attaches a vertex-weight vector (length g.NV) so
// OrderMinWeight/OrderMaxWeight become available. Returns s for chaining.
func (s *Sorter[B]) WithWeights(w []int64) *Sorter[B] {
	s.weights = w
	return s
}

// ComputeDegRoot fills nb_neigh by popcounting every vertex's adjacency.
// O(|V| + |E|).
func (s *Sorter[B]) ComputeDegRoot() {
	s.nbNeigh = make([]int, s.g.NV)
	for v := 0; v < s.g.NV; v++ {
		s.nbNeigh[v] = s.g.Degree(v)
	}
}

// ComputeSupportRoot fills deg_neigh[v] with the sum of nb_neigh over v's
// neighbors. Requires nb_neigh already populated (ComputeDegRoot). O(|V| +
// |E|).
func (s *Sorter[B]) ComputeSupportRoot() {
	s.degNeigh = make([]int, s.g.NV)
	for v := 0; v < s.g.NV; v++ {
		sum := 0
		sc := s.g.Adj[v].InitScan(bitset.ScanForward)
		for u := sc.Next(); u != bitset.NoBit; u = sc.Next() {
			sum += s.nbNeigh[u]
		}
		s.degNeigh[v] = sum
	}
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

// absoluteOrder stable-sorts [0, nV) by key, ascending unless descending.
func (s *Sorter[B]) absoluteOrder(key func(v int) int64, descending bool) []int {
	nodes := identity(s.g.NV)
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := key(nodes[i]), key(nodes[j])
		if descending {
			return a > b
		}
		return a < b
	})
	return nodes
}

// absoluteOrderWithSupport stable-sorts by degree primary, support
// tiebreak, both in the same direction.
func (s *Sorter[B]) absoluteOrderWithSupport(descending bool) []int {
	nodes := identity(s.g.NV)
	sort.SliceStable(nodes, func(i, j int) bool {
		u, v := nodes[i], nodes[j]
		if s.nbNeigh[u] != s.nbNeigh[v] {
			if descending {
				return s.nbNeigh[u] > s.nbNeigh[v]
			}
			return s.nbNeigh[u] < s.nbNeigh[v]
		}
		if descending {
			return s.degNeigh[u] > s.degNeigh[v]
		}
		return s.degNeigh[u] < s.degNeigh[v]
	})
	return nodes
}

// degenExtract performs the O(|V|^2) degeneracy extraction: repeatedly
// pick the active vertex with minimum (or, if !minimize, maximum) current
// degree, scanning candidates in tieOrder (natural index order if nil, a
// baseline absolute order for the composite variants), append it,
// deactivate it, and decrement the degree of its still-active neighbors.
func (s *Sorter[B]) degenExtract(minimize bool, tieOrder []int) []int {
	n := s.g.NV
	deg := make([]int, n)
	copy(deg, s.nbNeigh)
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	order := tieOrder
	if order == nil {
		order = identity(n)
	}

	nodes := make([]int, 0, n)
	for iter := 0; iter < n; iter++ {
		best := -1
		for _, v := range order {
			if !active[v] {
				continue
			}
			if best == -1 {
				best = v
				continue
			}
			if minimize && deg[v] < deg[best] {
				best = v
			} else if !minimize && deg[v] > deg[best] {
				best = v
			}
		}
		nodes = append(nodes, best)
		active[best] = false

		sc := s.g.Adj[best].InitScan(bitset.ScanForward)
		for w := sc.Next(); w != bitset.NoBit; w = sc.Next() {
			if active[w] {
				deg[w]--
			}
		}
	}
	return nodes
}

// NewOrder is the one-shot driver: it dispatches to the algorithm named
// by alg, applies placement (a reverse when LastToFirst), then inverts
// the permutation into old-to-new form when o2n is true. The raw
// extraction/sort order is new-to-old (nodes[newIndex] = oldVertex);
// o2n=true flips it to nodes[oldVertex] = newIndex.
func (s *Sorter[B]) NewOrder(alg Algorithm, placement Placement, o2n bool) []int {
	var nodes []int
	switch alg {
	case OrderNone:
		nodes = identity(s.g.NV)
	case OrderMin:
		s.ComputeDegRoot()
		nodes = s.absoluteOrder(func(v int) int64 { return int64(s.nbNeigh[v]) }, false)
	case OrderMax:
		s.ComputeDegRoot()
		nodes = s.absoluteOrder(func(v int) int64 { return int64(s.nbNeigh[v]) }, true)
	case OrderMinWithSupport:
		s.ComputeDegRoot()
		s.ComputeSupportRoot()
		nodes = s.absoluteOrderWithSupport(false)
	case OrderMaxWithSupport:
		s.ComputeDegRoot()
		s.ComputeSupportRoot()
		nodes = s.absoluteOrderWithSupport(true)
	case OrderMinWeight:
		if s.weights == nil {
			panic(fmt.Errorf("Sorter.NewOrder(OrderMinWeight): %w", ErrNoWeights))
		}
		nodes = s.absoluteOrder(func(v int) int64 { return s.weights[v] }, false)
	case OrderMaxWeight:
		if s.weights == nil {
			panic(fmt.Errorf("Sorter.NewOrder(OrderMaxWeight): %w", ErrNoWeights))
		}
		nodes = s.absoluteOrder(func(v int) int64 { return s.weights[v] }, true)
	case OrderMinDegen:
		s.ComputeDegRoot()
		nodes = s.degenExtract(true, nil)
	case OrderMaxDegen:
		s.ComputeDegRoot()
		nodes = s.degenExtract(false, nil)
	case OrderMinDegenCompo:
		s.ComputeDegRoot()
		s.ComputeSupportRoot()
		base := s.absoluteOrderWithSupport(false)
		nodes = s.degenExtract(true, base)
	case OrderMaxDegenCompo:
		s.ComputeDegRoot()
		s.ComputeSupportRoot()
		base := s.absoluteOrderWithSupport(true)
		nodes = s.degenExtract(false, base)
	default:
		panic(fmt.Errorf("Sorter.NewOrder: algorithm %d: %w", alg, ErrUnknownAlgorithm))
	}

	if placement == LastToFirst {
		reverseInts(nodes)
	}
	if o2n {
		nodes = invert(nodes)
	}
	return nodes
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// invert returns perm's inverse: out[perm[i]] = i.
func invert(perm []int) []int {
	out := make([]int, len(perm))
	for i, p := range perm {
		out[p] = i
	}
	return out
}

// Reorder materializes the isomorphic graph obtained by applying the
// old-to-new permutation permO2N to s's graph, writing it into out (which
// is reset to the same vertex count). If decode is non-nil, the new-to-old
// inverse of permO2N is pushed onto it, matching spec.md §4.7's "a Decode
// out-parameter may be handed in to record the new→old inverse."
//
// Complexity: O(|V| + |E|) via direct neighbor enumeration rather than the
// pairwise is_edge probe package mapping's Reorder* functions use, since here the
// permutation is already known and no weight migration is required.
func (s *Sorter[B]) Reorder(permO2N []int, out *graph.Ugraph[B], decode DecodeRecorder) {
	out.Reset(s.g.NV)
	for u := 0; u < s.g.NV; u++ {
		sc := s.g.Adj[u].InitScan(bitset.ScanForward)
		for v := sc.Next(); v != bitset.NoBit; v = sc.Next() {
			if v > u {
				out.AddEdge(permO2N[u], permO2N[v])
			}
		}
	}
	if decode != nil {
		decode.AddOrdering(invert(permO2N))
	}
}
