// Package graph implements bitset-encoded simple graph representations:
// directed Graph, the undirected refinement Ugraph, and vertex-/edge-
// weighted wrappers over either.
//
// Adjacency is a slice of bitset.Set, one per vertex: edge (u,v) exists
// iff bit v is set in Adj[u]. The storage backend (bitset.Dense or
// bitset.Sparse) is chosen once at construction via a factory function and
// never changes over the graph's lifetime — bitgraph has no dynamic vertex
// insertion or removal; capacity is fixed at construction or a full Reset.
//
// None of these types are safe for concurrent mutation (see package
// bitset's documentation for the same rule at the bitset level). A single
// Graph instance is meant for single-threaded use; independent instances
// on independent goroutines are fine.
package graph
