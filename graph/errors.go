package graph

import "errors"

// Sentinel errors. Argument errors (bad vertex index, wrong-length
// permutation) panic rather than return an error — see bitset/errors.go
// for the same rationale applied one layer down. These sentinels cover the
// data-model violations that spec §7 classifies as fatal: they are used
// as panic values (Ugraph.NumEdges panics with ErrOddEdgeSum itself), not
// returned.
var (
	// ErrOddEdgeSum indicates Ugraph.NumEdges found an odd sum of vertex
	// degrees, which is impossible for a well-formed undirected graph and
	// therefore indicates the adjacency was corrupted out-of-band.
	ErrOddEdgeSum = errors.New("graph: odd sum of degrees in undirected graph")
)
