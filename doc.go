// Package bitgraph is a bitset-encoded graph library for degeneracy
// ordering, k-core decomposition, and vertex-mapping workflows.
//
// 🚀 What is bitgraph?
//
//	A small, dependency-light library that brings together:
//
//	  • bitset   — Dense and Sparse bit-vector backends behind one Set interface
//	  • graph    — undirected/directed/weighted graphs addressed over a bitset
//	  • degeneracy — Sorter (O(V²) degeneracy/absolute orderings) and
//	    KCore (O(V+E) Batagelj–Zaveršnik k-core decomposition)
//	  • mapping  — composable vertex permutations (Decode) and paired
//	    left/right relabelings (GraphMap), and Reorder* functions that
//	    write a relabeled copy of a graph
//	  • ioformat — DIMACS, Matrix Market, and plain edge-list readers/writers
//	  • genutil  — a seedable Rng and random graph/weight generators
//
// ✨ Why choose bitgraph?
//
//   - Compact        — adjacency lives in bitsets, not maps of maps
//   - Generic        — every graph and algorithm is parameterized over
//     bitset.Set, so Dense and Sparse backends share one code path
//   - Explicit       — no global RNG state, no hidden I/O; everything
//     needed by an algorithm is passed in
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	bitset/     — Dense and Sparse bit-vector implementations
//	graph/      — Graph, Ugraph, GraphW, GraphEW vertex/edge containers
//	degeneracy/ — degeneracy orderings and k-core decomposition
//	mapping/    — vertex permutation composition and graph relabeling
//	ioformat/   — DIMACS / Matrix Market / edge-list file I/O
//	genutil/    — seedable random graph and weight generation
//	cmd/benchgen — CLI that writes grids of random benchmark graphs
//
// See SPEC_FULL.md and DESIGN.md for the full module layout and the
// grounding behind each package's design.
package bitgraph
