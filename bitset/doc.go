// Package bitset provides fixed-capacity sets of non-negative integers,
// in two storage variants sharing one interface.
//
// Dense stores one uint64 block per 64 elements of capacity, contiguously.
// Sparse stores only the non-zero blocks, sorted by block index. Both
// satisfy Set, so graph adjacency (see package graph) can be parameterized
// over either backend without caring which one it got.
//
// A Set is NOT safe for concurrent mutation: bitgraph has no parallelism in
// its core (see the repository's top-level docs), so none of these types
// take locks. Independent Sets on independent goroutines are fine; sharing
// one Set across goroutines without external synchronization is not.
//
// Scanning (Scanner, see scan.go) walks the set bits of a Set in ascending
// or descending order, optionally clearing them as it goes. A Scanner holds
// its own cursor, so unlike the original BitGraph's scan-state-in-the-bitset
// design, starting a second Scanner over the same Set does not corrupt the
// first one's bookkeeping — only a destructive Scanner's effect on the
// backing Set is something a concurrent reader would notice.
package bitset

// NoBit is the sentinel returned by Lsb, Msb, and Scanner.Next when there
// is no bit to report.
const NoBit = -1
