// Package degeneracy computes vertex orderings over a graph: absolute
// sorts by degree/support/weight, degeneracy (iterative minimum/maximum
// degree removal) orderings, composite orderings that re-break degeneracy
// ties using a baseline absolute order, and the Batagelj–Zaveršnik linear
// k-core decomposition. Every ordering is a permutation of [0, NV); the
// o2n flag on Sorter.NewOrder controls whether it comes back in
// new-to-old or old-to-new form.
//
// Nothing here mutates the graph it is built over; orderings are consumed
// by package mapping's Reorder* functions and GraphMap.
package degeneracy
