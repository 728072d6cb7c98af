// Package mapping composes vertex orderings produced by package degeneracy
// into bidirectional translations between graph labelings: Decode is a
// stack of permutations that can be unwound to recover original vertex
// identities, GraphMap pairs two orderings of the same graph (or of the
// same graph under two different labels) into an l2r/r2l translation, and
// the Reorder* functions materialize the graph a permutation describes.
package mapping
