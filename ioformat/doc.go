// Package ioformat reads and writes the three ASCII graph formats
// spec.md §6 requires bitgraph to interoperate with: DIMACS clique format
// (.clq, .col), Matrix Market coordinate pattern (.mtx), and a bare
// edge-list (.edges). Every reader returns a *graph.GraphEW so vertex and
// edge weights embedded in the extended DIMACS conventions have somewhere
// to live even when the caller only cares about topology.
//
// Readers take an io.Reader; ReadFile is the only function that touches
// the filesystem, so callers that already have the bytes in hand (an
// embedded fixture, a network body) can parse them directly.
package ioformat
