// Package genutil generates random graphs and weight assignments for
// benchmarking and testing. It is deliberately separate from the core
// bitgraph packages (graph, bitset, degeneracy, mapping): nothing in the
// core depends on randomness, matching spec.md §5's note that the only
// process-wide state in the original design — the random-number engine —
// belongs to the generator component, not the core.
//
// Rng wraps math/rand/v2 behind a small seedable type so callers never
// touch a global generator: spec.md §9's "replace file-scope static with
// explicit Rng" design note is honored by threading *Rng explicitly
// through every generator call instead of reading a package-level
// variable.
package genutil
