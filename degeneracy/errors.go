package degeneracy

import "errors"

// Sentinel errors. As in package graph and package bitset, argument
// violations (out-of-range weight slice, unknown Algorithm) panic rather
// than return an error — these sentinels back those panics so callers can
// still errors.Is on the recovered value if they choose to recover.
var (
	// ErrNoWeights indicates OrderMinWeight/OrderMaxWeight was requested
	// on a Sorter built without WithWeights.
	ErrNoWeights = errors.New("degeneracy: weighted ordering requested without weights")

	// ErrUnknownAlgorithm indicates NewOrder received an Algorithm value
	// outside the declared enumeration.
	ErrUnknownAlgorithm = errors.New("degeneracy: unknown algorithm")

	// ErrEmptyGraph indicates KCore.FindKCore or FindKCoreUB was run on a
	// graph with no vertices, a data-model violation per spec §7 kind 4.
	ErrEmptyGraph = errors.New("degeneracy: k-core run on empty graph")
)
