// Package bands tracks the inline space taken by floats along the block axis.
//
// # Overview
//
// A [Map] partitions the block axis [0, ∞) into bands: maximal half-open
// intervals [Top, Bottom) over which the space occupied from the left edge
// and from the right edge of the containing block is constant. The map starts
// as a single band [0, ∞) with nothing occupied and is refined as floats are
// recorded with [Map.Occupy].
//
// Bands are stored in a [splay.Tree] keyed by their top coordinate. Float
// placement probes coordinates near the previous float, so the splay tree
// keeps those bands close to the root.
//
// # Invariants
//
// After every mutation:
//
//   - bands are sorted, disjoint, contiguous and cover [0, ∞); the last band
//     is unbounded and never occupied
//   - no two adjacent bands carry the same (Left, Right) pair, so the number
//     of bands is bounded by the number of distinct float edges
//
// [Map.Check] verifies both and is used by tests and by the verify command.
// The map does not require Left + Right to fit the containing block; keeping
// floats from overlapping is the job of the placer in package floats.
//
// # Queries
//
//   - [Map.QueryWindow] probes one candidate position for a float and, when
//     it does not fit, reports the next coordinate worth trying
//   - [Map.LowestEdge] answers clearance: the lowest bottom of any band
//     occupied on the given sides
//
// A Map is owned by a single layout pass and is not safe for concurrent use.
package bands
