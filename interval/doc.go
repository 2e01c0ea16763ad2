// Package interval implements set arithmetic over collections of disjoint
// open-closed intervals on the real line.
//
// What:
//
//   - Diff computes the set difference a − b, Intersect the intersection
//     a ∩ b, both by exhaustive pairwise case analysis. Empty intervals
//     (Lo ≥ Hi) never appear in results.
//
// Both operands must be sets of pairwise-disjoint intervals; results are
// built from the pairwise combinations of the two operands.
package interval
