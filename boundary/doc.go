// Package boundary traces the oriented boundary of a region on a 2-D grid.
//
// What:
//
//   - A boundary Pair is an ordered pair of adjacent grid points straddling
//     a region's edge; its normal vector is Out − In.
//   - Neighbors builds a unit-weight core.NeighborFunc over Pairs that
//     enumerates every boundary pair reachable by one elementary move, so
//     the search engine (or Trace) can walk the boundary.
//   - Trace walks the boundary iteratively from a seed pair until the loop
//     closes.
//
// How:
//
//	Per pair, three families of moves are explored:
//	  1. extension — translate both points perpendicular to the normal, in
//	     both perpendicular directions;
//	  2. rotation about the In anchor — rotate Out 90° clockwise and
//	     counter-clockwise around In;
//	  3. rotation about the Out anchor — the symmetric rotation fixing Out.
//	A candidate is admitted when its membership pattern matches the seed
//	pair's. For rotations whose fixed anchor lies outside the region, the
//	diagonal midpoint pair must additionally match — otherwise the walk
//	could teleport across a single-cell pinch point. WithThinCorners skips
//	that midpoint check, explicitly permitting such pinch crossings. With no
//	membership predicate at all, every geometrically valid candidate is
//	admitted.
//
// Errors:
//
//   - ErrNotBoundary:  a pair whose two points do not differ in membership
//     was expanded — a fatal precondition violation.
//   - ErrOpenBoundary: Trace dead-ended or hit an ambiguous branch, so the
//     boundary does not form a simple closed loop (recoverable).
package boundary
