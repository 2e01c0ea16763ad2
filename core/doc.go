// Package core defines the contract every implath algorithm is written
// against: implicit graphs expressed as neighbor functions.
//
// What:
//
//   - Edge[N]: a (neighbor, weight) pair yielded by a neighbor function.
//   - NeighborFunc[N]: given a node, lazily produce its outgoing edges.
//   - Set[N]: the node-set currency shared by the algorithm packages.
//
// Why:
//
//   - A board-backed grid, an adjacency map and a residual flow network all
//     become interchangeable graph sources behind one function type.
//   - Graphs may be unbounded; nothing is materialized until an algorithm
//     asks a node for its neighbors.
//
// A NeighborFunc may return an error to signal a contract violation detected
// lazily (for example a boundary seed that does not straddle a region's
// boundary); algorithms propagate such errors to the caller unchanged.
package core
