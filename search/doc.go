// Package search implements a generalized shortest-path engine over implicit
// weighted graphs: Dijkstra's algorithm augmented with an optional admissible
// heuristic (A*), multi-predecessor recording for full optimal-path
// enumeration, an explicit revisit mode for non-monotonic heuristics, an
// early-stop callback, and a pre-seeded finalized set.
//
// What:
//
//   - Run walks the graph described by a core.NeighborFunc from a start node,
//     producing a distance map and, for every reached node except the start,
//     the ordered set of immediate predecessors on some optimal path.
//   - Unit adapts a weightless adjacency function into a unit-weight
//     NeighborFunc, turning Run into plain breadth-first reachability.
//
// Why:
//
//   - One engine serves board walks, residual-network reachability (flow),
//     reduced graphs (reduce) and boundary traversals (boundary).
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy-decrease-key min-heap; each edge
//     relaxation may push a duplicate entry that is skipped when popped.
//   - Space: O(V + E) for distances, predecessor sets and the frontier.
//   - With WithRevisit, nodes may be expanded multiple times; termination
//     still holds because re-enqueueing requires an improved or equal-cost
//     discovery and weights are strictly positive.
//
// Preconditions (documented, not detected at runtime):
//
//   - The heuristic must never overestimate the true remaining distance.
//   - Without WithRevisit the heuristic must additionally be monotonic:
//     along any edge its value may decrease by no more than the edge weight.
//     A non-monotonic heuristic without revisit can yield non-optimal
//     distances.
//
// Errors:
//
//   - ErrNonPositiveWeight: a neighbor edge with weight ≤ 0 (invalid input).
//   - ErrNilNeighborFunc:   Run was given a nil neighbor function.
//   - ErrOptionViolation:   an invalid functional option was supplied.
//   - ErrNoPath:            PathTo/Paths target was never reached
//     (recoverable).
package search
