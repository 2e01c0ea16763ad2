// Package flow computes maximum flows and minimum cuts on finite capacitated
// graphs with the Edmonds–Karp variation of Ford–Fulkerson.
//
// What:
//
//   - MaxFlow takes a finite node set, a neighbor function yielding
//     (neighbor, capacity) pairs, a source and a sink, and returns the
//     maximum flow value, a signed per-arc flow assignment, and the
//     minimum-cut node partition.
//
// How:
//
//   - A signed flow map (flow[u→v] = −flow[v→u]) starts at zero. Each round
//     runs unit-weight reachability — the search engine as a BFS — over the
//     residual graph, where an arc's residual capacity is its capacity minus
//     its current flow and only strictly positive residuals are exposed.
//     Reaching the sink yields the fewest-hop augmenting path via the
//     predecessor map; the bottleneck residual is pushed along it. When the
//     sink becomes unreachable, the reachable set is the source side of a
//     minimum cut and iteration stops.
//
// Complexity:
//
//   - O(V·E²): each BFS costs O(E) and the number of augmentations is
//     bounded by O(V·E).
//
// Errors:
//
//   - ErrSameSourceSink:      source equals sink (invalid input).
//   - ErrNonPositiveCapacity: an edge with capacity ≤ 0 (invalid input).
//   - ErrCapacityExceeded:    observed flow above capacity — an internal
//     consistency failure, never expected under correct input.
package flow
