// Package reduce shrinks finite undirected graphs while preserving
// shortest-path distances between a designated set of irreducible nodes.
//
// What:
//
//   - Reduce materializes the adjacency of a finite node set, then repeatedly
//     folds any non-kept node with exactly two neighbors: the node is
//     removed and its neighbors joined directly by an edge weighing the sum
//     of the two removed edges. The loop runs to a fixed point.
//
// Why:
//
//   - Long corridors of degree-2 nodes dominate many boards; collapsing them
//     before running search can shrink the graph by orders of magnitude
//     without changing any distance between the nodes that matter.
//
// Invariants:
//
//   - The input must be undirected: (u,w) ∈ edges[v] ⟺ (v,w) ∈ edges[u] as
//     multisets. Violations surface as ErrAsymmetric, checked both upfront
//     and on every fold.
//   - Weights must be non-negative (ErrNegativeWeight).
//   - Folding two chains into the same neighbor pair leaves parallel edges;
//     they are deliberately kept as equal-standing path candidates, and
//     shortest-path consumers naturally prefer the lighter one.
//   - Cycles composed entirely of reducible nodes are never folded (a fold
//     requires two distinct neighbors); reduction simply stops there.
//
// Errors:
//
//   - ErrAsymmetric:     adjacency is not symmetric (internal consistency).
//   - ErrNegativeWeight: a negative edge weight was materialized.
package reduce
