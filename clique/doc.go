// Package clique enumerates cliques of finite undirected graphs with the
// Bron–Kerbosch algorithm.
//
// What:
//
//   - Enumerate takes an explicit symmetric adjacency mapping and lazily
//     yields cliques as a one-shot sequence. In maximal-only mode exactly
//     the inclusion-maximal cliques are produced, each once; otherwise every
//     clique visited by the recursion is yielded, including the empty one.
//
// How:
//
//   - The recursion maintains the classic triple: the current clique, the
//     candidate set (nodes adjacent to the whole clique, not yet ruled out)
//     and the excluded set (nodes adjacent to the whole clique but already
//     explored). Candidates are iterated over a snapshot, each recursion
//     intersects both auxiliary sets with the chosen node's neighborhood,
//     and the node moves from candidates to excluded afterwards — the step
//     that prevents duplicate maximal cliques. No pivoting is applied; a
//     pivot would only change the visit order, never the emitted set.
//
// Contract:
//
//   - Adjacency must be symmetric and loop-free; it is read as given.
//   - Each Enumerate call is an independent traversal; the returned sequence
//     is not restartable mid-iteration.
package clique
