// Package implath is a toolkit for algorithms over weighted graphs that are
// defined implicitly: instead of an explicit adjacency structure, the caller
// supplies a neighbor function that lazily yields (neighbor, weight) pairs for
// any node. Graphs may be finite or unbounded (e.g. every cell of an infinite
// grid); only the explored frontier is ever materialized.
//
// 🚀 What is implath?
//
//	A synchronous, in-process algorithm library over caller-supplied graphs
//	of arbitrary comparable node types:
//		• search/   — generalized Dijkstra/A* with multi-predecessor paths,
//		              optional heuristic, revisit mode and early stop
//		• reduce/   — topology-preserving reduction of degree-2 chains
//		• flow/     — max-flow / min-cut via Edmonds–Karp
//		• clique/   — lazy maximal-clique enumeration (Bron–Kerbosch)
//		• grid/     — boards as sparse rune maps, move vectors, facing glyphs
//		• boundary/ — oriented boundary-edge traversal over grid regions
//		• interval/ — disjoint open-closed interval set arithmetic
//
// ✨ Why choose implath?
//
//   - Implicit first – a board, an adjacency map and a residual network all
//     look the same behind core.NeighborFunc
//   - Generic – any comparable type is a node; no string-ID ceremony
//   - Pure Go – no cgo, no hidden deps
//   - Ephemeral – each call owns its state; nothing is cached across calls
//
// Under the hood, everything is organized around one contract:
//
//	core/ — Edge[N], NeighborFunc[N] and Set[N], the currency every other
//	        package trades in
//
// Quick ASCII example:
//
//	    S.....          a 5×6 board parsed by grid.Parse becomes a
//	    .##..#          NeighborFunc over grid.Point, and search.Run
//	    .#....          walks it without ever building the full graph
//	    .#.###
//	    .#...E
//
// Dive into the per-package doc.go files for contracts, complexity notes and
// error taxonomies.
package implath
