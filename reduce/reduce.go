package reduce

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/implath/core"
)

// Sentinel errors for graph reduction.
var (
	// ErrAsymmetric indicates the materialized adjacency violated undirected
	// symmetry. This is an internal-consistency failure of the input graph,
	// never silently corrected.
	ErrAsymmetric = errors.New("reduce: adjacency is not symmetric")

	// ErrNegativeWeight indicates a negative edge weight in the input graph.
	ErrNegativeWeight = errors.New("reduce: negative edge weight")
)

// Reduced is the outcome of one reduction: the surviving nodes (always a
// superset of the kept set) and a neighbor function over them.
type Reduced[N comparable] struct {
	Nodes     []N
	Neighbors core.NeighborFunc[N]
}

// half is one stored half-edge of the materialized adjacency.
type half[N comparable] struct {
	to N
	w  float64
}

// Reduce folds away every non-kept degree-2 node of the finite graph spanned
// by nodes under nbs, preserving shortest-path distances between all kept
// nodes exactly. See the package documentation for the invariants checked.
func Reduce[N comparable](nodes []N, keep core.Set[N], nbs core.NeighborFunc[N]) (*Reduced[N], error) {
	// 1) Materialize the full adjacency map, validating weights.
	adj := make(map[N][]half[N], len(nodes))
	for _, u := range nodes {
		edges, err := nbs(u)
		if err != nil {
			return nil, err
		}
		hs := make([]half[N], 0, len(edges))
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, u, e.To, e.Weight)
			}
			hs = append(hs, half[N]{to: e.To, w: e.Weight})
		}
		adj[u] = hs
	}

	// 2) Verify undirected multiset symmetry upfront.
	for u, hs := range adj {
		for _, h := range hs {
			if countHalves(adj[h.to], u, h.w) != countHalves(hs, h.to, h.w) {
				return nil, fmt.Errorf("%w: edge %v↔%v weight=%v", ErrAsymmetric, u, h.to, h.w)
			}
		}
	}

	// 3) Fold degree-2 non-kept nodes until a fixed point. Iterating the
	//    original node order keeps the reduction deterministic.
	alive := make(core.Set[N], len(nodes))
	for _, u := range nodes {
		alive.Add(u)
	}
	for changed := true; changed; {
		changed = false
		for _, u := range nodes {
			if !alive.Has(u) || keep.Has(u) {
				continue
			}
			hs := adj[u]
			if len(hs) != 2 {
				continue
			}
			a, b := hs[0], hs[1]
			// Only chains fold: both a self-loop and a two-edge cycle to a
			// single neighbor would collapse into nonsense.
			if a.to == b.to || a.to == u || b.to == u {
				continue
			}

			// Detach u from both sides; a missing reverse half-edge means
			// symmetry was broken since materialization.
			if err := detach(adj, a.to, u, a.w); err != nil {
				return nil, err
			}
			if err := detach(adj, b.to, u, b.w); err != nil {
				return nil, err
			}
			delete(adj, u)
			delete(alive, u)

			// Join the two neighbors directly. An existing edge between them
			// stays; the fold appends a parallel candidate.
			sum := a.w + b.w
			adj[a.to] = append(adj[a.to], half[N]{to: b.to, w: sum})
			adj[b.to] = append(adj[b.to], half[N]{to: a.to, w: sum})
			changed = true
		}
	}

	// 4) Package the survivors with a neighbor function over the folded
	//    adjacency.
	out := make([]N, 0, len(alive))
	for _, u := range nodes {
		if alive.Has(u) {
			out = append(out, u)
		}
	}

	return &Reduced[N]{
		Nodes: out,
		Neighbors: func(n N) ([]core.Edge[N], error) {
			hs := adj[n]
			edges := make([]core.Edge[N], len(hs))
			for i, h := range hs {
				edges[i] = core.Edge[N]{To: h.to, Weight: h.w}
			}

			return edges, nil
		},
	}, nil
}

// countHalves counts half-edges to a given neighbor with a given weight.
func countHalves[N comparable](hs []half[N], to N, w float64) int {
	n := 0
	for _, h := range hs {
		if h.to == to && h.w == w {
			n++
		}
	}

	return n
}

// detach removes one half-edge from→to with weight w, failing with
// ErrAsymmetric when no such half-edge exists.
func detach[N comparable](adj map[N][]half[N], from, to N, w float64) error {
	hs := adj[from]
	for i, h := range hs {
		if h.to == to && h.w == w {
			adj[from] = append(hs[:i], hs[i+1:]...)

			return nil
		}
	}

	return fmt.Errorf("%w: missing reverse edge %v→%v weight=%v", ErrAsymmetric, from, to, w)
}
