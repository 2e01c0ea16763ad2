package clique

import (
	"iter"
	"slices"

	"github.com/katalvlaran/implath/core"
)

// Option configures Enumerate via functional arguments.
type Option func(*Options)

// Options holds the enumeration parameters.
type Options struct {
	// Maximal restricts emission to inclusion-maximal cliques.
	Maximal bool
}

// DefaultOptions returns Options emitting every visited clique.
func DefaultOptions() Options {
	return Options{Maximal: false}
}

// MaximalOnly restricts emission to inclusion-maximal cliques.
func MaximalOnly() Option {
	return func(o *Options) {
		o.Maximal = true
	}
}

// Enumerate lazily yields cliques of the graph described by adj, a symmetric
// node → neighbor-set mapping. The sequence is finite for finite graphs and
// single-use; call Enumerate again for a fresh traversal. Clique node order
// follows discovery order and carries no meaning.
func Enumerate[N comparable](adj map[N]core.Set[N], opts ...Option) iter.Seq[[]N] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func([]N) bool) {
		cand := make([]N, 0, len(adj))
		for n := range adj {
			cand = append(cand, n)
		}
		expand(nil, cand, nil, adj, o, yield)
	}
}

// expand is one Bron–Kerbosch recursion step. It reports false when the
// consumer stopped the sequence, unwinding the whole traversal.
func expand[N comparable](
	clique, cand, excl []N,
	adj map[N]core.Set[N],
	o Options,
	yield func([]N) bool,
) bool {
	if o.Maximal {
		// Nothing can extend the clique and nothing already covered it:
		// the clique is maximal.
		if len(cand) == 0 && len(excl) == 0 {
			if !yield(slices.Clone(clique)) {
				return false
			}
		}
	} else if !yield(slices.Clone(clique)) {
		return false
	}

	// Iterate a snapshot: cand mutates as nodes move to excl.
	for _, v := range slices.Clone(cand) {
		nbs := adj[v]
		if !expand(
			append(slices.Clone(clique), v),
			intersect(cand, nbs),
			intersect(excl, nbs),
			adj, o, yield,
		) {
			return false
		}

		// v is fully explored in this branch: candidates → excluded.
		if i := slices.Index(cand, v); i >= 0 {
			cand = slices.Delete(cand, i, i+1)
		}
		excl = append(excl, v)
	}

	return true
}

// intersect filters ns down to members of keep, preserving order.
func intersect[N comparable](ns []N, keep core.Set[N]) []N {
	out := make([]N, 0, len(ns))
	for _, n := range ns {
		if keep.Has(n) {
			out = append(out, n)
		}
	}

	return out
}
