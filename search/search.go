package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/implath/core"
)

// Run computes shortest-path distances from start over the implicit graph
// described by nbs, applying any number of functional Options.
//
// Returns:
//
//   - Result.Dist: map from every reached node to its minimal distance.
//   - Result.Prev: map from every reached node except start to the ordered
//     set of immediate predecessors on some optimal path.
//   - err: ErrNilNeighborFunc or ErrOptionViolation for invalid input,
//     ErrNonPositiveWeight for a contract-violating edge, a context error on
//     cancellation, or any error returned by nbs itself.
//
// Relaxation rule: a strictly smaller candidate distance replaces the
// predecessor set with just the new predecessor; an exactly equal candidate
// appends the new predecessor as an alternative; either case re-enqueues the
// neighbor at priority dist + heuristic.
//
// Termination on infinite implicit graphs is the caller's responsibility:
// bound the walk with WithCallback, a bounded board, or a Seen exclusion set.
func Run[N comparable](start N, nbs core.NeighborFunc[N], opts ...Option[N]) (*Result[N], error) {
	// 1) Build and validate options.
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if nbs == nil {
		return nil, ErrNilNeighborFunc
	}
	if o.Revisit && o.Seen != nil {
		return nil, fmt.Errorf("%w: WithSeen is meaningless under WithRevisit", ErrOptionViolation)
	}

	// 2) Prepare per-run state. All structures are ephemeral; nothing is
	//    shared across calls.
	//    The pre-seeded set is cloned: each invocation owns its structures.
	r := &runner[N]{
		nbs:  nbs,
		opts: o,
		res: &Result[N]{
			Start: start,
			Dist:  map[N]float64{start: 0},
			Prev:  make(map[N][]N),
		},
	}
	if o.Seen != nil {
		r.seen = o.Seen.Clone()
	} else {
		r.seen = make(core.Set[N])
	}

	// 3) Seed the frontier with the start node and run the main loop.
	heap.Init(&r.pq)
	r.push(start, 0)

	return r.res, r.loop()
}

// Unit adapts a weightless adjacency function into a unit-weight
// NeighborFunc, making Run perform plain breadth-first reachability.
func Unit[N comparable](adj func(n N) ([]N, error)) core.NeighborFunc[N] {
	return func(n N) ([]core.Edge[N], error) {
		ns, err := adj(n)
		if err != nil {
			return nil, err
		}
		edges := make([]core.Edge[N], len(ns))
		for i, m := range ns {
			edges[i] = core.Edge[N]{To: m, Weight: 1}
		}

		return edges, nil
	}
}

// runner holds the mutable state for a single Run execution.
type runner[N comparable] struct {
	nbs  core.NeighborFunc[N]
	opts Options[N]
	seen core.Set[N] // finalized nodes; pre-seeded entries are never expanded
	pq   frontier[N]
	seq  int // insertion counter for deterministic tie-breaking
	res  *Result[N]
}

// loop processes the frontier until it drains, the callback stops the
// search, the context is cancelled, or a contract violation surfaces.
func (r *runner[N]) loop() error {
	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		it := heap.Pop(&r.pq).(*entry[N])

		// Stale-entry checks. A finalized node (non-revisit mode, or a
		// pre-seeded exclusion) is skipped outright; under revisit, an entry
		// whose recorded distance has since improved is equally stale.
		if r.seen.Has(it.node) {
			continue
		}
		if it.dist > r.res.Dist[it.node] {
			continue
		}

		// Unless revisiting, the node is finalized before expansion.
		if !r.opts.Revisit {
			r.seen.Add(it.node)
		}

		if r.opts.Callback != nil && r.opts.Callback(it.node, it.dist) {
			break
		}

		if err := r.relax(it.node, it.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax expands node n (finalized at distance d) and attempts to improve or
// extend the optimal-path records of each neighbor.
func (r *runner[N]) relax(n N, d float64) error {
	edges, err := r.nbs(n)
	if err != nil {
		return err
	}

	var alt float64
	for _, e := range edges {
		if e.Weight <= 0 {
			return fmt.Errorf("%w: %v→%v weight=%v", ErrNonPositiveWeight, n, e.To, e.Weight)
		}
		if r.seen.Has(e.To) {
			continue
		}

		alt = d + e.Weight
		best, known := r.res.Dist[e.To]
		switch {
		case !known || alt < best:
			// Strictly better: this predecessor replaces all others.
			r.res.Dist[e.To] = alt
			r.res.Prev[e.To] = []N{n}
			r.push(e.To, alt)
		case alt == best:
			// Equal-cost alternative: append, keeping the set duplicate-free.
			if !containsNode(r.res.Prev[e.To], n) {
				r.res.Prev[e.To] = append(r.res.Prev[e.To], n)
			}
			r.push(e.To, alt)
		}
	}

	return nil
}

// push enqueues node n at distance d with priority d + heuristic(n).
func (r *runner[N]) push(n N, d float64) {
	prio := d
	if r.opts.Heuristic != nil {
		prio += r.opts.Heuristic(n)
	}
	r.seq++
	heap.Push(&r.pq, &entry[N]{node: n, dist: d, prio: prio, seq: r.seq})
}

func containsNode[N comparable](ns []N, n N) bool {
	for _, m := range ns {
		if m == n {
			return true
		}
	}

	return false
}

// entry is one frontier record: a node, the distance it was discovered at,
// and its heap priority (distance plus heuristic). seq breaks priority ties
// by discovery order so runs are deterministic.
type entry[N comparable] struct {
	node N
	dist float64
	prio float64
	seq  int
}

// frontier is a min-heap of *entry under the lazy-decrease-key strategy:
// improved discoveries push duplicates, and outdated entries are skipped
// when popped.
type frontier[N comparable] []*entry[N]

func (f frontier[N]) Len() int { return len(f) }

func (f frontier[N]) Less(i, j int) bool {
	if f[i].prio != f[j].prio {
		return f[i].prio < f[j].prio
	}

	return f[i].seq < f[j].seq
}

func (f frontier[N]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[N]) Push(x any) { *f = append(*f, x.(*entry[N])) }

func (f *frontier[N]) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]

	return it
}
