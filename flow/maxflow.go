package flow

import (
	"fmt"

	"github.com/katalvlaran/implath/core"
	"github.com/katalvlaran/implath/search"
)

// MaxFlow computes the maximum flow from source to sink over the finite
// capacitated graph spanned by nodes under nbs, whose edges carry capacities
// as weights. See the package documentation for the algorithm and the Result
// fields.
func MaxFlow[N comparable](
	nodes []N,
	nbs core.NeighborFunc[N],
	source, sink N,
	opts ...Option,
) (*Result[N], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if source == sink {
		return nil, ErrSameSourceSink
	}

	// 1) Cache capacities for fast residual lookup, aggregating parallel
	//    edges, and record each node's residual neighborhood: every arc and
	//    its reverse, since pushing flow opens reverse residual capacity.
	caps := make(map[Arc[N]]float64)
	next := make(map[N][]N, len(nodes))
	link := func(u, v N) {
		for _, w := range next[u] {
			if w == v {
				return
			}
		}
		next[u] = append(next[u], v)
	}
	for _, u := range nodes {
		edges, err := nbs(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if e.Weight <= 0 {
				return nil, fmt.Errorf("%w: %v→%v capacity=%v", ErrNonPositiveCapacity, u, e.To, e.Weight)
			}
			caps[Arc[N]{From: u, To: e.To}] += e.Weight
			link(u, e.To)
			link(e.To, u)
		}
	}

	// 2) The signed flow map, zero-defaulting, owned by this invocation.
	flowBy := make(map[Arc[N]]float64)

	// residual exposes, at unit weight, every arc with strictly positive
	// residual capacity. A negative residual means flow somewhere exceeded
	// capacity — fatal.
	residual := func(u N) ([]core.Edge[N], error) {
		out := make([]core.Edge[N], 0, len(next[u]))
		for _, v := range next[u] {
			a := Arc[N]{From: u, To: v}
			rc := caps[a] - flowBy[a]
			if rc < 0 {
				return nil, fmt.Errorf("%w: arc %v→%v residual=%v", ErrCapacityExceeded, u, v, rc)
			}
			if rc > 0 {
				out = append(out, core.Edge[N]{To: v, Weight: 1})
			}
		}

		return out, nil
	}

	// 3) Repeatedly search the residual graph breadth-first (unit weights ⇒
	//    fewest-hop augmenting paths) until the sink is unreachable.
	for {
		res, err := search.Run(source, residual, search.WithContext[N](o.Ctx))
		if err != nil {
			return nil, err
		}

		if _, reached := res.Dist[sink]; !reached {
			// 4) No augmenting path remains. The reachable set is the source
			//    side of a minimum cut; the accumulated net outflow of the
			//    source is the maximum flow value.
			var value float64
			for _, v := range next[source] {
				value += flowBy[Arc[N]{From: source, To: v}]
			}
			srcSide := make(core.Set[N], len(res.Dist))
			for n := range res.Dist {
				srcSide.Add(n)
			}
			sinkSide := make(core.Set[N])
			for _, n := range nodes {
				if !srcSide.Has(n) {
					sinkSide.Add(n)
				}
			}

			return &Result[N]{
				Value:      value,
				Flow:       flowBy,
				SourceSide: srcSide,
				SinkSide:   sinkSide,
			}, nil
		}

		// 5) Recover the fewest-hop augmenting path and its bottleneck
		//    residual capacity.
		path, err := res.PathTo(sink)
		if err != nil {
			return nil, err
		}
		bottle := 0.0
		for i := 0; i+1 < len(path); i++ {
			a := Arc[N]{From: path[i], To: path[i+1]}
			if rc := caps[a] - flowBy[a]; i == 0 || rc < bottle {
				bottle = rc
			}
		}

		// 6) Push the bottleneck along the path, keeping the flow map
		//    antisymmetric.
		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			flowBy[Arc[N]{From: u, To: v}] += bottle
			flowBy[Arc[N]{From: v, To: u}] -= bottle
		}
	}
}
