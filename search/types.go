// Package search defines tunable options, sentinel errors and the result
// type for the generalized shortest-path engine.
package search

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/implath/core"
)

// Sentinel errors for search execution.
var (
	// ErrNonPositiveWeight is returned when a neighbor function yields an
	// edge with weight ≤ 0. Strictly positive weights are required both for
	// correctness and to guarantee termination on finite reachable sets.
	ErrNonPositiveWeight = errors.New("search: edge weight must be strictly positive")

	// ErrNilNeighborFunc is returned if a nil neighbor function is passed.
	ErrNilNeighborFunc = errors.New("search: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo and Result.Paths when the
	// requested destination was never reached. Callers may treat this as a
	// recoverable not-found condition.
	ErrNoPath = errors.New("search: no path to destination")
)

// Option configures Run behavior via functional arguments. Invalid options
// are recorded internally and surfaced as ErrOptionViolation when Run is
// invoked.
type Option[N comparable] func(*Options[N])

// Options holds parameters and callbacks to customize a single Run.
type Options[N comparable] struct {
	// Ctx allows cancellation and deadlines; checked once per pop.
	Ctx context.Context

	// Callback is invoked each time a node's distance is finalized (when it
	// is popped from the frontier). Returning true stops the search; the
	// distances of all previously finalized nodes remain valid.
	Callback func(n N, dist float64) bool

	// Heuristic supplies a lower-bound estimate of the remaining distance.
	// Frontier priority becomes dist + Heuristic(n). See the package
	// documentation for admissibility and monotonicity preconditions.
	Heuristic func(n N) float64

	// Revisit disables finalization: nodes may be expanded multiple times.
	// Required for correctness under non-monotonic heuristics; trades
	// performance for that correctness.
	Revisit bool

	// Seen pre-seeds the finalized set. Nodes in Seen are treated as already
	// expanded: they are never popped, relaxed or recorded.
	Seen core.Set[N]

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context, no
// callback, no heuristic, no revisiting, empty finalized set.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:       context.Background(),
		Callback:  nil,
		Heuristic: nil,
		Revisit:   false,
		Seen:      nil,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCallback registers the early-stop callback, invoked with every node and
// its finalized distance. Returning true terminates the search immediately.
func WithCallback[N comparable](fn func(n N, dist float64) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.Callback = fn
		}
	}
}

// WithHeuristic enables A* ordering by dist + fn(n). The heuristic must be
// admissible; without WithRevisit it must also be monotonic.
func WithHeuristic[N comparable](fn func(n N) float64) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithRevisit allows nodes to be expanded multiple times, restoring
// correctness under non-monotonic heuristics.
func WithRevisit[N comparable]() Option[N] {
	return func(o *Options[N]) {
		o.Revisit = true
	}
}

// WithSeen pre-seeds the finalized set. The engine will never expand a node
// in this set. Combining WithSeen with WithRevisit is contradictory (revisit
// means nothing is ever final) and is rejected at Run.
func WithSeen[N comparable](seen core.Set[N]) Option[N] {
	return func(o *Options[N]) {
		if seen != nil {
			o.Seen = seen
		}
	}
}

// Result holds the outcome of one Run:
//   - Dist: every reached node mapped to its shortest-path distance from the
//     start. Final for a node exactly when it was popped in non-revisit mode.
//   - Prev: every reached node except the start mapped to the ordered set of
//     immediate predecessors on some optimal path. Multiple entries mean
//     multiple equal-cost optimal paths pass through the node.
type Result[N comparable] struct {
	Start N
	Dist  map[N]float64
	Prev  map[N][]N
}

// PathTo reconstructs one optimal path from the start to dest, following the
// first recorded predecessor at every hop. Returns ErrNoPath if dest was not
// reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path, then flip
	path := []N{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Prev[cur][0]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// Paths enumerates every optimal path from the start to dest by walking the
// predecessor DAG. Paths are finite and acyclic because predecessor edges
// strictly decrease distance. Returns ErrNoPath if dest was not reached.
func (r *Result[N]) Paths(dest N) ([][]N, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	var out [][]N
	var walk func(cur N, suffix []N)
	walk = func(cur N, suffix []N) {
		suffix = append([]N{cur}, suffix...)
		if cur == r.Start {
			out = append(out, slices.Clone(suffix))

			return
		}
		for _, p := range r.Prev[cur] {
			walk(p, suffix)
		}
	}
	walk(dest, nil)

	return out, nil
}
