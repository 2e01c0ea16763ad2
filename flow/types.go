package flow

import (
	"context"
	"errors"

	"github.com/katalvlaran/implath/core"
)

// Sentinel errors for max-flow computation.
var (
	// ErrSameSourceSink is returned when source and sink are the same node.
	ErrSameSourceSink = errors.New("flow: source and sink must differ")

	// ErrNonPositiveCapacity is returned when the neighbor function yields an
	// edge with capacity ≤ 0.
	ErrNonPositiveCapacity = errors.New("flow: edge capacity must be strictly positive")

	// ErrCapacityExceeded indicates flow above an arc's capacity. This is an
	// internal-consistency failure: it cannot occur under correct input and
	// is always surfaced, never corrected.
	ErrCapacityExceeded = errors.New("flow: flow exceeds edge capacity")
)

// Arc is a directed node pair keying the flow map.
type Arc[N comparable] struct {
	From, To N
}

// Result holds the outcome of one MaxFlow invocation:
//   - Value: the maximum flow value (equal to the minimum cut weight).
//   - Flow: signed flow per arc; Flow[u→v] == −Flow[v→u], and no arc's flow
//     exceeds its capacity.
//   - SourceSide, SinkSide: the minimum-cut node partition; SourceSide is
//     the set reachable from the source in the final residual graph.
type Result[N comparable] struct {
	Value      float64
	Flow       map[Arc[N]]float64
	SourceSide core.Set[N]
	SinkSide   core.Set[N]
}

// Option configures MaxFlow via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a MaxFlow run.
type Options struct {
	// Ctx allows cancellation; checked by the underlying search rounds.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
