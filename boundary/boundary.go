package boundary

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/implath/core"
	"github.com/katalvlaran/implath/grid"
)

// Sentinel errors for boundary tracing.
var (
	// ErrNotBoundary is returned when an expanded pair does not straddle the
	// region boundary: both points are inside or both outside. This is a
	// usage error, not a recoverable state.
	ErrNotBoundary = errors.New("boundary: pair does not straddle the region boundary")

	// ErrOpenBoundary is returned by Trace when the walk cannot continue
	// uniquely: the boundary is not a simple closed loop from the seed.
	ErrOpenBoundary = errors.New("boundary: boundary does not close into a simple loop")
)

// Pair is one oriented boundary edge: two adjacent grid points with In on
// one side of the region and Out on the other. The boundary normal is
// Out − In.
type Pair struct {
	In, Out grid.Point
}

// Option configures the Neighbors factory.
type Option func(*Options)

// Options holds the boundary-walk parameters.
type Options struct {
	// ThinCorners permits walking through single-cell pinch points by
	// skipping the diagonal-midpoint admission check on rotations.
	ThinCorners bool
}

// DefaultOptions returns Options with the midpoint check enforced.
func DefaultOptions() Options {
	return Options{ThinCorners: false}
}

// WithThinCorners skips the diagonal-midpoint check, admitting rotations
// across single-cell pinch points unconditionally.
func WithThinCorners() Option {
	return func(o *Options) {
		o.ThinCorners = true
	}
}

// Neighbors constructs a unit-weight neighbor function over boundary pairs
// of the region described by inRegion. A nil predicate admits every
// geometrically valid candidate, for generic boundary walks without region
// semantics. The returned function fails with ErrNotBoundary when handed a
// pair that does not straddle the boundary.
func Neighbors(inRegion func(grid.Point) bool, opts ...Option) core.NeighborFunc[Pair] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return func(b Pair) ([]core.Edge[Pair], error) {
		var in1, in2 bool
		if inRegion != nil {
			in1, in2 = inRegion(b.In), inRegion(b.Out)
			if in1 == in2 {
				return nil, fmt.Errorf("%w: %v", ErrNotBoundary, b)
			}
		}

		// matches reports whether a candidate pair carries the same
		// membership pattern as b, i.e. still straddles the boundary the
		// same way round.
		matches := func(p Pair) bool {
			if inRegion == nil {
				return true
			}

			return inRegion(p.In) == in1 && inRegion(p.Out) == in2
		}

		edges := make([]core.Edge[Pair], 0, 6)
		emit := func(p Pair) {
			edges = append(edges, core.Edge[Pair]{To: p, Weight: 1})
		}

		// 1) Extension: slide the whole pair perpendicular to its normal,
		//    both ways.
		d := b.Out.Sub(b.In)
		for _, t := range []grid.Point{grid.TurnRight(d), grid.TurnLeft(d)} {
			p := Pair{In: b.In.Add(t), Out: b.Out.Add(t)}
			if matches(p) {
				emit(p)
			}
		}

		// 2) Rotation about the In anchor: In stays, Out swings 90° either
		//    way. When In lies outside the region the diagonal midpoint must
		//    also straddle the boundary, or the walk would cut across a
		//    thin corner; ThinCorners lifts that restriction.
		for _, d2 := range []grid.Point{grid.TurnRight(d), grid.TurnLeft(d)} {
			cand := Pair{In: b.In, Out: b.In.Add(d2)}
			mid := Pair{In: b.In, Out: b.In.Add(d2).Add(d)}
			if !matches(cand) {
				continue
			}
			if inRegion != nil && !in1 && !o.ThinCorners && !matches(mid) {
				continue
			}
			emit(cand)
		}

		// 3) Rotation about the Out anchor: the mirror case, with the
		//    reversed normal and the midpoint check keyed to Out's side.
		nd := b.In.Sub(b.Out)
		for _, d2 := range []grid.Point{grid.TurnRight(nd), grid.TurnLeft(nd)} {
			cand := Pair{In: b.Out.Add(d2), Out: b.Out}
			mid := Pair{In: b.Out.Add(d2).Add(nd), Out: b.Out}
			if !matches(cand) {
				continue
			}
			if inRegion != nil && !in2 && !o.ThinCorners && !matches(mid) {
				continue
			}
			emit(cand)
		}

		return edges, nil
	}
}
