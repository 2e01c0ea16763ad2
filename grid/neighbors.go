package grid

import "github.com/katalvlaran/implath/core"

// Option configures the Neighbors factory via functional arguments.
type Option func(*Options)

// Options holds the parameters of a board neighbor function.
type Options struct {
	// Board restricts moves to coordinates present on the board. A nil board
	// leaves the grid unbounded; the caller must then bound any search.
	Board Board

	// Allowed restricts target cells to the given values. Only consulted
	// when a board is set.
	Allowed map[rune]bool

	// Cardinal enables the four axis-aligned unit moves (default true).
	Cardinal bool

	// Diagonal enables the four diagonal unit moves (default false).
	Diagonal bool
}

// DefaultOptions returns Options allowing cardinal moves on an unbounded
// grid.
func DefaultOptions() Options {
	return Options{
		Board:    nil,
		Allowed:  nil,
		Cardinal: true,
		Diagonal: false,
	}
}

// WithBoard restricts moves to coordinates present on b.
func WithBoard(b Board) Option {
	return func(o *Options) {
		if b != nil {
			o.Board = b
		}
	}
}

// WithAllowed restricts target cells to the runes of values. Effective only
// together with WithBoard.
func WithAllowed(values string) Option {
	return func(o *Options) {
		o.Allowed = make(map[rune]bool, len(values))
		for _, v := range values {
			o.Allowed[v] = true
		}
	}
}

// WithDiagonal additionally enables the four diagonal unit moves.
func WithDiagonal() Option {
	return func(o *Options) {
		o.Diagonal = true
	}
}

// WithoutCardinal disables the four axis-aligned unit moves, leaving only
// whatever WithDiagonal enabled.
func WithoutCardinal() Option {
	return func(o *Options) {
		o.Cardinal = false
	}
}

// Neighbors constructs a unit-weight neighbor function over board points,
// ready to be handed to search.Run. A target coordinate qualifies when it
// exists on the board (if one is set) and carries an allowed value (if an
// allowed set is given).
func Neighbors(opts ...Option) core.NeighborFunc[Point] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	moves := make([]Point, 0, len(Cardinal)+len(Diagonal))
	if o.Cardinal {
		moves = append(moves, Cardinal...)
	}
	if o.Diagonal {
		moves = append(moves, Diagonal...)
	}

	return func(p Point) ([]core.Edge[Point], error) {
		edges := make([]core.Edge[Point], 0, len(moves))
		for _, m := range moves {
			q := p.Add(m)
			if o.Board != nil {
				v, on := o.Board[q]
				if !on {
					continue
				}
				if o.Allowed != nil && !o.Allowed[v] {
					continue
				}
			}
			edges = append(edges, core.Edge[Point]{To: q, Weight: 1})
		}

		return edges, nil
	}
}
