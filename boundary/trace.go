package boundary

import (
	"fmt"

	"github.com/katalvlaran/implath/core"
)

// Trace walks the boundary iteratively from seed until the loop closes,
// returning the visited pairs in order (seed first, not repeated at the
// end). At every step after the first there must be exactly one neighbor
// other than the pair just left; a dead end or an ambiguous branch yields
// ErrOpenBoundary. For a simply-connected region the loop visits every
// boundary edge exactly once.
func Trace(seed Pair, nbs core.NeighborFunc[Pair]) ([]Pair, error) {
	loop := make([]Pair, 0, 8)
	cur, prev := seed, seed
	hasPrev := false

	for {
		loop = append(loop, cur)

		edges, err := nbs(cur)
		if err != nil {
			return nil, err
		}
		cands := make([]Pair, 0, 2)
		for _, e := range edges {
			if hasPrev && e.To == prev {
				continue
			}
			cands = append(cands, e.To)
		}

		switch {
		case len(cands) == 0:
			return nil, fmt.Errorf("%w: dead end at %v", ErrOpenBoundary, cur)
		case hasPrev && len(cands) > 1:
			return nil, fmt.Errorf("%w: ambiguous branch at %v", ErrOpenBoundary, cur)
		}

		// From the seed both directions are open; either closes the same
		// loop, so the first candidate is taken.
		prev, cur, hasPrev = cur, cands[0], true
		if cur == seed {
			return loop, nil
		}
	}
}
