package boundary_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/implath/boundary"
	"github.com/katalvlaran/implath/grid"
	"github.com/katalvlaran/implath/search"
)

// regionOf floods the board from a start cell across the allowed values and
// returns the resulting membership predicate.
func regionOf(t *testing.T, b grid.Board, start grid.Point, allowed string) func(grid.Point) bool {
	t.Helper()
	res, err := search.Run(start, grid.Neighbors(grid.WithBoard(b), grid.WithAllowed(allowed)))
	require.NoError(t, err)

	return func(p grid.Point) bool {
		_, in := res.Dist[p]

		return in
	}
}

// TestTrace_TwoHoles walks the boundary of an A-region enclosing two B
// blocks that touch at a diagonal pinch. The loop closes after visiting
// every boundary edge once, and the visited inside/outside cells match the
// reference rendering exactly.
func TestTrace_TwoHoles(t *testing.T) {
	b := grid.ParseText(`
		AAAAAA
		AAABBA
		AAABBA
		ABBAAA
		ABBAAA
		AAAAAA
	`)
	inRegion := regionOf(t, b, grid.Point{}, "A")
	nbs := boundary.Neighbors(inRegion)

	seed := boundary.Pair{In: grid.Point{R: 3, C: 0}, Out: grid.Point{R: 3, C: 1}}
	loop, err := boundary.Trace(seed, nbs)
	require.NoError(t, err)

	ins := make(map[rune][]grid.Point)
	for _, p := range loop {
		ins['i'] = append(ins['i'], p.In)
		ins['o'] = append(ins['o'], p.Out)
	}

	want := grid.ParseText(`
		AAAiiA
		AAiooi
		Aiiooi
		iooiiA
		iooiAA
		AiiAAA
	`)
	assert.Equal(t, want.String(), b.Render(ins))
}

// TestTrace_Rectangle closes the perimeter of a 2×2 region in exactly eight
// boundary edges, identically in both thin-corner modes.
func TestTrace_Rectangle(t *testing.T) {
	region := map[grid.Point]bool{
		{R: 0, C: 0}: true, {R: 0, C: 1}: true,
		{R: 1, C: 0}: true, {R: 1, C: 1}: true,
	}
	inRegion := func(p grid.Point) bool { return region[p] }
	seed := boundary.Pair{In: grid.Point{R: 0, C: 0}, Out: grid.Point{R: 0, C: -1}}

	for name, nbs := range map[string]func() ([]boundary.Pair, error){
		"strict": func() ([]boundary.Pair, error) {
			return boundary.Trace(seed, boundary.Neighbors(inRegion))
		},
		"thin": func() ([]boundary.Pair, error) {
			return boundary.Trace(seed, boundary.Neighbors(inRegion, boundary.WithThinCorners()))
		},
	} {
		loop, err := nbs()
		require.NoError(t, err, name)
		assert.Len(t, loop, 8, name)
		assert.Equal(t, seed, loop[0], name)
	}
}

// TestNeighbors_ThinCorners: two cells touching only diagonally. The strict
// walk stays on one cell's boundary; with thin corners enabled the pinch is
// crossable and the other cell's boundary becomes reachable.
func TestNeighbors_ThinCorners(t *testing.T) {
	region := map[grid.Point]bool{
		{R: 0, C: 0}: true,
		{R: 1, C: 1}: true,
	}
	inRegion := func(p grid.Point) bool { return region[p] }
	seed := boundary.Pair{In: grid.Point{R: 0, C: 0}, Out: grid.Point{R: 0, C: 1}}
	far := boundary.Pair{In: grid.Point{R: 1, C: 1}, Out: grid.Point{R: 1, C: 2}}

	strict, err := search.Run(seed, boundary.Neighbors(inRegion))
	require.NoError(t, err)
	_, reached := strict.Dist[far]
	assert.False(t, reached, "strict mode must not cross the pinch")

	// The strict loop is just the four edges around the seed cell.
	loop, err := boundary.Trace(seed, boundary.Neighbors(inRegion))
	require.NoError(t, err)
	assert.Len(t, loop, 4)

	thin, err := search.Run(seed, boundary.Neighbors(inRegion, boundary.WithThinCorners()))
	require.NoError(t, err)
	_, reached = thin.Dist[far]
	assert.True(t, reached, "thin-corner mode must cross the pinch")
}

// TestNeighbors_NoPredicate admits every geometric candidate when no region
// is supplied.
func TestNeighbors_NoPredicate(t *testing.T) {
	nbs := boundary.Neighbors(nil)
	edges, err := nbs(boundary.Pair{In: grid.Point{}, Out: grid.Point{C: 1}})
	require.NoError(t, err)
	// two extensions + two rotations per anchor
	assert.Len(t, edges, 6)
}

// TestNeighbors_BadSeed rejects a pair that does not straddle the boundary.
func TestNeighbors_BadSeed(t *testing.T) {
	inRegion := func(grid.Point) bool { return true }
	nbs := boundary.Neighbors(inRegion)
	_, err := nbs(boundary.Pair{In: grid.Point{}, Out: grid.Point{C: 1}})
	if !errors.Is(err, boundary.ErrNotBoundary) {
		t.Errorf("want ErrNotBoundary, got %v", err)
	}
}
