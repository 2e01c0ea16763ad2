package search_test

import (
	"testing"

	"github.com/katalvlaran/implath/core"
	"github.com/katalvlaran/implath/grid"
	"github.com/katalvlaran/implath/search"
)

// benchNbs is an unbounded open grid clipped by a callback in the benchmark,
// exercising the implicit-graph path of the engine.
var benchNbs = grid.Neighbors()

// BenchmarkRun_BoundedGrid measures a bounded walk over an implicit grid:
// the callback stops once the frontier leaves a 100×100 window.
func BenchmarkRun_BoundedGrid(b *testing.B) {
	inWindow := func(p grid.Point) bool {
		return p.R >= 0 && p.R < 100 && p.C >= 0 && p.C < 100
	}
	clipped := func(p grid.Point) ([]core.Edge[grid.Point], error) {
		edges, err := benchNbs(p)
		if err != nil {
			return nil, err
		}
		kept := edges[:0]
		for _, e := range edges {
			if inWindow(e.To) {
				kept = append(kept, e)
			}
		}

		return kept, nil
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(grid.Point{}, clipped); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Heuristic measures the same walk under A* ordering toward the
// far corner.
func BenchmarkRun_Heuristic(b *testing.B) {
	goal := grid.Point{R: 99, C: 99}
	manhattan := func(p grid.Point) float64 {
		dr, dc := goal.R-p.R, goal.C-p.C
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}

		return float64(dr + dc)
	}
	inWindow := func(p grid.Point) bool {
		return p.R >= 0 && p.R < 100 && p.C >= 0 && p.C < 100
	}
	clipped := func(p grid.Point) ([]core.Edge[grid.Point], error) {
		edges, err := benchNbs(p)
		if err != nil {
			return nil, err
		}
		kept := edges[:0]
		for _, e := range edges {
			if inWindow(e.To) {
				kept = append(kept, e)
			}
		}

		return kept, nil
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		res, err := search.Run(grid.Point{}, clipped,
			search.WithHeuristic(manhattan),
			search.WithCallback(func(p grid.Point, _ float64) bool { return p == goal }),
		)
		if err != nil {
			b.Fatal(err)
		}
		if res.Dist[goal] != 198 {
			b.Fatalf("distance = %v; want 198", res.Dist[goal])
		}
	}
}
