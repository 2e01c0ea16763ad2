package search_test

import (
	"fmt"

	"github.com/katalvlaran/implath/grid"
	"github.com/katalvlaran/implath/search"
)

// ExampleRun walks a small board around a wall and prints the shortest
// distance and the hop count of one optimal path.
func ExampleRun() {
	b := grid.ParseText(`
		S.#.
		..#.
		....
	`)

	start := grid.Point{R: 0, C: 0}
	goal := grid.Point{R: 0, C: 3}

	nbs := grid.Neighbors(grid.WithBoard(b), grid.WithAllowed(".S"))
	res, err := search.Run(start, nbs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("distance:", res.Dist[goal])
	path, _ := res.PathTo(goal)
	fmt.Println("hops:", len(path)-1)
	// Output:
	// distance: 7
	// hops: 7
}
