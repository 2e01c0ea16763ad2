package clique_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/implath/clique"
	"github.com/katalvlaran/implath/core"
)

// undirected builds a symmetric adjacency mapping from edge pairs, making
// sure isolated nodes still get an entry.
func undirected(nodes []int, edges [][2]int) map[int]core.Set[int] {
	adj := make(map[int]core.Set[int], len(nodes))
	for _, n := range nodes {
		adj[n] = make(core.Set[int])
	}
	for _, e := range edges {
		adj[e[0]].Add(e[1])
		adj[e[1]].Add(e[0])
	}

	return adj
}

// collect drains a clique sequence into sorted, comparable form.
func collect(seq func(func([]int) bool)) [][]int {
	var out [][]int
	seq(func(c []int) bool {
		c = slices.Clone(c)
		slices.Sort(c)
		out = append(out, c)

		return true
	})

	return out
}

// TestEnumerate_Maximal emits exactly the inclusion-maximal cliques, once
// each: a triangle, a pendant edge and an isolated node.
func TestEnumerate_Maximal(t *testing.T) {
	adj := undirected(
		[]int{1, 2, 3, 4, 5},
		[][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 4}},
	)

	got := collect(clique.Enumerate(adj, clique.MaximalOnly()))
	want := [][]int{{1, 2, 3}, {3, 4}, {5}}
	assert.ElementsMatch(t, want, got)
}

// TestEnumerate_All emits every clique of a triangle exactly once, the empty
// clique included.
func TestEnumerate_All(t *testing.T) {
	adj := undirected([]int{1, 2, 3}, [][2]int{{1, 2}, {1, 3}, {2, 3}})

	got := collect(clique.Enumerate(adj))
	want := [][]int{
		{}, {1}, {2}, {3}, {1, 2}, {1, 3}, {2, 3}, {1, 2, 3},
	}
	assert.ElementsMatch(t, want, got)
}

// TestEnumerate_NoDuplicates stresses the exclusion step on a graph with
// many overlapping maximal cliques (the 4-cycle with a chord).
func TestEnumerate_NoDuplicates(t *testing.T) {
	adj := undirected(
		[]int{1, 2, 3, 4},
		[][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}, {1, 3}},
	)

	got := collect(clique.Enumerate(adj, clique.MaximalOnly()))
	want := [][]int{{1, 2, 3}, {1, 3, 4}}
	assert.ElementsMatch(t, want, got)

	seen := make(map[string]bool, len(got))
	for _, c := range got {
		key := ""
		for _, n := range c {
			key += string(rune('0' + n))
		}
		require.False(t, seen[key], "duplicate clique %v", c)
		seen[key] = true
	}
}

// TestEnumerate_Lazy verifies the consumer can stop mid-sequence.
func TestEnumerate_Lazy(t *testing.T) {
	adj := undirected([]int{1, 2, 3}, [][2]int{{1, 2}, {2, 3}})

	count := 0
	for range clique.Enumerate(adj) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

// TestEnumerate_Empty yields a single empty clique for the empty graph in
// both modes.
func TestEnumerate_Empty(t *testing.T) {
	adj := map[int]core.Set[int]{}

	all := collect(clique.Enumerate(adj))
	assert.Equal(t, [][]int{{}}, all)

	maximal := collect(clique.Enumerate(adj, clique.MaximalOnly()))
	assert.Equal(t, [][]int{{}}, maximal)
}
