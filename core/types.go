package core

// Edge represents one outgoing edge of an implicit graph: the neighbor it
// leads to and the weight of the edge. Edges are never materialized as
// standalone entities; they exist only in the slices a NeighborFunc yields.
type Edge[N comparable] struct {
	To     N       // neighbor node
	Weight float64 // edge weight; algorithm packages state their own sign requirements
}

// NeighborFunc is the graph abstraction: given a node, produce the edges
// leaving it. It is evaluated lazily, once per expansion, and may describe an
// unbounded graph. Implementations may be arbitrarily expensive; callers of
// the algorithm packages are responsible for bounding exploration.
//
// The error return is reserved for contract violations detected during
// evaluation (invalid seed nodes, broken region invariants). A nil error with
// an empty slice simply means the node has no neighbors.
type NeighborFunc[N comparable] func(n N) ([]Edge[N], error)

// Set is a set of nodes. The zero value is not usable; construct with NewSet
// or make.
type Set[N comparable] map[N]struct{}

// NewSet returns a Set containing the given items.
func NewSet[N comparable](items ...N) Set[N] {
	s := make(Set[N], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Add inserts n into the set.
func (s Set[N]) Add(n N) { s[n] = struct{}{} }

// Has reports whether n is in the set. Safe on a nil Set.
func (s Set[N]) Has(n N) bool {
	_, ok := s[n]

	return ok
}

// Clone returns an independent copy of the set.
func (s Set[N]) Clone() Set[N] {
	out := make(Set[N], len(s))
	for n := range s {
		out[n] = struct{}{}
	}

	return out
}
