package interval

// Interval is an open-closed interval (Lo, Hi] on the real line. Intervals
// with Lo ≥ Hi are empty and are dropped from every result.
type Interval struct {
	Lo, Hi float64
}

// Set is a collection of disjoint intervals.
type Set map[Interval]struct{}

// NewSet returns a Set of the given intervals, dropping empty ones.
func NewSet(intervals ...Interval) Set {
	s := make(Set, len(intervals))
	for _, iv := range intervals {
		s.add(iv)
	}

	return s
}

// add inserts iv unless it is empty.
func (s Set) add(iv Interval) {
	if iv.Lo < iv.Hi {
		s[iv] = struct{}{}
	}
}

// merge inserts every interval of other.
func (s Set) merge(other Set) {
	for iv := range other {
		s[iv] = struct{}{}
	}
}

// Diff computes the set difference a − b over two sets of disjoint
// intervals.
func Diff(a, b Set) Set {
	out := make(Set)
	for i1 := range a {
		for i2 := range b {
			out.merge(diffOne(i1, i2))
		}
	}

	return out
}

// Intersect computes the intersection a ∩ b over two sets of disjoint
// intervals.
func Intersect(a, b Set) Set {
	out := make(Set)
	for i1 := range a {
		for i2 := range b {
			out.merge(intersectOne(i1, i2))
		}
	}

	return out
}

// diffOne computes i1 − i2 for a single pair.
func diffOne(i1, i2 Interval) Set {
	out := make(Set, 2)

	// No overlap: one lies entirely left of the other.
	if i1.Hi <= i2.Lo || i2.Hi <= i1.Lo {
		out.add(i1)

		return out
	}

	// i2 contained in i1: up to two leftover pieces.
	if i1.Lo <= i2.Lo && i2.Hi <= i1.Hi {
		out.add(Interval{Lo: i1.Lo, Hi: i2.Lo})
		out.add(Interval{Lo: i2.Hi, Hi: i1.Hi})

		return out
	}

	// i1 contained in i2: nothing remains.
	if i2.Lo <= i1.Lo && i1.Hi <= i2.Hi {
		return out
	}

	// Partial overlap: a single piece survives on one side.
	if i1.Lo <= i2.Lo {
		out.add(Interval{Lo: i1.Lo, Hi: i2.Lo})
	} else {
		out.add(Interval{Lo: i2.Hi, Hi: i1.Hi})
	}

	return out
}

// intersectOne computes i1 ∩ i2 for a single pair.
func intersectOne(i1, i2 Interval) Set {
	out := make(Set, 1)
	if i1.Hi <= i2.Lo || i2.Hi <= i1.Lo {
		return out
	}
	out.add(Interval{Lo: max(i1.Lo, i2.Lo), Hi: min(i1.Hi, i2.Hi)})

	return out
}
