package grid

import (
	"fmt"
	"strings"
)

// Parse builds a Board from lines of text. Line r, column c becomes the cell
// at Point{r, c}; every rune of every line is kept, including spaces.
func Parse(lines []string) Board {
	b := make(Board)
	for r, line := range lines {
		for c, ch := range []rune(line) {
			b[Point{R: r, C: c}] = ch
		}
	}

	return b
}

// ParseText builds a Board from a multi-line string, dropping blank leading
// and trailing lines and surrounding whitespace on each line. Convenient for
// boards embedded in source as raw string literals.
func ParseText(s string) Board {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}

	return Parse(lines)
}

// Bounds returns the minimal and maximal occupied coordinates, and ok=false
// for an empty board.
func (b Board) Bounds() (min, max Point, ok bool) {
	first := true
	for p := range b {
		if first {
			min, max, first = p, p, false

			continue
		}
		if p.R < min.R {
			min.R = p.R
		}
		if p.R > max.R {
			max.R = p.R
		}
		if p.C < min.C {
			min.C = p.C
		}
		if p.C > max.C {
			max.C = p.C
		}
	}

	return min, max, !first
}

// Render draws the board row by row, writing a space for coordinates that
// are not on the board. Marks overlay marker runes onto the listed points
// without mutating the board itself.
func (b Board) Render(marks map[rune][]Point) string {
	min, max, ok := b.Bounds()
	if !ok {
		return ""
	}

	overlay := b
	if len(marks) > 0 {
		overlay = make(Board, len(b))
		for p, v := range b {
			overlay[p] = v
		}
		for m, points := range marks {
			for _, p := range points {
				overlay[p] = m
			}
		}
	}

	var sb strings.Builder
	for r := min.R; r <= max.R; r++ {
		if r > min.R {
			sb.WriteByte('\n')
		}
		for c := min.C; c <= max.C; c++ {
			if v, on := overlay[Point{R: r, C: c}]; on {
				sb.WriteRune(v)
			} else {
				sb.WriteByte(' ')
			}
		}
	}

	return sb.String()
}

// String renders the board without marks.
func (b Board) String() string { return b.Render(nil) }

// Find locates one cell per requested value, scanning in row-major order so
// the result is deterministic when a value occurs multiple times. The
// returned points correspond to values in the given order. Returns
// ErrValueNotFound if any value is absent.
func Find(b Board, values ...rune) ([]Point, error) {
	min, max, ok := b.Bounds()
	if !ok && len(values) > 0 {
		return nil, fmt.Errorf("%w: board is empty", ErrValueNotFound)
	}

	out := make([]Point, len(values))
	for i, v := range values {
		found := false
	scan:
		for r := min.R; r <= max.R; r++ {
			for c := min.C; c <= max.C; c++ {
				p := Point{R: r, C: c}
				if b[p] == v {
					out[i] = p
					found = true

					break scan
				}
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrValueNotFound, v)
		}
	}

	return out, nil
}
