package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrValueNotFound is returned by Find when a requested cell value does
	// not occur anywhere on the board.
	ErrValueNotFound = errors.New("grid: value not found on board")

	// ErrUnknownDirection is returned by Glyph for a vector that is not one
	// of the four axis-aligned unit vectors.
	ErrUnknownDirection = errors.New("grid: no glyph for direction")

	// ErrUnknownGlyph is returned by Dir for a rune outside `^ > v <`.
	ErrUnknownGlyph = errors.New("grid: unknown facing glyph")
)

// Point is a board coordinate: row R (increasing downward) and column C
// (increasing rightward), zero-based with the origin at the top-left.
type Point struct {
	R, C int
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point { return Point{R: p.R + q.R, C: p.C + q.C} }

// Sub returns the component-wise difference p − q.
func (p Point) Sub(q Point) Point { return Point{R: p.R - q.R, C: p.C - q.C} }

// Board maps occupied coordinates to their cell values. Boards are sparse:
// a coordinate that was never set simply is not on the board.
type Board map[Point]rune

// Cardinal holds the four axis-aligned unit move vectors.
var Cardinal = []Point{{R: 1}, {R: -1}, {C: 1}, {C: -1}}

// Diagonal holds the four diagonal unit move vectors.
var Diagonal = []Point{{R: 1, C: 1}, {R: -1, C: 1}, {R: -1, C: -1}, {R: 1, C: -1}}

// TurnRight rotates a direction vector 90° clockwise on the board
// coordinate system (row downward, column rightward).
func TurnRight(d Point) Point { return Point{R: d.C, C: -d.R} }

// TurnLeft rotates a direction vector 90° counter-clockwise.
func TurnLeft(d Point) Point { return Point{R: -d.C, C: d.R} }

// glyphDirs is the fixed bidirectional mapping between facing glyphs and the
// axis-aligned unit vectors.
var glyphDirs = map[rune]Point{
	'^': {R: -1},
	'>': {C: 1},
	'v': {R: 1},
	'<': {C: -1},
}

// Dir returns the unit vector a facing glyph denotes.
func Dir(glyph rune) (Point, error) {
	d, ok := glyphDirs[glyph]
	if !ok {
		return Point{}, ErrUnknownGlyph
	}

	return d, nil
}

// Glyph returns the facing glyph denoting an axis-aligned unit vector.
func Glyph(d Point) (rune, error) {
	for g, gd := range glyphDirs {
		if gd == d {
			return g, nil
		}
	}

	return 0, ErrUnknownDirection
}
