// Package grid treats rectangular character boards as implicit graphs.
//
// What:
//
//   - Board: a sparse map from (row, column) Point to a rune cell value,
//     parsed from lines of text. Zero-based indices, origin at the top-left,
//     row increasing downward.
//   - Neighbors: a factory producing a core.NeighborFunc over Points, with
//     independently togglable cardinal and diagonal unit moves, optionally
//     restricted to a board and an allowed cell-value set. Unit weights.
//   - Find: locate the cells carrying marker values such as 'S' and 'E'.
//   - Render: textual visualization with optional marker overlays.
//   - TurnRight/TurnLeft and the `^ > v <` facing-glyph mapping for problems
//     that track an orientation on the board.
//
// Why:
//
//   - Boards are the most common source of implicit graphs; this package is
//     the bridge between lines of text and the search engine.
//
// Errors:
//
//   - ErrValueNotFound:    Find could not locate a requested value.
//   - ErrUnknownDirection: Glyph was given a non-unit or diagonal vector.
//   - ErrUnknownGlyph:     Dir was given a rune outside `^ > v <`.
package grid
