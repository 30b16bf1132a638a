// Package physics provides grid-cell overlap tests and broad-phase indexing.
package physics

import "math"

// Cell converts a real-valued coordinate to its grid cell.
func Cell(v float64) int {
	return int(math.Floor(v))
}

// SameRow reports whether two y coordinates fall in the same grid row,
// allowing a vertical margin of extra rows on either side.
func SameRow(y1, y2 float64, margin int) bool {
	d := Cell(y1) - Cell(y2)
	if d < 0 {
		d = -d
	}
	return d <= margin
}

// SpansOverlap reports whether two horizontal cell spans overlap.
// A span starts at the cell of x and covers width columns. margin widens
// the test by that many columns on each side (forgiving pickups).
func SpansOverlap(x1 float64, w1 int, x2 float64, w2 int, margin int) bool {
	a := Cell(x1)
	b := Cell(x2)
	return a < b+w2+margin && b < a+w1+margin
}

// CellsCoincide is the discrete-grid collision test: the two entities
// occupy at least one common cell (same row, overlapping column spans).
// This is not a swept test; a fast entity can cross a one-tick-wide gap.
func CellsCoincide(x1, y1 float64, w1 int, x2, y2 float64, w2 int, margin int) bool {
	return SameRow(y1, y2, margin) && SpansOverlap(x1, w1, x2, w2, margin)
}
