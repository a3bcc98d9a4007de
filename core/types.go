// Package core contains the fundamental types used throughout the griddecode pipeline.
package core

// Point represents a 2D coordinate in the grid.
// The origin (0,0) is the bottom-left corner: X increases rightward,
// Y increases upward. Coordinates are never negative.
type Point struct {
	X, Y int
}

// Cell pairs a coordinate with the character that belongs there.
// Char holds exactly one grapheme cluster, which may span several
// runes (combining marks) but is never multi-character text.
type Cell struct {
	Point
	Char string
}

// Bounds describes the extent of a set of cells. The minimum corner is
// always (0,0); only the maxima are tracked.
type Bounds struct {
	MaxX, MaxY int
}

// BoundsOf computes the bounding extent of cells. The minimum is pinned
// to 0 regardless of the smallest observed coordinate.
func BoundsOf(cells []Cell) Bounds {
	var b Bounds
	for _, c := range cells {
		if c.X > b.MaxX {
			b.MaxX = c.X
		}
		if c.Y > b.MaxY {
			b.MaxY = c.Y
		}
	}
	return b
}

// Width returns the number of columns the bounds cover.
func (b Bounds) Width() int {
	return b.MaxX + 1
}

// Height returns the number of rows the bounds cover.
func (b Bounds) Height() int {
	return b.MaxY + 1
}
