// Package grid lays sparse positioned characters out in a dense 2D buffer
// and renders the buffer as lines of text.
package grid

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"griddecode/core"
)

// Common errors
var (
	ErrNoData = errors.New("no cells to render")
)

// Grid is a dense rectangular character buffer.
//
// Coordinate System:
//   - Origin (0,0) is bottom-left
//   - X increases rightward
//   - Y increases upward
//
// Rows are stored bottom-up internally; rendering emits them top-down so
// that y=0 ends up as the last printed line. Every cell holds exactly one
// grapheme cluster; unassigned cells hold a single space.
//
// A Grid is built once from a cell list and read out once. It is not
// thread-safe and is not meant to outlive a single render.
type Grid struct {
	rows   [][]string // rows[y][x], y counted from the bottom
	bounds core.Bounds
}

// Build allocates a (maxY+1) × (maxX+1) buffer filled with spaces and
// places every cell at its coordinate. Cells later in the list overwrite
// earlier ones at the same coordinate. Returns ErrNoData when the list
// is empty.
func Build(cells []core.Cell) (*Grid, error) {
	if len(cells) == 0 {
		return nil, ErrNoData
	}

	bounds := core.BoundsOf(cells)
	rows := make([][]string, bounds.Height())
	for y := range rows {
		rows[y] = make([]string, bounds.Width())
		for x := range rows[y] {
			rows[y][x] = " "
		}
	}

	g := &Grid{rows: rows, bounds: bounds}
	for _, c := range cells {
		g.set(c)
	}
	return g, nil
}

// set places a cell's character, overwriting whatever is there.
// Coordinates outside the buffer are ignored; Build sizes the buffer
// from the same cell list, so that only guards malformed input.
func (g *Grid) set(c core.Cell) {
	if c.X < 0 || c.Y < 0 || c.X > g.bounds.MaxX || c.Y > g.bounds.MaxY {
		return
	}
	if c.Char == "" {
		return
	}
	g.rows[c.Y][c.X] = c.Char
}

// Size returns the width and height of the grid in cells.
func (g *Grid) Size() (width, height int) {
	return g.bounds.Width(), g.bounds.Height()
}

// Get returns the character at the given position.
// Returns " " (space) if the position is out of bounds.
func (g *Grid) Get(p core.Point) string {
	if p.X < 0 || p.X > g.bounds.MaxX || p.Y < 0 || p.Y > g.bounds.MaxY {
		return " "
	}
	return g.rows[p.Y][p.X]
}

// Lines returns the rendered rows in print order: y=maxY first, y=0
// last, each row the concatenation of its columns in ascending x.
func (g *Grid) Lines() []string {
	lines := make([]string, 0, len(g.rows))
	for y := g.bounds.MaxY; y >= 0; y-- {
		lines = append(lines, strings.Join(g.rows[y], ""))
	}
	return lines
}

// String returns the rendered grid with rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// WriteTo writes the rendered grid to w, one newline-terminated line per
// row, top row first. No trailing metadata is emitted.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, line := range g.Lines() {
		n, err := fmt.Fprintln(w, line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
