// Package viewer shows a decoded grid in a scrollable terminal screen.
//
// Decoded grids have no upper bound on their width, so a graphic can
// easily exceed the terminal; the viewer pans across it instead of
// letting the terminal wrap the output into noise.
package viewer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"griddecode/grid"
)

// Viewer pans a rendered grid around a tcell screen.
type Viewer struct {
	screen tcell.Screen
	lines  []string
	gridW  int
	gridH  int

	offsetX int // leftmost visible grid column
	offsetY int // topmost visible print row
}

// Show opens the terminal screen and runs the viewer until the user
// quits with q, Esc or Ctrl-C. It blocks for the whole session and
// restores the terminal on the way out.
func Show(g *grid.Grid) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	w, h := g.Size()
	v := &Viewer{
		screen: screen,
		lines:  g.Lines(),
		gridW:  w,
		gridH:  h,
	}
	v.run()
	return nil
}

func (v *Viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey applies one key event. Returns true when the viewer should
// exit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	_, viewH := v.viewport()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.pan(0, -1)
	case tcell.KeyDown:
		v.pan(0, 1)
	case tcell.KeyLeft:
		v.pan(-1, 0)
	case tcell.KeyRight:
		v.pan(1, 0)
	case tcell.KeyPgUp:
		v.pan(0, -viewH)
	case tcell.KeyPgDn:
		v.pan(0, viewH)
	case tcell.KeyHome:
		v.offsetX, v.offsetY = 0, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'h':
			v.pan(-1, 0)
		case 'j':
			v.pan(0, 1)
		case 'k':
			v.pan(0, -1)
		case 'l':
			v.pan(1, 0)
		case 'g':
			v.offsetX, v.offsetY = 0, 0
		}
	}
	return false
}

// viewport returns the screen area available for grid content, keeping
// one row for the status bar.
func (v *Viewer) viewport() (w, h int) {
	w, h = v.screen.Size()
	if h > 0 {
		h--
	}
	return w, h
}

// pan moves the visible window, clamped to the grid extent.
func (v *Viewer) pan(dx, dy int) {
	viewW, viewH := v.viewport()
	v.offsetX = clamp(v.offsetX+dx, 0, v.gridW-viewW)
	v.offsetY = clamp(v.offsetY+dy, 0, v.gridH-viewH)
}

func (v *Viewer) draw() {
	v.screen.Clear()
	viewW, viewH := v.viewport()
	style := tcell.StyleDefault

	for sy := 0; sy < viewH; sy++ {
		row := v.offsetY + sy
		if row >= len(v.lines) {
			break
		}
		drawLine(v.screen, v.lines[row], v.offsetX, sy, viewW, style)
	}

	status := fmt.Sprintf(" %dx%d  (%d,%d)  arrows/hjkl pan · g home · q quit ",
		v.gridW, v.gridH, v.offsetX, v.offsetY)
	drawLine(v.screen, status, 0, viewH, viewW, style.Reverse(true))

	v.screen.Show()
}

// drawLine renders one text row starting at grid column skip, honouring
// glyph display widths so wide characters occupy two screen cells.
// Iteration is by grapheme cluster, keeping combining marks attached to
// their base character.
func drawLine(screen tcell.Screen, line string, skip, y, maxW int, style tcell.Style) {
	col := 0
	sx := 0
	clusters := uniseg.NewGraphemes(line)
	for clusters.Next() {
		w := runewidth.StringWidth(clusters.Str())
		if w == 0 {
			continue
		}
		if col < skip {
			col++
			continue
		}
		if sx+w > maxW {
			break
		}
		runes := clusters.Runes()
		screen.SetContent(sx, y, runes[0], runes[1:], style)
		sx += w
		col++
	}
}

func clamp(n, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
