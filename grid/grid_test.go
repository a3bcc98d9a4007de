package grid

import (
	"strings"
	"testing"

	"griddecode/core"
)

func cell(x, y int, char string) core.Cell {
	return core.Cell{Point: core.Point{X: x, Y: y}, Char: char}
}

// TestBuild_Placement checks that every character lands at column x, row y
// counted from the bottom, and that every other cell stays a space.
func TestBuild_Placement(t *testing.T) {
	g, err := Build([]core.Cell{
		cell(0, 0, "A"),
		cell(1, 0, "B"),
		cell(0, 1, "C"),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	w, h := g.Size()
	if w != 2 || h != 2 {
		t.Fatalf("Size() = (%d, %d), want (2, 2)", w, h)
	}

	// y=1 prints first, y=0 prints last.
	want := "C \nAB"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuild_SparseFill(t *testing.T) {
	g, err := Build([]core.Cell{cell(3, 2, "X")})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	w, h := g.Size()
	if w != 4 || h != 3 {
		t.Fatalf("Size() = (%d, %d), want (4, 3)", w, h)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got := g.Get(core.Point{X: x, Y: y})
			want := " "
			if x == 3 && y == 2 {
				want = "X"
			}
			if got != want {
				t.Errorf("Get(%d,%d) = %q, want %q", x, y, got, want)
			}
		}
	}
}

// TestBuild_LastWriteWins checks that the later of two cells sharing a
// coordinate is the one that renders.
func TestBuild_LastWriteWins(t *testing.T) {
	g, err := Build([]core.Cell{
		cell(0, 0, "A"),
		cell(0, 0, "B"),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := g.Get(core.Point{X: 0, Y: 0}); got != "B" {
		t.Errorf("Get(0,0) = %q, want %q (last write wins)", got, "B")
	}
}

func TestBuild_NoData(t *testing.T) {
	for _, cells := range [][]core.Cell{nil, {}} {
		g, err := Build(cells)
		if err != ErrNoData {
			t.Errorf("Build(%v) error = %v, want ErrNoData", cells, err)
		}
		if g != nil {
			t.Errorf("Build(%v) = %v, want nil grid", cells, g)
		}
	}
}

func TestGrid_Get_OutOfBounds(t *testing.T) {
	g, err := Build([]core.Cell{cell(0, 0, "A")})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		name  string
		point core.Point
	}{
		{"Negative X", core.Point{X: -1, Y: 0}},
		{"Negative Y", core.Point{X: 0, Y: -1}},
		{"Past max X", core.Point{X: 1, Y: 0}},
		{"Past max Y", core.Point{X: 0, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Get(tt.point); got != " " {
				t.Errorf("Get(%+v) = %q, want space", tt.point, got)
			}
		})
	}
}

// TestGrid_WideGlyphs checks that multi-byte glyphs survive the round
// trip through the buffer as whole grapheme clusters.
func TestGrid_WideGlyphs(t *testing.T) {
	g, err := Build([]core.Cell{
		cell(0, 0, "█"),
		cell(1, 0, "▀"),
		cell(2, 0, "░"),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := g.String(); got != "█▀░" {
		t.Errorf("String() = %q, want %q", got, "█▀░")
	}
}

func TestGrid_Lines_Order(t *testing.T) {
	g, err := Build([]core.Cell{
		cell(0, 0, "0"),
		cell(0, 1, "1"),
		cell(0, 2, "2"),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	lines := g.Lines()
	want := []string{"2", "1", "0"}
	if len(lines) != len(want) {
		t.Fatalf("Lines() has %d rows, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestGrid_WriteTo(t *testing.T) {
	g, err := Build([]core.Cell{
		cell(0, 0, "A"),
		cell(1, 0, "B"),
		cell(0, 1, "C"),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var sb strings.Builder
	n, err := g.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	want := "C \nAB\n"
	if sb.String() != want {
		t.Errorf("WriteTo() wrote %q, want %q", sb.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() = %d bytes, want %d", n, len(want))
	}
}
