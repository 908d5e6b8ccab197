package render

import (
	"strings"
	"testing"

	mandel "github.com/marben/mandelgrid"
)

func TestGlyphBoundaries(t *testing.T) {
	for _, cap := range []int{1, 6, 255, 1000} {
		if g := glyph(0, cap); g != 'M' {
			t.Errorf("glyph(0, %d) = %q, want 'M'", cap, g)
		}
		if g := glyph(cap, cap); g != ' ' {
			t.Errorf("glyph(%d, %d) = %q, want ' '", cap, cap, g)
		}
	}
	// cap=6 exercises every palette position linearly.
	want := "MW2a_. "
	for v := 0; v <= 6; v++ {
		if g := glyph(v, 6); g != want[v] {
			t.Errorf("glyph(%d, 6) = %q, want %q", v, g, want[v])
		}
	}
}

func TestGlyphZeroCap(t *testing.T) {
	// cap=0 means every value is 0; the mapping must not divide by zero.
	if g := glyph(0, 0); g != 'M' {
		t.Errorf("glyph(0, 0) = %q, want 'M'", g)
	}
	if g := glyph(5, -1); g != 'M' {
		t.Errorf("glyph(5, -1) = %q, want 'M'", g)
	}
}

// grid2x2 has a distinguishable value in every cell:
//
//	row 0: 0 6
//	row 1: 3 6
func grid2x2() *mandel.Grid {
	g := mandel.NewGrid(2, 2)
	g.Set(0, 0, 0)
	g.Set(1, 0, 6)
	g.Set(0, 1, 3)
	g.Set(1, 1, 6)
	return g
}

func TestASCIIRowOrder(t *testing.T) {
	var b strings.Builder
	if err := (ASCII{}).Render(&b, grid2x2(), 6); err != nil {
		t.Fatal(err)
	}
	// Grid row 0 comes first, one line per row, newline after each.
	if got, want := b.String(), "M \na \n"; got != want {
		t.Errorf("ASCII output = %q, want %q", got, want)
	}
}

func TestPlotDataRowOrder(t *testing.T) {
	var b strings.Builder
	if err := (PlotData{}).Render(&b, grid2x2(), 6); err != nil {
		t.Fatal(err)
	}
	// Grid row height-1 comes first; values comma-and-space separated with
	// no trailing separator.
	if got, want := b.String(), "3, 6\n0, 6\n"; got != want {
		t.Errorf("plot-data output = %q, want %q", got, want)
	}
}

func TestRenderComputedGrid(t *testing.T) {
	const w, h, maxIter = 20, 10, 255
	g := mandel.NewGrid(w, h)
	mandel.Compute(mandel.DefaultRegion, maxIter, g)

	var ascii strings.Builder
	if err := (ASCII{}).Render(&ascii, g, maxIter); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(ascii.String(), "\n"), "\n")
	if len(lines) != h {
		t.Fatalf("ASCII output has %d lines, want %d", len(lines), h)
	}
	for i, line := range lines {
		if len(line) != w {
			t.Errorf("ASCII line %d has %d chars, want %d", i, len(line), w)
		}
	}

	var plot strings.Builder
	if err := (PlotData{}).Render(&plot, g, maxIter); err != nil {
		t.Fatal(err)
	}
	plotLines := strings.Split(strings.TrimRight(plot.String(), "\n"), "\n")
	if len(plotLines) != h {
		t.Fatalf("plot-data output has %d lines, want %d", len(plotLines), h)
	}
	if got := len(strings.Split(plotLines[0], ", ")); got != w {
		t.Errorf("plot-data row has %d values, want %d", got, w)
	}
}
