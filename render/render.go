// Package render turns a computed escape-time grid into text: terminal
// ASCII art or a numeric grid for an external plotting tool.
package render

import (
	"bufio"
	"io"
	"strconv"

	mandel "github.com/marben/mandelgrid"
)

// Renderer writes a textual representation of a finished grid.
// maxIter is the cap the grid was computed with.
type Renderer interface {
	Render(w io.Writer, g *mandel.Grid, maxIter int) error
}

// symbols orders glyphs from "inside the set" to "escaped immediately".
// The exact glyphs are presentation only; the linear index mapping is the
// contract.
const symbols = "MW2a_. "

// glyph maps an escape-time value in [0, maxIter] onto symbols.
// maxIter ≤ 0 means every value is 0 and the first glyph is used.
func glyph(value, maxIter int) byte {
	if maxIter <= 0 {
		return symbols[0]
	}
	idx := int(float64(value) / float64(maxIter) * float64(len(symbols)-1))
	if idx < 0 {
		idx = 0
	}
	if idx > len(symbols)-1 {
		idx = len(symbols) - 1
	}
	return symbols[idx]
}

// ASCII renders one glyph per cell, rows top to bottom (grid row 0 first),
// one row per line.
type ASCII struct{}

func (ASCII) Render(w io.Writer, g *mandel.Grid, maxIter int) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for _, v := range g.Row(y) {
			bw.WriteByte(glyph(v, maxIter))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// PlotData renders plain decimal values, comma-and-space separated within a
// row, one row per line. Rows come out bottom to top (grid row height−1
// first) to match the coordinate convention of the downstream plotting
// tool; this inversion relative to ASCII is intentional.
type PlotData struct{}

func (PlotData) Render(w io.Writer, g *mandel.Grid, maxIter int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 20)
	for y := g.Height - 1; y >= 0; y-- {
		for x, v := range g.Row(y) {
			if x > 0 {
				bw.WriteString(", ")
			}
			buf = strconv.AppendInt(buf[:0], int64(v), 10)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
