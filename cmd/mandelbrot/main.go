// mandelbrot renders the Mandelbrot set to stdout, as ASCII art or as a
// numeric grid for an external plotting tool.
//
// Usage:
//
//	mandelbrot
//	mandelbrot width=120 ll_x=-0.75 ll_y=0.1 ur_x=-0.74 ur_y=0.11
//	mandelbrot region=seahorse max_iter=1000
//	mandelbrot png=1 width=800 height=600 > mandelbrot.dat
package main

import (
	"fmt"
	"log"
	"os"

	mandel "github.com/marben/mandelgrid"
	"github.com/marben/mandelgrid/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	params := mandel.ParseArgs(os.Args[1:])

	grid := mandel.NewGrid(params.Width, params.Height)
	mandel.Pool{}.Compute(params.Region, params.MaxIter, grid)

	var r render.Renderer = render.ASCII{}
	if params.PlotData {
		r = render.PlotData{}
	}
	if err := r.Render(os.Stdout, grid, params.MaxIter); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
