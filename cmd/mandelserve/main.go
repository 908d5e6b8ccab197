// mandelserve renders the Mandelbrot set for browsers: it serves a small
// viewer page and a websocket endpoint that streams the progress of one
// render followed by the finished ASCII frame.
//
// The view is configured with the same key=value arguments as the
// mandelbrot CLI, e.g.:
//
//	mandelserve region=seahorse width=160 height=90
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	mandel "github.com/marben/mandelgrid"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	params := mandel.ParseArgs(os.Args[1:])

	srv := webServer(8080, params)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}
