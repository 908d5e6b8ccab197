package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	mandel "github.com/marben/mandelgrid"
	"github.com/marben/mandelgrid/render"
)

// webServer creates the http server serving the viewer page
// and the /ws endpoint that renders the configured view per connection.
func webServer(port int, params mandel.Params) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", renderHandler(params))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexHTML)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return srv
}

// renderHandler handles the http ws endpoint.
// Each accepted websocket gets one full render of params: progress frames
// as row chunks complete, then the finished ASCII frame.
func renderHandler(params mandel.Params) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("rendering for: %s", r.RemoteAddr)
		if err := streamRender(r.Context(), c, params); err != nil {
			log.Printf("err: render for %q: %v", r.RemoteAddr, err)
			return
		}
		c.Close(websocket.StatusNormalClosure, "render complete")
	}
}

func streamRender(ctx context.Context, c *websocket.Conn, params mandel.Params) error {
	grid := mandel.NewGrid(params.Width, params.Height)

	// The channel holds one entry per possible chunk, so the compute
	// goroutine never blocks even if this side stops reading early.
	progress := make(chan int, params.Height)
	pool := mandel.Pool{
		Progress: func(done, total int) { progress <- done },
	}

	go func() {
		pool.Compute(params.Region, params.MaxIter, grid)
		close(progress)
	}()

	for done := range progress {
		msg := fmt.Sprintf("progress %d/%d", done, params.Height)
		if err := c.Write(ctx, websocket.MessageText, []byte(msg)); err != nil {
			return fmt.Errorf("write progress: %w", err)
		}
	}

	var frame bytes.Buffer
	if err := (render.ASCII{}).Render(&frame, grid, params.MaxIter); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	if err := c.Write(ctx, websocket.MessageText, frame.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>mandelgrid</title></head>
<body style="background:#111;color:#ddd">
<pre id="out" style="font-size:10px;line-height:10px">connecting...</pre>
<script>
const out = document.getElementById("out");
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => { out.textContent = ev.data; };
</script>
</body>
</html>
`
