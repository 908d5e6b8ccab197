package mandel

import (
	"sync"
	"sync/atomic"
)

// Reference pool geometry. Row cost varies wildly (cells deep inside the
// set cost maxIter iterations, escaping cells far less), so single-row
// chunks trade a little cursor contention for even load across workers.
const (
	DefaultWorkers = 9
	DefaultChunk   = 1
)

// rowCursor hands out disjoint row ranges to workers. The atomic add is
// the only cross-worker coordination during the compute phase. The cursor
// is owned by one Compute call; a fresh one is built per run, never shared
// process-wide.
type rowCursor struct {
	next   atomic.Int64
	chunk  int
	height int
}

// claim returns the next unclaimed row range [start, end).
// ok is false once all rows are handed out; the cursor's internal value may
// run past height, claims beyond it are simply discarded.
func (c *rowCursor) claim() (start, end int, ok bool) {
	start = int(c.next.Add(int64(c.chunk))) - c.chunk
	if start >= c.height {
		return 0, 0, false
	}
	end = start + c.chunk
	if end > c.height {
		end = c.height
	}
	return start, end, true
}

// computeRows fills rows [start, end) of g for region r.
// Shared by the sequential path and every pool worker.
func computeRows(r Region, maxIter int, g *Grid, start, end int) {
	for y := start; y < end; y++ {
		for x := 0; x < g.Width; x++ {
			g.Set(x, y, EscapeTime(r.PointAt(x, y, g.Width, g.Height), maxIter))
		}
	}
}

// Compute fills the whole grid on the calling goroutine.
func Compute(r Region, maxIter int, g *Grid) {
	computeRows(r, maxIter, g, 0, g.Height)
}

// Pool computes a grid across a fixed number of worker goroutines with
// dynamic load balancing: each worker repeatedly claims the next chunk of
// rows from a shared cursor until none remain.
type Pool struct {
	Workers int // number of workers; DefaultWorkers if <= 0
	Chunk   int // rows claimed per atomic step; DefaultChunk if <= 0

	// Progress, if set, is called after each finished chunk with the total
	// number of completed rows. Called from worker goroutines.
	Progress func(done, total int)
}

// Compute fills g for region r. All workers are started before any claim
// and joined before Compute returns, so the grid is safe to read afterwards.
// The result is cell-for-cell identical to the sequential Compute.
func (p Pool) Compute(r Region, maxIter int, g *Grid) {
	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	chunk := p.Chunk
	if chunk <= 0 {
		chunk = DefaultChunk
	}

	cursor := &rowCursor{chunk: chunk, height: g.Height}
	var done atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				start, end, ok := cursor.claim()
				if !ok {
					return
				}
				computeRows(r, maxIter, g, start, end)
				if p.Progress != nil {
					p.Progress(int(done.Add(int64(end-start))), g.Height)
				}
			}
		}()
	}
	wg.Wait()
}
