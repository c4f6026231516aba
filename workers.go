package trirast

import "github.com/gogpu/trirast/internal/parallel"

// minBandRows is the smallest band worth handing to another goroutine.
const minBandRows = 8

// WorkerPool runs the row bands of [WithWorkerPool]. Create one pool and
// reuse it across frames; Close it when done.
//
// A WorkerPool must not be closed while a Rasterize call is using it.
type WorkerPool struct {
	pool *parallel.WorkerPool
}

// NewWorkerPool starts a pool with the given number of goroutines.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	return &WorkerPool{pool: parallel.NewWorkerPool(workers)}
}

// Workers returns the number of goroutines in the pool.
func (p *WorkerPool) Workers() int {
	return p.pool.Workers()
}

// Close stops the pool's goroutines. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.pool.Close()
}
