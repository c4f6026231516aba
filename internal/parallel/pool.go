package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs the row bands of a triangle on a fixed set of goroutines.
//
// All workers pull from one shared queue. Bands of a triangle are short and
// of near-equal height, so there is nothing to balance beyond first come,
// first served.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	jobs    chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu orders Close after every submission in flight, so queued jobs
	// are always drained by a worker.
	mu      sync.RWMutex
	running atomic.Bool
}

// NewWorkerPool starts workers goroutines.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		jobs:    make(chan func(), workers*2),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.loop()
	}
	return p
}

func (p *WorkerPool) loop() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			job()
		case <-p.done:
			for {
				select {
				case job := <-p.jobs:
					job()
				default:
					return
				}
			}
		}
	}
}

// ExecuteAll runs every work item and returns once all of them finished.
// On a closed pool the items run on the calling goroutine, in order.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	if !p.running.Load() || len(work) == 1 {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(work))
	for _, fn := range work {
		p.jobs <- func() {
			defer pending.Done()
			fn()
		}
	}
	p.mu.RUnlock()

	pending.Wait()
}

// Shade calls fn for every band, concurrently, and returns the sum of the
// results once all bands are done.
func (p *WorkerPool) Shade(bands []Band, fn func(Band) int) int {
	counts := make([]int, len(bands))
	work := make([]func(), len(bands))
	for k, b := range bands {
		work[k] = func() { counts[k] = fn(b) }
	}
	p.ExecuteAll(work)

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// Close stops the workers after the queued jobs have run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	closing := p.running.CompareAndSwap(true, false)
	p.mu.Unlock()
	if !closing {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still hands work to its goroutines.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
