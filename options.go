package trirast

// Option configures a single Rasterize call.
// Use functional options to customize rasterization behavior.
//
// Example:
//
//	// Default: strict coverage, single goroutine
//	trirast.Rasterize(p, tris, buf, w, h, w, h)
//
//	// Parallel row bands plus statistics
//	pool := trirast.NewWorkerPool(0)
//	defer pool.Close()
//	var st trirast.Stats
//	trirast.Rasterize(p, tris, buf, w, h, w, h,
//	    trirast.WithWorkerPool(pool), trirast.WithStats(&st))
type Option func(*options)

// options holds optional configuration for a Rasterize call.
type options struct {
	coverage CoverageRule
	pool     *WorkerPool
	stats    *Stats
}

// defaultOptions returns the default rasterize options.
func defaultOptions() options {
	return options{
		coverage: CoverageStrict,
		pool:     nil, // serial
		stats:    nil,
	}
}

// WithCoverage selects the inside test. The default is [CoverageStrict].
func WithCoverage(rule CoverageRule) Option {
	return func(o *options) {
		o.coverage = rule
	}
}

// WithWorkerPool shades the rows of each triangle's bounding box in bands
// on pool. Triangles are still processed one after another, so later
// triangles overwrite earlier ones exactly as in serial mode.
//
// The pipeline's Fragment method must be safe for concurrent use.
// A nil pool selects serial mode.
func WithWorkerPool(pool *WorkerPool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithStats stores the counters of the call into s when it returns.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// Stats reports what a Rasterize call did.
type Stats struct {
	// Triangles is the number of triangles processed.
	Triangles int

	// Culled counts triangles whose clamped bounding box was empty.
	Culled int

	// Degenerate counts triangles with a zero or NaN barycentric
	// determinant. They cover no pixels.
	Degenerate int

	// Fragments is the number of fragment stage invocations, which equals
	// the number of pixel writes.
	Fragments int
}
