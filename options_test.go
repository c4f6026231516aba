package trirast

import (
	"testing"
)

// TestDefaultOptions tests that Rasterize defaults to strict serial mode.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.coverage != CoverageStrict {
		t.Errorf("coverage = %v, want strict", o.coverage)
	}
	if o.pool != nil {
		t.Error("pool should be nil (serial)")
	}
	if o.stats != nil {
		t.Error("stats should be nil")
	}
}

// TestOptionsApply tests that each option sets its field and later options win.
func TestOptionsApply(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()
	var st Stats

	o := defaultOptions()
	for _, opt := range []Option{
		WithCoverage(CoverageLegacy),
		WithWorkerPool(pool),
		WithStats(&st),
		WithWorkerPool(nil),
	} {
		opt(&o)
	}

	if o.coverage != CoverageLegacy {
		t.Errorf("coverage = %v, want legacy", o.coverage)
	}
	if o.pool != nil {
		t.Error("last WithWorkerPool(nil) should select serial mode")
	}
	if o.stats != &st {
		t.Error("stats pointer not stored")
	}
}

// TestWithStatsResetsCounters tests that stats describe a single call.
func TestWithStatsResetsCounters(t *testing.T) {
	st := Stats{Triangles: 99, Fragments: 99}
	Rasterize(solid{c: Red}, [][3]Vec2(nil), make([]byte, 4), 1, 1, 1, 1, WithStats(&st))
	if st != (Stats{}) {
		t.Errorf("stats = %+v, want zero for an empty call", st)
	}
}

func TestWorkerPoolWorkers(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()
	if got := pool.Workers(); got != 3 {
		t.Errorf("Workers() = %d, want 3", got)
	}
}
