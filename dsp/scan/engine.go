package scan

import (
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Engine owns the worker pool that scans run on. Scans may run on one
// Engine concurrently and share its workers, but Close must not overlap a
// scan in flight.
type Engine struct {
	cfg  Config
	pool *workerpool.Pool
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// NewEngine starts an Engine configured by opts. Call Close to stop its
// workers.
func NewEngine(opts ...Option) *Engine {
	cfg := ApplyOptions(opts...)
	pool := workerpool.New(cfg.Workers)
	cfg.Workers = pool.NumWorkers()

	return &Engine{cfg: cfg, pool: pool}
}

// Default returns the process-wide Engine with GOMAXPROCS workers. It is
// created on first use and never closed.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine()
	})

	return defaultEngine
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// NumWorkers returns the pool size.
func (e *Engine) NumWorkers() int {
	return e.cfg.Workers
}

// ParallelFor runs fn over contiguous subranges of [0, n) on the pool and
// blocks until all of them return. Packages that batch their own per-row
// work (e.g. higher-order LPC) use it to share the Engine's workers.
func (e *Engine) ParallelFor(n int, fn func(start, end int)) {
	e.pool.ParallelFor(n, fn)
}

// Close stops the workers. Scans issued after Close returns run on the
// calling goroutine.
func (e *Engine) Close() {
	e.pool.Close()
}

// UsesIntraRow reports whether a batch of the given shape is scanned with
// rows split into parallel chunks rather than one worker per row.
func (e *Engine) UsesIntraRow(rows, cols int) bool {
	return e.cfg.IntraRow &&
		e.cfg.Workers > 1 &&
		rows < e.cfg.Workers &&
		cols >= e.cfg.IntraRowMinLen
}

// rowBatch is the number of rows a worker claims at a time.
func (e *Engine) rowBatch(rows int) int {
	return max(1, rows/(4*e.cfg.Workers))
}
