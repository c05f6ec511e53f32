// Package parallel provides the data-parallel dispatch used by the kernels:
// chunked fan-out over a flat work-item range, an asynchronous queue with a
// single join point, and pooled scratch/output allocation.
package parallel

import (
	"runtime"
	"sync"

	"github.com/born-ml/ndaxis/internal/cpuinfo"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on the host CPU.
func DefaultConfig() Config {
	f := cpuinfo.Detect()
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: max(f.CacheLineSize, 64),
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForChunk(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForChunk splits [0, n) into contiguous chunks and runs f(start, end) once per
// chunk. Each chunk runs on a single goroutine, so state allocated inside f is
// private to the work items of that chunk.
func ForChunk(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		// Sequential fallback.
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
