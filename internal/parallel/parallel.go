// Package parallel provides the chunked-loop helper used by the pixel
// kernels to spread independent image rows across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinRows    int  // Minimum rows per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinRows:    32,
	}
}

// ForRows executes f(row) for row in [0, rows). Each invocation must touch
// only its own output row; inputs may be shared read-only. Small images run
// sequentially.
func ForRows(rows int, f func(row int), cfg Config) {
	if !cfg.Enabled || rows < cfg.MinRows {
		for r := 0; r < rows; r++ {
			f(r)
		}
		return
	}

	chunk := (rows + cfg.NumWorkers - 1) / cfg.NumWorkers
	if chunk < cfg.MinRows {
		chunk = cfg.MinRows
	}
	var wg sync.WaitGroup
	for start := 0; start < rows; start += chunk {
		end := start + chunk
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for r := s; r < e; r++ {
				f(r)
			}
		}(start, end)
	}
	wg.Wait()
}
