package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForRows(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	rows := 1000

	ForRows(rows, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(rows) {
		t.Errorf("Expected %d, got %d", rows, counter)
	}
}

func TestForRowsCoversEveryRow(t *testing.T) {
	cfg := DefaultConfig()

	rows := 257
	seen := make([]int32, rows)
	ForRows(rows, func(r int) {
		atomic.AddInt32(&seen[r], 1)
	}, cfg)

	for r, n := range seen {
		if n != 1 {
			t.Errorf("row %d visited %d times", r, n)
		}
	}
}

func TestForRows_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	ForRows(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestForRows_SmallImage(t *testing.T) {
	// Small row counts fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	rows := cfg.MinRows - 1

	ForRows(rows, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(rows) {
		t.Errorf("Expected %d, got %d", rows, counter)
	}
}

func BenchmarkForRows(b *testing.B) {
	cfg := DefaultConfig()
	rows := 4096

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			ForRows(rows, func(r int) {
				atomic.AddInt64(&sum, int64(r))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			ForRows(rows, func(r int) {
				atomic.AddInt64(&sum, int64(r))
			}, cfgSeq)
		}
	})
}
