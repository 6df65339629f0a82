package worker

import (
	"sync/atomic"
	"testing"

	"github.com/lgbarn/wildchess-go/internal/pgn"
)

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Record: item.Record, Index: item.Index}
	}
}

// runPool submits n items from another goroutine and returns the indices
// of the results.
func runPool(pool *Pool, n int) map[int]bool {
	pool.Start()
	go func() {
		for i := 0; i < n; i++ {
			pool.Submit(WorkItem{Record: &pgn.Record{}, Index: i})
		}
		pool.Close()
	}()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}
	return seen
}

func TestPoolProcessesEveryItem(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
	}{
		{"single worker", 1, 1},
		{"several workers", 4, 10},
		{"more workers than items", 32, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var processed int32
			pool := NewPool(countingProcessFunc(&processed), WithWorkers(tt.workers), WithBufferSize(tt.buffer))

			const numItems = 20
			seen := runPool(pool, numItems)

			if got := atomic.LoadInt32(&processed); got != numItems {
				t.Errorf("processed = %d; want %d", got, numItems)
			}
			for i := 0; i < numItems; i++ {
				if !seen[i] {
					t.Errorf("missing index %d in results", i)
				}
			}
		})
	}
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, DefaultBufferSize},
		{"workers", []PoolOption{WithWorkers(4)}, 4, DefaultBufferSize},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"zero workers ignored", []PoolOption{WithWorkers(0)}, 1, DefaultBufferSize},
		{"negative buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, DefaultBufferSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(countingProcessFunc(new(int32)), tt.opts...)
			if pool.workers != tt.wantWorkers {
				t.Errorf("workers = %d; want %d", pool.workers, tt.wantWorkers)
			}
			if cap(pool.items) != tt.wantBuffer || cap(pool.results) != tt.wantBuffer {
				t.Errorf("buffers = %d/%d; want %d", cap(pool.items), cap(pool.results), tt.wantBuffer)
			}
		})
	}
}

func TestPoolStop(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(2), WithBufferSize(4))
	if pool.IsStopped() {
		t.Fatal("new pool should not be stopped")
	}

	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
	if pool.Submit(WorkItem{Record: &pgn.Record{}}) {
		t.Error("Submit after Stop should return false")
	}

	seen := runPool(pool, 10)
	if len(seen) != 0 || atomic.LoadInt32(&processed) != 0 {
		t.Errorf("stopped pool processed %d items", atomic.LoadInt32(&processed))
	}
}

func TestPoolStopSkipsQueuedItems(t *testing.T) {
	release := make(chan struct{})
	var processed int32
	pool := NewPool(func(item WorkItem) ProcessResult {
		<-release
		atomic.AddInt32(&processed, 1)
		return ProcessResult{Record: item.Record, Index: item.Index}
	}, WithBufferSize(8))
	pool.Start()

	// The single worker blocks on the first item; the rest wait in the queue.
	for i := 0; i < 5; i++ {
		pool.Submit(WorkItem{Record: &pgn.Record{}, Index: i})
	}
	pool.Stop()
	close(release)
	go pool.Close()

	results := 0
	for range pool.Results() {
		results++
	}
	if got := atomic.LoadInt32(&processed); got > 1 || int(got) != results {
		t.Errorf("processed = %d, results = %d; want at most the item in progress", got, results)
	}
}
