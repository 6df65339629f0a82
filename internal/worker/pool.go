// Package worker replays game records on a pool of goroutines.
// Each game owns its position, so games never share mutable state.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/wildchess-go/internal/game"
	"github.com/lgbarn/wildchess-go/internal/pgn"
)

// DefaultBufferSize is the channel capacity used without WithBufferSize.
const DefaultBufferSize = 10

// WorkItem is one record to replay.
type WorkItem struct {
	Record *pgn.Record
	Index  int // position of the record in the input
}

// ProcessResult is the outcome of replaying one record.
type ProcessResult struct {
	Record *pgn.Record
	Index  int
	Game   *game.Game // replayed up to the first failing move, may be nil
	Error  error
}

// ProcessFunc replays one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed number of goroutines. Results arrive
// in completion order, not submission order.
type Pool struct {
	workers int
	buffer  int
	process ProcessFunc
	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below one are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool running process. Without options it has one
// worker and DefaultBufferSize.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, buffer: DefaultBufferSize, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for range p.workers {
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for item := range p.items {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues item, blocking while the buffer is full. It returns false
// without queueing once the pool is stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	p.items <- item
	return true
}

// Stop makes the workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop was called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and closes Results.
// The results channel must be drained concurrently.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished items.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
