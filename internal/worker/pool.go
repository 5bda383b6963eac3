// Package worker provides a worker pool for parallel position analysis.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/rpgchess/internal/output"
)

// WorkItem represents a position to be analysed.
type WorkItem struct {
	Index  int    // Original index for tracking
	Source string // Where the line came from, e.g. "file.fen:12"
	Line   string // FEN, optionally followed by "moves ..."
}

// ProcessResult represents the result of analysing one position.
type ProcessResult struct {
	Index   int
	Report  *output.PositionReport
	Matched bool // Whether the position passed the report filter
	Err     error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel position analysis.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool // early termination
	closeOnce   sync.Once
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Workers stop processing, but keep
// draining, once ctx is done or Stop is called.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() || ctx.Err() != nil {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(ctx, item)
	}
}

// Submit submits a work item for processing, blocking while the work
// channel is full. It returns ctx.Err() if ctx ends first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel. Safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.workChan)
		p.wg.Wait()
		close(p.resultChan)
	})
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Ordered reads results and calls emit in Index order, holding back
// early arrivals. Indices must start at first and have no gaps; whatever is
// still held when results closes is emitted in order at the end.
func Ordered(results <-chan ProcessResult, first int, emit func(ProcessResult) error) error {
	pending := make(map[int]ProcessResult)
	next := first
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := emit(ready); err != nil {
				drain(results)
				return err
			}
		}
	}

	// Gaps left by stopped pools.
	rest := make([]int, 0, len(pending))
	for idx := range pending {
		rest = append(rest, idx)
	}
	sort.Ints(rest)
	for _, idx := range rest {
		if err := emit(pending[idx]); err != nil {
			return err
		}
	}
	return nil
}

func drain(results <-chan ProcessResult) {
	for range results {
	}
}
