// Package worker provides a worker pool for parallel candidate-move
// checking. Each candidate's legality check is independent of every
// other candidate's, so fanning the checks out needs no coordination
// beyond collecting results.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/mhalvorsen/movegen-go/internal/chess"
)

// Item is a candidate move to be checked.
type Item struct {
	Move  chess.Move
	Index int // Position in the source move list, for order restoration
}

// Result is the verdict for one candidate move.
type Result struct {
	Move  chess.Move
	Index int
	Legal bool
}

// CheckFunc is the function signature for checking one candidate.
type CheckFunc func(item Item) Result

// Pool manages a pool of workers for parallel candidate checking.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan Item
	resultChan chan Result
	checkFunc  CheckFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool with the specified number of
// workers and buffer size.
func NewPool(numWorkers, bufferSize int, checkFunc CheckFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers: numWorkers,
		bufferSize: bufferSize,
		workChan:   make(chan Item, bufferSize),
		resultChan: make(chan Result, bufferSize),
		checkFunc:  checkFunc,
	}
}

// NewPoolWithOptions creates a new worker pool using functional
// options. checkFunc is required; other settings have sensible
// defaults: 1 worker, buffer size of 10.
func NewPoolWithOptions(checkFunc CheckFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		checkFunc:  checkFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan Item, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker checks items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without checking
		}
		p.resultChan <- p.checkFunc(item)
	}
}

// Submit submits a candidate for checking.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item Item) {
	p.workChan <- item
}

// TrySubmit attempts to submit a candidate without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item Item) bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop checking new items.
// Items already in the channel will be drained but not checked.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all
// workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading verdicts.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
