// Package worker provides a concurrent task execution system with a fixed number of workers.
//
// Submitted tasks are appended to an unbounded FIFO queue which a fixed set of worker
// goroutines drains, so the number of tasks executing at once never exceeds the
// configured maximum, no matter how many tasks are pending. Tasks may submit further
// tasks while they run; Wait returns only after the whole dynamically growing set of
// tasks has completed. Errors returned by tasks and panics raised inside them are
// collected and reported by Wait.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/langproc/langproc/internal/errors"
)

// Task represents a unit of work that can be executed
type Task func() error

// Pool manages concurrent task execution with a fixed number of workers
type Pool struct {
	cond        *sync.Cond
	allErrors   *errors.MultiError
	queue       []Task
	wg          sync.WaitGroup
	workersWg   sync.WaitGroup
	maxWorkers  int
	pending     atomic.Int64
	mu          sync.Mutex
	allErrorsMu sync.RWMutex
	isStopping  atomic.Bool
	isRunning   bool
	closed      bool
}

// NewWorkerPool creates a new worker pool with the specified maximum number of concurrent workers
func NewWorkerPool(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	wp := &Pool{
		maxWorkers: maxWorkers,
		allErrors:  &errors.MultiError{},
	}
	wp.cond = sync.NewCond(&wp.mu)

	return wp
}

// Start launches the workers. Submit calls it on demand.
func (wp *Pool) Start() {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.isRunning {
		return
	}

	wp.isRunning = true
	wp.closed = false
	wp.isStopping.Store(false)

	wp.allErrorsMu.Lock()
	wp.allErrors = &errors.MultiError{}
	wp.allErrorsMu.Unlock()

	wp.workersWg.Add(wp.maxWorkers)

	for range wp.maxWorkers {
		go wp.work()
	}
}

// Submit queues a task. Tasks submitted after Stop or GracefulStop are dropped.
func (wp *Pool) Submit(task Task) {
	if wp.isStopping.Load() {
		return
	}

	wp.Start()

	wp.wg.Add(1)
	wp.pending.Add(1)

	wp.mu.Lock()
	wp.queue = append(wp.queue, task)
	wp.mu.Unlock()

	wp.cond.Signal()
}

// Pending returns the number of submitted tasks that have not finished yet, queued or running.
func (wp *Pool) Pending() int64 {
	return wp.pending.Load()
}

// MaxWorkers returns the number of worker goroutines.
func (wp *Pool) MaxWorkers() int {
	return wp.maxWorkers
}

// Wait blocks until all tasks, including those submitted by running tasks, are completed
// and returns any errors
func (wp *Pool) Wait() error {
	wp.wg.Wait()

	wp.allErrorsMu.RLock()
	defer wp.allErrorsMu.RUnlock()

	return wp.allErrors.ErrorOrNil()
}

// Stop rejects new tasks and lets the workers exit once the queue is drained.
func (wp *Pool) Stop() {
	wp.isStopping.Store(true)

	wp.mu.Lock()
	defer wp.mu.Unlock()

	if !wp.isRunning {
		return
	}

	wp.isRunning = false
	wp.closed = true
	wp.cond.Broadcast()
}

// GracefulStop waits for all tasks to complete, stops the pool and waits for the workers to exit.
func (wp *Pool) GracefulStop() error {
	err := wp.Wait()

	wp.Stop()
	wp.workersWg.Wait()

	return err
}

// IsRunning returns whether the pool is currently running
func (wp *Pool) IsRunning() bool {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	return wp.isRunning
}

// IsStopping returns whether the pool is in the process of stopping
func (wp *Pool) IsStopping() bool {
	return wp.isStopping.Load()
}

func (wp *Pool) work() {
	defer wp.workersWg.Done()

	for {
		wp.mu.Lock()

		for len(wp.queue) == 0 && !wp.closed {
			wp.cond.Wait()
		}

		if len(wp.queue) == 0 {
			wp.mu.Unlock()
			return
		}

		task := wp.queue[0]
		wp.queue[0] = nil
		wp.queue = wp.queue[1:]

		wp.mu.Unlock()

		wp.run(task)
	}
}

func (wp *Pool) run(task Task) {
	defer func() {
		wp.pending.Add(-1)
		wp.wg.Done()
	}()

	defer errors.Recover(wp.appendError)

	wp.appendError(task())
}

// appendError safely appends an error to allErrors
func (wp *Pool) appendError(err error) {
	if err == nil {
		return
	}

	wp.allErrorsMu.Lock()
	wp.allErrors = wp.allErrors.Append(err)
	wp.allErrorsMu.Unlock()
}
