package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Task is one unit of work, identified for logging and metrics.
type Task struct {
	ID string
	Fn func(ctx context.Context) error
}

// Pool runs tasks on a fixed number of worker goroutines. Peak concurrency
// is capped at the worker count; submission blocks once the queue is full,
// so a caller feeding tasks in order never over-commits the pool.
type Pool struct {
	workers   int
	taskQueue chan Task
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	started   atomic.Bool
	stopped   atomic.Bool
	metrics   Metrics
}

// NewPool creates a pool with the given worker count and queue capacity.
func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = workers
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:   workers,
		taskQueue: make(chan Task, queueSize),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() error {
	if !p.started.CompareAndSwap(false, true) {
		return fmt.Errorf("pool already started")
	}

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run()
		}()
	}
	return nil
}

// Submit queues a task, blocking while the queue is full. It fails once
// the pool has been closed.
func (p *Pool) Submit(task Task) error {
	if p.stopped.Load() {
		return fmt.Errorf("pool is closed")
	}
	if !p.started.Load() {
		return fmt.Errorf("pool not started")
	}

	select {
	case p.taskQueue <- task:
		p.metrics.submitted.Add(1)
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// Close stops accepting tasks and waits for queued work to drain.
func (p *Pool) Close() {
	if !p.stopped.CompareAndSwap(false, true) {
		return
	}
	close(p.taskQueue)
	p.wg.Wait()
	p.cancel()
}

// Stats returns a snapshot of pool counters.
func (p *Pool) Stats() Stats {
	return p.metrics.snapshot()
}

func (p *Pool) run() {
	for {
		select {
		case task, ok := <-p.taskQueue:
			if !ok {
				return
			}
			p.execute(task)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) execute(task Task) {
	active := p.metrics.active.Add(1)
	p.metrics.recordPeak(active)
	defer p.metrics.active.Add(-1)

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		err = task.Fn(p.ctx)
	}()

	if err != nil {
		p.metrics.failed.Add(1)
	} else {
		p.metrics.completed.Add(1)
	}
}
