// Package worker provides the background runtime that runs asynchronous
// tasks away from the UI thread.
package worker

import (
	"context"
	"sync"

	"github.com/yllada/trayapp/common"
	"golang.org/x/sync/errgroup"
)

// Spawner runs fire-and-forget tasks in the background.
type Spawner interface {
	Spawn(task func(ctx context.Context)) error
}

// Runtime is a fixed pool of worker goroutines draining a FIFO task list.
// Spawn never blocks, so the UI thread can hand work over freely.
type Runtime struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group

	mu     sync.Mutex
	tasks  []func(ctx context.Context)
	closed bool
	signal chan struct{}
}

// New starts a runtime with the given number of workers (at least one).
func New(workers int) *Runtime {
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)

	r := &Runtime{
		ctx:    gctx,
		cancel: cancel,
		group:  group,
		signal: make(chan struct{}, 1),
	}
	for i := 0; i < workers; i++ {
		group.Go(r.work)
	}

	common.LogDebug("Background runtime started with %d worker(s)", workers)
	return r
}

// Spawn queues task. It returns common.ErrRuntimeClosed after Close.
func (r *Runtime) Spawn(task func(ctx context.Context)) error {
	if task == nil {
		return nil
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return common.ErrRuntimeClosed
	}
	r.tasks = append(r.tasks, task)
	r.mu.Unlock()

	r.notify()
	return nil
}

func (r *Runtime) notify() {
	select {
	case r.signal <- struct{}{}:
	default:
	}
}

// next pops the oldest task.
func (r *Runtime) next() (func(ctx context.Context), bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.tasks) == 0 {
		return nil, false
	}
	task := r.tasks[0]
	r.tasks[0] = nil
	r.tasks = r.tasks[1:]
	if len(r.tasks) > 0 {
		// Let another idle worker pick up the rest.
		r.notify()
	}
	return task, true
}

func (r *Runtime) work() error {
	for {
		for {
			task, ok := r.next()
			if !ok {
				break
			}
			if r.ctx.Err() != nil {
				return nil
			}
			r.run(task)
		}

		select {
		case <-r.ctx.Done():
			return nil
		case <-r.signal:
		}
	}
}

func (r *Runtime) run(task func(ctx context.Context)) {
	defer func() {
		if rec := recover(); rec != nil {
			common.LogError("Background task panicked: %v", rec)
		}
	}()
	task(r.ctx)
}

// Close stops accepting tasks, cancels the runtime context and waits for
// running tasks to return. Pending tasks are dropped.
func (r *Runtime) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	dropped := len(r.tasks)
	r.tasks = nil
	r.mu.Unlock()

	if dropped > 0 {
		common.LogDebug("Background runtime dropped %d pending task(s)", dropped)
	}

	r.cancel()
	return r.group.Wait()
}
