// Package loop provides the cross-thread bridge into the UI event loop.
//
// Background goroutines and OS callbacks never touch UI objects. They hand a
// closure to a Queue, and the UI thread drains the queue once per event-loop
// iteration. Closures receive a UI token proving they run on the UI thread;
// operations that must not run anywhere else require that token.
package loop

import (
	"fmt"
	"sync"

	"github.com/yllada/trayapp/common"
)

// UI is a token that only exists on the UI thread, inside Queue.Drain.
// It cannot be implemented outside this package.
type UI interface {
	uiThread()
}

type uiToken struct{}

func (uiToken) uiThread() {}

// MustUI panics when ui is nil, i.e. when a UI-thread operation was called
// without a token.
func MustUI(ui UI, op string) {
	if ui == nil {
		panic(fmt.Sprintf("loop: %s called off the UI thread", op))
	}
}

// Task is a unit of work scheduled onto the UI thread.
type Task func(ui UI)

// Scheduler hands tasks to the UI thread. Schedule never blocks and never
// runs the task inline.
type Scheduler interface {
	Schedule(task Task) error
}

// Queue is a single-consumer FIFO of UI tasks.
type Queue struct {
	mu     sync.Mutex
	tasks  []Task
	armed  bool
	closed bool
	wake   func()
}

// NewQueue returns a queue that calls wake whenever it goes from empty to
// non-empty. wake may run on any goroutine and must arrange for Drain to run
// on the UI thread, e.g. through an idle callback.
func NewQueue(wake func()) *Queue {
	if wake == nil {
		wake = func() {}
	}
	return &Queue{wake: wake}
}

// Schedule appends task. It is safe to call from any goroutine.
func (q *Queue) Schedule(task Task) error {
	if task == nil {
		return nil
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return common.ErrLoopClosed
	}
	q.tasks = append(q.tasks, task)
	wake := !q.armed
	q.armed = true
	q.mu.Unlock()

	if wake {
		q.wake()
	}
	return nil
}

// Kick calls wake if tasks are pending. Used when the event loop becomes
// ready after tasks were queued.
func (q *Queue) Kick() {
	q.mu.Lock()
	pending := len(q.tasks) > 0 && !q.closed
	if pending {
		q.armed = true
	}
	q.mu.Unlock()

	if pending {
		q.wake()
	}
}

// Drain runs the tasks queued so far, in order, and returns how many ran.
// Tasks scheduled while draining run on the next iteration. Drain must only
// be called from the UI thread.
func (q *Queue) Drain() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.armed = false
	q.mu.Unlock()

	for _, task := range tasks {
		run(task)
	}
	return len(tasks)
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Close rejects further tasks and drops pending ones.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.tasks); n > 0 {
		common.LogDebug("UI queue closed with %d pending tasks", n)
	}
	q.closed = true
	q.tasks = nil
}

// run executes one task. A panicking task must not take the event loop down.
func run(task Task) {
	defer func() {
		if r := recover(); r != nil {
			common.LogError("UI task panicked: %v", r)
		}
	}()
	task(uiToken{})
}
