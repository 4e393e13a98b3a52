package state

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/yllada/trayapp/common"
	"github.com/yllada/trayapp/loop"
	"github.com/yllada/trayapp/window"
	"github.com/yllada/trayapp/worker"
)

type fakeWindow struct {
	applied   []common.ViewState
	onDestroy func()
}

func (w *fakeWindow) Present() {}

func (w *fakeWindow) IsVisible() bool { return true }

func (w *fakeWindow) Apply(view common.ViewState) { w.applied = append(w.applied, view) }

func (w *fakeWindow) OnDestroyed(f func()) { w.onDestroy = f }

// inlineSpawner runs tasks synchronously so tests stay deterministic.
type inlineSpawner struct{}

func (inlineSpawner) Spawn(task func(ctx context.Context)) error {
	task(context.Background())
	return nil
}

// lockCheckingScheduler records whether the state lock was free whenever
// a task was handed to the UI queue.
type lockCheckingScheduler struct {
	*loop.Queue
	state      *Shared
	lockedOnce bool
}

func (s *lockCheckingScheduler) Schedule(task loop.Task) error {
	if !s.state.lock.TryAcquire(1) {
		s.lockedOnce = true
	} else {
		s.state.lock.Release(1)
	}
	return s.Queue.Schedule(task)
}

// openWindow creates a window through a real manager and returns it with
// the state under test. The manager owns the only strong reference to the
// window, so callers keep it alive for as long as they need the handle.
func openWindow(t *testing.T) (*Shared, *loop.Queue, *fakeWindow, *window.Manager) {
	t.Helper()
	q := loop.NewQueue(nil)
	s := New(inlineSpawner{}, q, "1.2.3")

	fw := &fakeWindow{}
	m := window.NewManager(&window.Slot{}, window.FactoryFunc(func() (common.Window, error) {
		return fw, nil
	}), s, q)

	q.Schedule(m.OpenOrShow)
	q.Drain()
	return s, q, fw, m
}

func TestShared_RegisterAppliesViewOnUIThread(t *testing.T) {
	s, q, fw, m := openWindow(t)
	defer runtime.KeepAlive(m)

	if len(fw.applied) != 0 {
		t.Fatal("view should not be applied before the UI queue drains")
	}
	if n := q.Drain(); n != 1 {
		t.Fatalf("Drain() = %d, want 1 deferred init task", n)
	}
	if len(fw.applied) != 1 {
		t.Fatalf("applied = %d, want 1", len(fw.applied))
	}

	got := fw.applied[0]
	if got.AppName != common.AppName || got.Version != "1.2.3" || got.WindowsCreated != 1 {
		t.Errorf("applied view = %+v", got)
	}

	view, err := s.View(context.Background())
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if view.WindowsCreated != 1 {
		t.Errorf("WindowsCreated = %d, want 1", view.WindowsCreated)
	}
}

func TestShared_WindowHandle(t *testing.T) {
	q := loop.NewQueue(nil)
	s := New(inlineSpawner{}, q, "dev")

	if _, ok, err := s.Window(context.Background()); err != nil || ok {
		t.Errorf("Window() = _, %v, %v, want no window", ok, err)
	}

	s2, _, _, m := openWindow(t)
	defer runtime.KeepAlive(m)
	h, ok, err := s2.Window(context.Background())
	if err != nil || !ok {
		t.Fatalf("Window() = _, %v, %v, want a handle", ok, err)
	}
	if _, alive := h.Upgrade(); !alive {
		t.Error("handle of the open window should upgrade")
	}
}

func TestShared_SkipsDeadWindow(t *testing.T) {
	_, q, fw, m := openWindow(t)
	defer runtime.KeepAlive(m)

	fw.onDestroy()
	q.Drain()

	if len(fw.applied) != 0 {
		t.Errorf("applied = %d, want 0 for a destroyed window", len(fw.applied))
	}
}

func TestShared_LockReleasedBeforeScheduling(t *testing.T) {
	sched := &lockCheckingScheduler{Queue: loop.NewQueue(nil)}
	s := New(inlineSpawner{}, sched, "dev")
	sched.state = s

	fw := &fakeWindow{}
	m := window.NewManager(&window.Slot{}, window.FactoryFunc(func() (common.Window, error) {
		return fw, nil
	}), s, sched.Queue)
	sched.Queue.Schedule(m.OpenOrShow)
	sched.Queue.Drain()

	if sched.lockedOnce {
		t.Error("state lock was held while scheduling UI work")
	}
	if sched.Queue.Len() != 1 {
		t.Errorf("pending UI tasks = %d, want 1", sched.Queue.Len())
	}
	runtime.KeepAlive(m)
}

func TestShared_RegisterHonoursContext(t *testing.T) {
	s := New(inlineSpawner{}, loop.NewQueue(nil), "dev")

	// Hold the lock so Register has to wait.
	if err := s.lock.Acquire(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	defer s.lock.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := s.Register(ctx, window.Handle{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Register() error = %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestShared_RegisterWindowWithRuntime(t *testing.T) {
	rt := worker.New(1)
	defer rt.Close()

	wakes := make(chan struct{}, 1)
	q := loop.NewQueue(func() { wakes <- struct{}{} })
	s := New(rt, q, "dev")

	fw := &fakeWindow{}
	m := window.NewManager(&window.Slot{}, window.FactoryFunc(func() (common.Window, error) {
		return fw, nil
	}), s, q)

	q.Schedule(m.OpenOrShow)
	<-wakes
	q.Drain()

	// The background registration wakes the UI queue again.
	select {
	case <-wakes:
	case <-time.After(2 * time.Second):
		t.Fatal("registration never reached the UI queue")
	}
	q.Drain()

	if len(fw.applied) != 1 {
		t.Errorf("applied = %d, want 1", len(fw.applied))
	}
	runtime.KeepAlive(m)
}

func TestShared_RegisterWindowAfterRuntimeClosed(t *testing.T) {
	rt := worker.New(1)
	rt.Close()

	s := New(rt, loop.NewQueue(nil), "dev")
	s.RegisterWindow(window.Handle{})

	view, err := s.View(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if view.WindowsCreated != 0 {
		t.Errorf("WindowsCreated = %d, want 0", view.WindowsCreated)
	}
}
