// Package state holds the application state shared by background tasks.
//
// The state never reaches into the UI directly. It keeps a weak handle to
// the current window and pushes updates through the UI queue.
package state

import (
	"context"
	"time"

	"github.com/yllada/trayapp/common"
	"github.com/yllada/trayapp/loop"
	"github.com/yllada/trayapp/window"
	"github.com/yllada/trayapp/worker"
	"golang.org/x/sync/semaphore"
)

// Shared is the process-wide state holder. The zero value is not usable;
// create it with New. A *Shared may be copied freely between goroutines.
type Shared struct {
	lock    *semaphore.Weighted
	handle  window.Handle
	hasWin  bool
	view    common.ViewState
	runtime worker.Spawner
	ui      loop.Scheduler
}

// New returns the state holder. Background work runs on rt and UI work is
// handed to ui.
func New(rt worker.Spawner, ui loop.Scheduler, version string) *Shared {
	return &Shared{
		lock:    semaphore.NewWeighted(1),
		runtime: rt,
		ui:      ui,
		view: common.ViewState{
			AppName:   common.AppName,
			Version:   version,
			StartedAt: time.Now(),
		},
	}
}

// RegisterWindow records h in the background. It never blocks the caller,
// which is usually the UI thread.
func (s *Shared) RegisterWindow(h window.Handle) {
	err := s.runtime.Spawn(func(ctx context.Context) {
		if err := s.Register(ctx, h); err != nil {
			common.LogWarn("Window %s registration failed: %v", h.ID(), err)
		}
	})
	if err != nil {
		common.LogWarn("Could not schedule window registration: %v", err)
	}
}

// Register stores h and schedules the deferred UI initialisation of the
// window. The lock covers the in-memory update only; it is released before
// anything is handed to the UI thread.
func (s *Shared) Register(ctx context.Context, h window.Handle) error {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return err
	}
	s.handle = h
	s.hasWin = true
	s.view.WindowsCreated++
	view := s.view
	s.lock.Release(1)

	common.LogDebug("Registered window %s", h.ID())

	return s.ui.Schedule(func(ui loop.UI) {
		inst, ok := h.Upgrade()
		if !ok {
			common.LogDebug("Window %s gone before initialisation", h.ID())
			return
		}
		inst.Apply(ui, view)
	})
}

// Window returns the handle of the most recently registered window.
func (s *Shared) Window(ctx context.Context) (window.Handle, bool, error) {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return window.Handle{}, false, err
	}
	defer s.lock.Release(1)
	return s.handle, s.hasWin, nil
}

// View returns a copy of the view state.
func (s *Shared) View(ctx context.Context) (common.ViewState, error) {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return common.ViewState{}, err
	}
	defer s.lock.Release(1)
	return s.view, nil
}
