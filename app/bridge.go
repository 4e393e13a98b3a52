// Package app wires the tray, the window and the background state to the
// UI event loop, and tears them down in order when the loop ends.
package app

import (
	"fmt"
	"sync"

	"github.com/yllada/trayapp/common"
	"github.com/yllada/trayapp/loop"
	"github.com/yllada/trayapp/state"
	"github.com/yllada/trayapp/tray"
	"github.com/yllada/trayapp/window"
	"github.com/yllada/trayapp/worker"
)

// EventLoop is the UI toolkit's main loop.
type EventLoop interface {
	loop.Scheduler
	// Register claims the application identity. It reports true when
	// another process already owns it; Run then only forwards the
	// activation to that process and returns.
	Register() (remote bool, err error)
	// KeepAlive keeps Run from returning when the last window closes.
	KeepAlive()
	// OnRelaunch registers f to run on the UI thread whenever the
	// application is launched again while already running.
	OnRelaunch(f func(ui loop.UI))
	// Run blocks until Quit and returns the exit code.
	Run() int
	// Quit asks Run to return. Safe from any goroutine.
	Quit()
}

// Registry owns the process-wide singletons.
type Registry struct {
	Window window.Slot
	Tray   tray.Slot
}

// Options configure a Bridge.
type Options struct {
	Version     string
	StartHidden bool
}

// Bridge coordinates the tray, the window manager and the background
// runtime around one EventLoop.
type Bridge struct {
	loop    EventLoop
	factory window.Factory
	backend tray.Backend
	opts    Options

	Registry *Registry

	mu      sync.Mutex
	state   *state.Shared
	manager *window.Manager
}

// New returns a bridge. Nothing is started until Run.
func New(l EventLoop, factory window.Factory, backend tray.Backend, opts Options) *Bridge {
	return &Bridge{
		loop:     l,
		factory:  factory,
		backend:  backend,
		opts:     opts,
		Registry: &Registry{},
	}
}

// Run starts the background runtime, installs the tray and runs the event
// loop. It returns the loop's exit code, or an error if the tray could not
// be installed. When Run returns the tray icon is gone and the runtime is
// stopped.
//
// A second launch of the binary installs nothing: it hands the activation
// to the running instance and returns 0.
func (b *Bridge) Run() (int, error) {
	remote, err := b.loop.Register()
	if err != nil {
		return 1, fmt.Errorf("register application: %w", err)
	}
	if remote {
		common.LogInfo("%s is already running, activating it", common.AppName)
		return b.loop.Run(), nil
	}

	rt := worker.New(1)
	defer func() {
		if err := rt.Close(); err != nil {
			common.LogWarn("Background runtime stopped with error: %v", err)
		}
	}()

	shared := state.New(rt, b.loop, b.opts.Version)
	manager := window.NewManager(&b.Registry.Window, b.factory, shared, b.loop)
	controller := tray.NewController(&b.Registry.Tray, b.backend, b.loop, b.loop)

	b.mu.Lock()
	b.state = shared
	b.manager = manager
	b.mu.Unlock()

	b.loop.KeepAlive()

	if err := controller.Install(manager); err != nil {
		return 1, err
	}
	defer b.Registry.Tray.Destroy()

	b.loop.OnRelaunch(func(ui loop.UI) {
		common.LogInfo("Relaunched, showing window")
		manager.OpenOrShow(ui)
	})

	if b.opts.StartHidden {
		common.LogInfo("Starting hidden in the tray")
	} else if err := b.loop.Schedule(manager.OpenOrShow); err != nil {
		common.LogWarn("Could not schedule initial window: %v", err)
	}

	common.LogDebug("Entering UI event loop")
	code := b.loop.Run()
	common.LogInfo("UI event loop finished with code %d", code)
	return code, nil
}

// Quit ends Run. Safe from any goroutine.
func (b *Bridge) Quit() {
	b.loop.Quit()
}

// State returns the shared state once Run has started.
func (b *Bridge) State() *state.Shared {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Manager returns the window manager once Run has started.
func (b *Bridge) Manager() *window.Manager {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.manager
}
