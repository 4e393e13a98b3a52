package ui

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/yllada/trayapp/common"
	"github.com/yllada/trayapp/config"
	"github.com/yllada/trayapp/loop"
)

var errNotStarted = errors.New("application not started")

// Application is the GTK application and the UI event loop of the process.
// Work from other goroutines reaches it through Schedule.
type Application struct {
	app      *adw.Application
	queue    *loop.Queue
	config   *config.Config
	notifier common.Notifier
	args     []string

	started     atomic.Bool
	activations int
	relaunch    func(ui loop.UI)
}

// NewApplication creates the application. args are handed to GTK on Run.
func NewApplication(cfg *config.Config, args []string) *Application {
	a := &Application{
		app:      adw.NewApplication(common.AppID, gio.ApplicationFlagsNone),
		config:   cfg,
		notifier: NewDesktopNotifier(),
		args:     args,
	}
	a.queue = loop.NewQueue(a.wake)

	a.app.ConnectStartup(a.onStartup)
	a.app.ConnectActivate(a.onActivate)
	return a
}

// wake asks GTK to drain the queue on the main loop. Before startup the
// request is dropped; onStartup kicks the queue instead.
func (a *Application) wake() {
	if !a.started.Load() {
		return
	}
	glib.IdleAdd(func() {
		a.queue.Drain()
	})
}

func (a *Application) onStartup() {
	a.ApplyTheme(a.config.Theme)
	LoadStyles()

	a.started.Store(true)
	a.queue.Kick()
	common.LogDebug("GTK application started")
}

// onActivate runs once for the primary launch and again whenever the
// binary is started while this instance is running.
func (a *Application) onActivate() {
	a.activations++
	if a.activations == 1 || a.relaunch == nil {
		return
	}
	if err := a.queue.Schedule(a.relaunch); err != nil {
		common.LogWarn("Could not handle relaunch: %v", err)
	}
}

// Schedule implements loop.Scheduler.
func (a *Application) Schedule(task loop.Task) error {
	return a.queue.Schedule(task)
}

// Register registers the application on the session bus. For the primary
// instance this emits startup. A remote instance only forwards activation
// when Run is called.
func (a *Application) Register() (bool, error) {
	if err := a.app.Register(context.Background()); err != nil {
		return false, err
	}
	return a.app.IsRemote(), nil
}

// KeepAlive holds the application so it keeps running with no window.
func (a *Application) KeepAlive() {
	a.app.Hold()
}

// OnRelaunch registers the handler for second launches. Call before Run.
func (a *Application) OnRelaunch(f func(ui loop.UI)) {
	a.relaunch = f
}

// Run runs the GTK main loop until Quit.
func (a *Application) Run() int {
	code := a.app.Run(a.args)
	a.queue.Close()
	return code
}

// Quit stops the main loop. Safe from any goroutine.
func (a *Application) Quit() {
	err := a.queue.Schedule(func(ui loop.UI) {
		loop.MustUI(ui, "Application.Quit")
		a.app.Quit()
	})
	if err != nil {
		common.LogDebug("Quit ignored: %v", err)
	}
}

// NewWindow builds the main window. It implements window.Factory.
func (a *Application) NewWindow() (common.Window, error) {
	if !a.started.Load() {
		return nil, errNotStarted
	}
	return NewMainWindow(a), nil
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	manager := adw.StyleManagerGetDefault()
	if manager == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		manager.SetColorScheme(adw.ColorSchemeForceLight)
	case common.ThemeDark:
		manager.SetColorScheme(adw.ColorSchemeForceDark)
	default:
		manager.SetColorScheme(adw.ColorSchemeDefault)
	}
}
