package tray

import (
	"fmt"
	"sync"

	"github.com/yllada/trayapp/common"
	"github.com/yllada/trayapp/icon"
	"github.com/yllada/trayapp/loop"
)

// Opener shows the application window. It runs on the UI thread.
type Opener interface {
	OpenOrShow(ui loop.UI)
}

// Quitter ends the UI event loop. It may be called from any goroutine.
type Quitter interface {
	Quit()
}

// Controller builds the tray icon and wires its events to the window and
// the event loop.
type Controller struct {
	slot       *Slot
	backend    Backend
	dispatcher *Dispatcher
	ui         loop.Scheduler
	quit       Quitter
	loadIcon   func() (*icon.Icon, error)
	closeID    MenuID

	mu        sync.Mutex
	installed bool
}

// NewController returns a controller that stores its icon in slot.
func NewController(slot *Slot, backend Backend, ui loop.Scheduler, quit Quitter) *Controller {
	return &Controller{
		slot:       slot,
		backend:    backend,
		dispatcher: NewDispatcher(),
		ui:         ui,
		quit:       quit,
		loadIcon:   icon.Load,
		closeID:    NewMenuID(),
	}
}

// CloseID returns the ID of the Close menu item.
func (c *Controller) CloseID() MenuID {
	return c.closeID
}

// Dispatcher returns the event dispatcher, for adding listeners.
func (c *Controller) Dispatcher() *Dispatcher {
	return c.dispatcher
}

// Install creates the tray icon with its Close menu. A primary click opens
// windows; Close quits the event loop. Install succeeds at most once.
func (c *Controller) Install(windows Opener) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.installed || c.slot.Installed() {
		return common.ErrTrayInstalled
	}

	img, err := c.loadIcon()
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrTrayCreate, err)
	}

	opts := Options{
		Tooltip: common.TrayTooltip,
		Icon:    img,
		Menu: Menu{Items: []MenuItem{{
			ID:      c.closeID,
			Label:   common.CloseLabel,
			Tooltip: common.CloseTooltip,
			Enabled: true,
		}}},
	}

	ic, err := c.backend.Create(opts)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrTrayCreate, err)
	}
	if !c.slot.set(ic) {
		ic.Destroy()
		return common.ErrTrayInstalled
	}
	c.installed = true

	c.dispatcher.Attach(c.backend)
	c.dispatcher.OnTray(func(e Event) { c.handleTray(e, windows) })
	c.dispatcher.OnMenu(c.handleMenu)

	common.LogInfo("Tray icon installed")
	return nil
}

func (c *Controller) handleTray(e Event, windows Opener) {
	if !e.IsPrimaryClick() {
		common.LogDebug("Ignoring tray %s (%s)", e.Kind, e.Button)
		return
	}
	if err := c.ui.Schedule(windows.OpenOrShow); err != nil {
		common.LogWarn("Could not schedule window: %v", err)
	}
}

func (c *Controller) handleMenu(e MenuEvent) {
	if e.ID != c.closeID {
		common.LogDebug("Ignoring menu item %s", e.ID)
		return
	}
	common.LogInfo("Close requested from tray menu")
	c.quit.Quit()
}
