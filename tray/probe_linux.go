//go:build linux

package tray

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/yllada/trayapp/common"
)

const watcherName = "org.kde.StatusNotifierWatcher"

// probeHost checks the session bus for a StatusNotifier host. Without one
// systray registers fine but nothing is ever drawn.
func probeHost() error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("%w: session bus: %w", common.ErrTrayUnavailable, err)
	}

	var owned bool
	err = conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, watcherName).Store(&owned)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrTrayUnavailable, err)
	}
	if !owned {
		return fmt.Errorf("%w: %s has no owner", common.ErrTrayUnavailable, watcherName)
	}
	return nil
}
