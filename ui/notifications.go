// Package ui provides the graphical user interface for the tray application.
// This file contains desktop notifications.
package ui

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/yllada/trayapp/common"
)

const (
	notifyService = "org.freedesktop.Notifications"
	notifyPath    = "/org/freedesktop/Notifications"
	notifyMethod  = notifyService + ".Notify"
)

// urgencyLow is the freedesktop urgency used for informational messages.
const urgencyLow byte = 0

// DesktopNotifier sends notifications over the session bus.
// It implements common.Notifier.
type DesktopNotifier struct {
	AppName string
	Icon    string
}

// NewDesktopNotifier returns a notifier for informational messages.
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{
		AppName: common.AppName,
		Icon:    common.WindowIconName,
	}
}

// Notify displays a notification. It blocks on the bus round trip, so
// callers on the UI thread run it on a goroutine.
func (n *DesktopNotifier) Notify(title, message string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgencyLow),
	}

	var id uint32
	err = conn.Object(notifyService, notifyPath).Call(notifyMethod, 0,
		n.AppName, uint32(0), n.Icon, title, message, []string{}, hints, int32(-1),
	).Store(&id)
	if err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	common.LogDebug("Notification %d sent: %s", id, title)
	return nil
}
