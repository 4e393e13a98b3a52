// Package tray installs the system-tray icon and its menu and routes the
// events they produce.
//
// OS callbacks arrive on arbitrary goroutines. Nothing in this package
// touches windows directly; work for the UI thread is scheduled onto the
// UI queue.
package tray

import (
	"github.com/google/uuid"
	"github.com/yllada/trayapp/icon"
)

// EventKind classifies a tray icon event.
type EventKind int

const (
	KindClick EventKind = iota
	KindDoubleClick
	KindHover
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case KindClick:
		return "click"
	case KindDoubleClick:
		return "double-click"
	case KindHover:
		return "hover"
	default:
		return "unknown"
	}
}

// Button identifies the mouse button of a click.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// String returns the name of the button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Event is an interaction with the tray icon itself.
type Event struct {
	Kind   EventKind
	Button Button
}

// IsPrimaryClick reports whether e is a single primary-button click.
func (e Event) IsPrimaryClick() bool {
	return e.Kind == KindClick && e.Button == ButtonPrimary
}

// MenuID identifies a menu item. IDs are generated once and compared by
// value.
type MenuID uuid.UUID

// NewMenuID returns a fresh random ID.
func NewMenuID() MenuID {
	return MenuID(uuid.New())
}

// String returns the canonical form of the ID.
func (id MenuID) String() string {
	return uuid.UUID(id).String()
}

// MenuEvent is the activation of a menu item.
type MenuEvent struct {
	ID MenuID
}

// MenuItem is an immutable entry of the tray menu.
type MenuItem struct {
	ID      MenuID
	Label   string
	Tooltip string
	Enabled bool
}

// Menu is the context menu attached to the tray icon.
type Menu struct {
	Items []MenuItem
}

// Options describe the icon a Backend creates.
type Options struct {
	Tooltip string
	Icon    *icon.Icon
	Menu    Menu
}
