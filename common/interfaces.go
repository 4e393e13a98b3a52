// Package common provides shared constants, types, and utilities
// used across the tray application.
package common

import (
	"fmt"
	"time"
)

// Window is the toolkit window the application shows.
// Every method must be called on the UI thread.
type Window interface {
	// Present shows the window and raises it to the front.
	Present()
	// IsVisible reports whether the window is currently shown.
	IsVisible() bool
	// Apply renders the background-held view state into the window.
	Apply(view ViewState)
	// OnDestroyed registers a callback invoked once the toolkit has
	// destroyed the window.
	OnDestroyed(func())
}

// ViewState is the state the background holder pushes to a freshly
// registered window.
type ViewState struct {
	AppName        string
	Version        string
	StartedAt      time.Time
	WindowsCreated int
}

// Summary returns the one-line description shown by the window.
func (v ViewState) Summary() string {
	started := "just now"
	if !v.StartedAt.IsZero() {
		started = "since " + v.StartedAt.Format("15:04")
	}
	opened := "once"
	if v.WindowsCreated != 1 {
		opened = fmt.Sprintf("%d times", v.WindowsCreated)
	}
	return fmt.Sprintf("Running in the background %s. Window created %s.", started, opened)
}

// Notifier defines the interface for sending notifications.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(title, message string) error
}
