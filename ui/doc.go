// Package ui provides the graphical user interface for the tray application.
//
// This package adapts GTK4 and libadwaita to the toolkit-neutral
// interfaces of the rest of the module:
//
//   - Application: the GTK application; implements the app.EventLoop
//     contract and window.Factory
//   - MainWindow: the status window; implements common.Window
//   - DesktopNotifier: freedesktop notifications over D-Bus
//
// # Thread Safety
//
// GTK operations must execute on the main thread. Other goroutines never
// call GTK directly; they schedule a loop.Task, which Application drains
// from a glib idle callback:
//
//	app.Schedule(func(ui loop.UI) {
//	    // Safe to touch windows here
//	    win.Present()
//	})
//
// # Relaunch
//
// The application ID makes GTK single-instance. Starting the binary again
// activates the running instance, which shows its window.
//
// # File Organization
//
//   - app.go: Application lifecycle, UI queue and theme
//   - main_window.go: Main window layout
//   - styles.go: CSS styling
//   - notifications.go: Desktop notification integration
package ui
