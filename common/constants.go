// Package common provides shared constants, types, and utilities
// used across the tray application.
package common

// Application metadata.
const (
	// AppID is the unique identifier for the application. GTK uses it to
	// route a second launch to the running instance.
	AppID = "io.github.yllada.TrayApp"
	// AppName is the display name of the application.
	AppName = "MyApp"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "trayapp"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "trayapp.log"
)

// Tray constants.
const (
	// TrayTooltip is shown when hovering the tray icon.
	TrayTooltip = AppName
	// TrayIconSize is the edge length of the tray icon in pixels.
	TrayIconSize = 22
	// CloseLabel is the label of the tray menu item that quits the application.
	CloseLabel = "Close"
	// CloseTooltip is the tooltip of the Close menu item.
	CloseTooltip = "Quit " + AppName
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 480
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 360
	// WindowIconName is the themed icon name used by the window and status page.
	WindowIconName = "application-x-executable-symbolic"
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
