package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/trayapp/common"
)

// MainWindow is the single application window. It implements common.Window.
type MainWindow struct {
	app      *Application
	window   *adw.ApplicationWindow
	status   *adw.StatusPage
	version  *gtk.Label
	notified bool
}

// NewMainWindow creates a new main window.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app: app,
	}

	mw.window = adw.NewApplicationWindow(&app.app.Application)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(common.DefaultWindowWidth, common.DefaultWindowHeight)
	mw.window.SetIconName(common.WindowIconName)

	// Closing hides the window; the application keeps running in the tray.
	mw.window.SetHideOnClose(app.config.HideOnClose)
	mw.window.ConnectCloseRequest(mw.onCloseRequest)

	mw.createLayout()

	return mw
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)
	mainBox.Append(adw.NewHeaderBar())

	mw.status = adw.NewStatusPage()
	mw.status.SetIconName(common.WindowIconName)
	mw.status.SetTitle(common.AppName)
	mw.status.SetDescription("Starting…")
	mw.status.SetVExpand(true)

	content := gtk.NewBox(gtk.OrientationVertical, 12)
	content.SetHAlign(gtk.AlignCenter)

	mw.version = gtk.NewLabel("")
	mw.version.AddCSSClass("version-label")
	content.Append(mw.version)

	hideButton := gtk.NewButtonWithLabel("Hide to Tray")
	hideButton.AddCSSClass("pill")
	hideButton.ConnectClicked(func() {
		mw.window.Close()
	})
	content.Append(hideButton)

	mw.status.SetChild(content)
	mainBox.Append(mw.status)

	mw.window.SetContent(mainBox)
}

// onCloseRequest tells the user once that the application is still
// running. Returning false lets GTK hide or destroy the window.
func (mw *MainWindow) onCloseRequest() bool {
	cfg := mw.app.config
	if !cfg.HideOnClose || !cfg.NotifyOnHide || mw.notified {
		return false
	}
	mw.notified = true

	notifier := mw.app.notifier
	go func() {
		err := notifier.Notify(common.AppName, common.AppName+" is still running in the system tray.")
		if err != nil {
			common.LogDebug("Hide notification failed: %v", err)
		}
	}()
	return false
}

// Present shows the window and raises it.
func (mw *MainWindow) Present() {
	mw.window.Present()
}

// IsVisible reports whether the window is shown.
func (mw *MainWindow) IsVisible() bool {
	return mw.window.IsVisible()
}

// Apply renders view into the status page.
func (mw *MainWindow) Apply(view common.ViewState) {
	if view.AppName != "" {
		mw.status.SetTitle(view.AppName)
	}
	mw.status.SetDescription(view.Summary())
	mw.version.SetText(fmt.Sprintf("Version %s", view.Version))
}

// OnDestroyed calls f after GTK destroyed the window.
func (mw *MainWindow) OnDestroyed(f func()) {
	mw.window.ConnectDestroy(f)
}
