package tray

import (
	"errors"
	"sync"

	"fyne.io/systray"
	"github.com/yllada/trayapp/common"
)

var errSecondIcon = errors.New("systray supports a single icon per process")

// SystrayBackend implements Backend on fyne.io/systray. The host event loop
// stays in charge: systray is started with RunWithExternalLoop.
type SystrayBackend struct {
	mu      sync.Mutex
	created bool
	onTray  func(Event)
	onMenu  func(MenuEvent)
	probe   func() error
}

// NewSystrayBackend returns the systray backend for this platform.
func NewSystrayBackend() *SystrayBackend {
	return &SystrayBackend{probe: probeHost}
}

// SetTrayHandler implements Backend.
func (b *SystrayBackend) SetTrayHandler(f func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onTray = f
}

// SetMenuHandler implements Backend.
func (b *SystrayBackend) SetMenuHandler(f func(MenuEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onMenu = f
}

func (b *SystrayBackend) trayEvent(e Event) {
	b.mu.Lock()
	f := b.onTray
	b.mu.Unlock()
	if f != nil {
		f(e)
	}
}

func (b *SystrayBackend) menuEvent(e MenuEvent) {
	b.mu.Lock()
	f := b.onMenu
	b.mu.Unlock()
	if f != nil {
		f(e)
	}
}

// Create implements Backend. The icon appears once systray reports ready.
func (b *SystrayBackend) Create(opts Options) (Icon, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.created {
		return nil, errSecondIcon
	}

	if err := b.probe(); err != nil {
		return nil, err
	}

	var data []byte
	if opts.Icon != nil {
		var err error
		if data, err = opts.Icon.TrayBytes(); err != nil {
			return nil, err
		}
	}

	ic := &systrayIcon{done: make(chan struct{})}
	start, end := systray.RunWithExternalLoop(func() {
		b.ready(opts, data, ic)
	}, func() {
		common.LogDebug("Systray stopped")
	})
	ic.end = end

	systray.SetOnTapped(func() {
		b.trayEvent(Event{Kind: KindClick, Button: ButtonPrimary})
	})
	systray.SetOnSecondaryTapped(func() {
		b.trayEvent(Event{Kind: KindClick, Button: ButtonSecondary})
	})

	start()
	b.created = true
	return ic, nil
}

// ready builds the icon and menu. systray calls it on its own goroutine.
func (b *SystrayBackend) ready(opts Options, data []byte, ic *systrayIcon) {
	if data != nil {
		systray.SetIcon(data)
	}
	systray.SetTitle(opts.Tooltip)
	systray.SetTooltip(opts.Tooltip)

	clicks := make(chan MenuID)
	for _, item := range opts.Menu.Items {
		mi := systray.AddMenuItem(item.Label, item.Tooltip)
		if !item.Enabled {
			mi.Disable()
		}
		go forward(mi.ClickedCh, item.ID, clicks, ic.done)
	}

	go func() {
		for {
			select {
			case id := <-clicks:
				b.menuEvent(MenuEvent{ID: id})
			case <-ic.done:
				return
			}
		}
	}()

	common.LogDebug("Systray ready with %d menu items", len(opts.Menu.Items))
}

// forward turns the clicks of one systray item into menu IDs.
func forward(clicked <-chan struct{}, id MenuID, out chan<- MenuID, done <-chan struct{}) {
	for {
		select {
		case <-clicked:
			select {
			case out <- id:
			case <-done:
				return
			}
		case <-done:
			return
		}
	}
}

type systrayIcon struct {
	once sync.Once
	end  func()
	done chan struct{}
}

// Destroy stops systray, which removes the icon.
func (i *systrayIcon) Destroy() {
	i.once.Do(func() {
		close(i.done)
		if i.end != nil {
			i.end()
		}
		common.LogDebug("Tray icon removed")
	})
}
