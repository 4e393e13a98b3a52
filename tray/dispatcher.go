package tray

import (
	"slices"
	"sync"

	"github.com/yllada/trayapp/common"
)

// Dispatcher registers one handler per event class with a Backend and fans
// each event out to its listeners in registration order.
type Dispatcher struct {
	mu       sync.RWMutex
	attached bool
	tray     []func(Event)
	menu     []func(MenuEvent)
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Attach installs the dispatcher's handlers on b. Only the first call has
// an effect.
func (d *Dispatcher) Attach(b Backend) {
	d.mu.Lock()
	if d.attached {
		d.mu.Unlock()
		return
	}
	d.attached = true
	d.mu.Unlock()

	b.SetTrayHandler(d.DispatchTray)
	b.SetMenuHandler(d.DispatchMenu)
}

// OnTray adds a listener for icon events.
func (d *Dispatcher) OnTray(f func(Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tray = append(d.tray, f)
}

// OnMenu adds a listener for menu events.
func (d *Dispatcher) OnMenu(f func(MenuEvent)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.menu = append(d.menu, f)
}

// DispatchTray delivers e to every icon listener.
func (d *Dispatcher) DispatchTray(e Event) {
	d.mu.RLock()
	listeners := slices.Clone(d.tray)
	d.mu.RUnlock()

	for _, f := range listeners {
		deliver(func() { f(e) })
	}
}

// DispatchMenu delivers e to every menu listener.
func (d *Dispatcher) DispatchMenu(e MenuEvent) {
	d.mu.RLock()
	listeners := slices.Clone(d.menu)
	d.mu.RUnlock()

	for _, f := range listeners {
		deliver(func() { f(e) })
	}
}

// deliver runs one listener. Listeners run on OS callback threads, so a
// panic is logged and stops there.
func deliver(f func()) {
	defer func() {
		if r := recover(); r != nil {
			common.LogError("Tray listener panicked: %v", r)
		}
	}()
	f()
}
