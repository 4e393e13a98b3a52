// Package window owns the lifecycle of the single application window:
// create it once, reuse it thereafter, and hand out weak handles only.
package window

import (
	"fmt"

	"github.com/yllada/trayapp/common"
	"github.com/yllada/trayapp/loop"
)

// Factory constructs toolkit windows. UI-thread only.
type Factory interface {
	NewWindow() (common.Window, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func() (common.Window, error)

// NewWindow calls f.
func (f FactoryFunc) NewWindow() (common.Window, error) {
	return f()
}

// Registrar is told about every newly created window. RegisterWindow must
// not block the UI thread.
type Registrar interface {
	RegisterWindow(h Handle)
}

// Slot is the process-wide registry entry for the window. It holds the only
// strong reference and is touched from the UI thread only.
type Slot struct {
	current *Instance
}

// Current returns the live instance, if any.
func (s *Slot) Current(ui loop.UI) (*Instance, bool) {
	loop.MustUI(ui, "Slot.Current")
	if s.current == nil || !s.current.Alive() {
		return nil, false
	}
	return s.current, true
}

// Manager implements open-or-show on top of a Slot.
type Manager struct {
	slot      *Slot
	factory   Factory
	registrar Registrar
	ui        loop.Scheduler
}

// NewManager returns a manager storing its window in slot. Destroyed windows
// are forgotten through ui.
func NewManager(slot *Slot, factory Factory, registrar Registrar, ui loop.Scheduler) *Manager {
	return &Manager{
		slot:      slot,
		factory:   factory,
		registrar: registrar,
		ui:        ui,
	}
}

// OpenOrShow presents the existing window, or creates, registers and
// presents a new one. A window that cannot be created is logged and
// skipped so the tray stays usable.
func (m *Manager) OpenOrShow(ui loop.UI) {
	loop.MustUI(ui, "Manager.OpenOrShow")

	if inst, ok := m.slot.Current(ui); ok {
		common.LogDebug("Reusing window %s", inst.ID())
		inst.win.Present()
		return
	}

	inst, err := m.create()
	if err != nil {
		common.LogWarn("Could not open window: %v", err)
		return
	}

	m.slot.current = inst
	common.LogInfo("Created window %s", inst.ID())

	if m.registrar != nil {
		m.registrar.RegisterWindow(NewHandle(inst))
	}
	inst.win.Present()
}

func (m *Manager) create() (*Instance, error) {
	win, err := m.factory.NewWindow()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrWindowCreate, err)
	}
	if win == nil {
		return nil, common.ErrWindowCreate
	}

	inst := newInstance(win)
	h := NewHandle(inst)
	win.OnDestroyed(func() {
		// The toolkit keeps this closure alive as long as the window, so it
		// must not hold the instance strongly.
		inst := h.ptr.Value()
		if inst == nil {
			return
		}
		inst.markDestroyed()
		common.LogDebug("Window %s destroyed", h.ID())
		if err := m.ui.Schedule(func(ui loop.UI) { m.forget(ui, h) }); err != nil {
			common.LogDebug("Could not schedule slot cleanup: %v", err)
		}
	})
	return inst, nil
}

// forget empties the slot if it still holds the window identified by h.
func (m *Manager) forget(ui loop.UI, h Handle) {
	loop.MustUI(ui, "Manager.forget")
	if m.slot.current != nil && m.slot.current.id == h.ID() {
		m.slot.current = nil
	}
}

// Current returns the live window instance, if any.
func (m *Manager) Current(ui loop.UI) (*Instance, bool) {
	return m.slot.Current(ui)
}
