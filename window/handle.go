package window

import (
	"sync/atomic"
	"weak"

	"github.com/google/uuid"
	"github.com/yllada/trayapp/common"
	"github.com/yllada/trayapp/loop"
)

// Instance is the single application window together with its identity.
// Only the registry slot holds it strongly.
type Instance struct {
	id        uuid.UUID
	win       common.Window
	destroyed atomic.Bool
}

func newInstance(win common.Window) *Instance {
	return &Instance{id: uuid.New(), win: win}
}

// ID identifies the window for the lifetime of the process.
func (i *Instance) ID() uuid.UUID {
	return i.id
}

// Alive reports whether the toolkit window still exists.
func (i *Instance) Alive() bool {
	return !i.destroyed.Load()
}

// Window returns the toolkit window. UI-thread only.
func (i *Instance) Window(ui loop.UI) common.Window {
	loop.MustUI(ui, "Instance.Window")
	return i.win
}

// Apply pushes view state into the window. UI-thread only.
func (i *Instance) Apply(ui loop.UI, view common.ViewState) {
	loop.MustUI(ui, "Instance.Apply")
	i.win.Apply(view)
}

func (i *Instance) markDestroyed() {
	i.destroyed.Store(true)
}

// Handle is a non-owning reference to an Instance.
type Handle struct {
	ptr weak.Pointer[Instance]
	id  uuid.UUID
}

// NewHandle returns a weak handle to inst.
func NewHandle(inst *Instance) Handle {
	return Handle{ptr: weak.Make(inst), id: inst.id}
}

// ID returns the identity of the referenced window, even if it is gone.
func (h Handle) ID() uuid.UUID {
	return h.id
}

// Upgrade returns the instance only if it has not been collected and the
// toolkit window has not been destroyed.
func (h Handle) Upgrade() (*Instance, bool) {
	inst := h.ptr.Value()
	if inst == nil || !inst.Alive() {
		return nil, false
	}
	return inst, true
}
