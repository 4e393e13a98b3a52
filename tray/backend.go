package tray

import "sync"

// Icon is a live tray icon.
type Icon interface {
	// Destroy removes the icon from the tray. It is safe to call twice.
	Destroy()
}

// Backend is the platform tray implementation.
type Backend interface {
	// Create shows a tray icon described by opts.
	Create(opts Options) (Icon, error)
	// SetTrayHandler installs the single handler for icon events.
	SetTrayHandler(func(Event))
	// SetMenuHandler installs the single handler for menu events.
	SetMenuHandler(func(MenuEvent))
}

// Slot is the process-wide registry entry for the tray icon.
type Slot struct {
	mu   sync.Mutex
	icon Icon
}

// Installed reports whether the slot holds an icon.
func (s *Slot) Installed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.icon != nil
}

func (s *Slot) set(i Icon) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.icon != nil {
		return false
	}
	s.icon = i
	return true
}

// Destroy removes the icon, if any, and empties the slot.
func (s *Slot) Destroy() {
	s.mu.Lock()
	i := s.icon
	s.icon = nil
	s.mu.Unlock()

	if i != nil {
		i.Destroy()
	}
}
