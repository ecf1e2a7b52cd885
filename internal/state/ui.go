package state

import (
	"sync"

	"crescent-wallet/internal/core/ports"
)

// UIStore holds ephemeral presentation state. The theme flag is persisted
// individually; the sidebar flag is not. Neither interacts with the session
// or wallet stores.
type UIStore struct {
	mu          sync.RWMutex
	prefs       ports.PrefStore
	darkMode    bool
	sidebarOpen bool
}

// NewUI derives the theme from persisted storage; the sidebar starts open.
func NewUI(prefs ports.PrefStore) (*UIStore, error) {
	dark, err := prefs.LoadDarkMode()
	if err != nil {
		return nil, err
	}
	return &UIStore{prefs: prefs, darkMode: dark, sidebarOpen: true}, nil
}

// ToggleDarkMode flips and persists the theme flag in the same call.
func (s *UIStore) ToggleDarkMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := !s.darkMode
	if err := s.prefs.SaveDarkMode(next); err != nil {
		return err
	}
	s.darkMode = next
	return nil
}

// ToggleSidebar flips the ephemeral sidebar flag.
func (s *UIStore) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
}

func (s *UIStore) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

func (s *UIStore) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarOpen
}
