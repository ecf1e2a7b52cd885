package state

import (
	"sync"

	"crescent-wallet/internal/core/domain"
)

// WalletStore holds the last-known wallet snapshot. It is a display cache,
// not a hardened source of truth: racing fetches resolve by last write wins.
// Apply is the single authoritative mutation; the preview balance is a
// separate, clearly non-authoritative display value that never touches the
// snapshot.
type WalletStore struct {
	mu       sync.RWMutex
	snapshot *domain.Wallet
	preview  *float64
}

// NewWallet creates an empty store; it is populated on bootstrap, login or
// explicit refresh.
func NewWallet() *WalletStore {
	return &WalletStore{}
}

// Apply replaces the entire snapshot and discards any pending preview. It
// implements ports.WalletSink.
func (s *WalletStore) Apply(w domain.Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = &w
	s.preview = nil
}

// Clear empties the store, e.g. on logout.
func (s *WalletStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	s.preview = nil
}

// Snapshot returns a copy of the current snapshot and whether one is held.
func (s *WalletStore) Snapshot() (domain.Wallet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return domain.Wallet{}, false
	}
	return *s.snapshot, true
}

// SetPreviewBalance records a display-only balance, e.g. the send-money cost
// preview. It is superseded by the next Apply.
func (s *WalletStore) SetPreviewBalance(b float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preview = &b
}

// DisplayBalance returns the balance to show and whether it is a preview
// rather than the authoritative snapshot value.
func (s *WalletStore) DisplayBalance() (balance float64, isPreview bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.preview != nil {
		return *s.preview, true
	}
	if s.snapshot != nil {
		return s.snapshot.Balance, false
	}
	return 0, false
}
