package state

import (
	"testing"
	"time"

	"crescent-wallet/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestWalletStartsEmpty(t *testing.T) {
	s := NewWallet()
	_, ok := s.Snapshot()
	assert.False(t, ok)

	b, preview := s.DisplayBalance()
	assert.Zero(t, b)
	assert.False(t, preview)
}

func TestApplyReplacesWholesale(t *testing.T) {
	s := NewWallet()
	s.Apply(domain.Wallet{WalletAddress: "CRW-A", Balance: 50, LastUpdated: time.Now()})
	s.Apply(domain.Wallet{WalletAddress: "CRW-B", Balance: 75})

	w, ok := s.Snapshot()
	assert.True(t, ok)
	assert.Equal(t, "CRW-B", w.WalletAddress)
	assert.Equal(t, 75.0, w.Balance)
	assert.True(t, w.LastUpdated.IsZero(), "snapshot is replaced, never merged")
}

func TestPreviewIsNotAuthoritative(t *testing.T) {
	s := NewWallet()
	s.Apply(domain.Wallet{Balance: 100})

	s.SetPreviewBalance(89.5)
	b, preview := s.DisplayBalance()
	assert.Equal(t, 89.5, b)
	assert.True(t, preview)

	// the snapshot itself is untouched by the preview
	w, _ := s.Snapshot()
	assert.Equal(t, 100.0, w.Balance)

	// the next authoritative apply supersedes the preview
	s.Apply(domain.Wallet{Balance: 90})
	b, preview = s.DisplayBalance()
	assert.Equal(t, 90.0, b)
	assert.False(t, preview)
}

func TestClear(t *testing.T) {
	s := NewWallet()
	s.Apply(domain.Wallet{Balance: 10})
	s.SetPreviewBalance(5)

	s.Clear()
	_, ok := s.Snapshot()
	assert.False(t, ok)
	b, preview := s.DisplayBalance()
	assert.Zero(t, b)
	assert.False(t, preview)
}
