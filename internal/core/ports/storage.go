package ports

import "crescent-wallet/internal/core/domain"

// CredentialStore persists the single auth-token string. Load returns ""
// when no token is stored.
type CredentialStore interface {
	LoadToken() (string, error)
	SaveToken(token string) error
	ClearToken() error
}

// PrefStore persists the theme preference flag, independent of credentials.
type PrefStore interface {
	LoadDarkMode() (bool, error)
	SaveDarkMode(on bool) error
}

// WalletSink receives authoritative wallet snapshots. Extracted as a
// capability so the bootstrap sequencer and gateway consumers share the same
// mutation without importing the state package.
type WalletSink interface {
	Apply(w domain.Wallet)
}

// UnauthorizedFunc is invoked by the gateway when any call observes an HTTP
// 401. The composition root registers exactly one subscriber, which performs
// the session teardown.
type UnauthorizedFunc func()
