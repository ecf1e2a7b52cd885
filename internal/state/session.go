// Package state holds the client's three mutable stores. Each store is a
// typed state machine owned by the composition root and injected where
// needed; there are no package-level singletons.
package state

import (
	"sync"

	"crescent-wallet/internal/core/domain"
	"crescent-wallet/internal/core/ports"
	"crescent-wallet/pkg/apperror"
)

// SentinelToken is a legacy placeholder credential. It is never valid and is
// purged wherever encountered.
const SentinelToken = "demo-token"

// SessionState is the session machine's state.
type SessionState string

const (
	Anonymous     SessionState = "anonymous"
	Authenticated SessionState = "authenticated"
)

// Session owns the token lifecycle and the user profile. Every transition
// that changes the in-memory token also changes the persisted token in the
// same call; the two never diverge.
type Session struct {
	mu    sync.RWMutex
	creds ports.CredentialStore
	token string // "" means anonymous
	user  *domain.User
}

// NewSession derives the initial state from persisted storage. A persisted
// sentinel token is purged and treated as absent (one-time migration guard).
func NewSession(creds ports.CredentialStore) (*Session, error) {
	s := &Session{creds: creds}

	tok, err := creds.LoadToken()
	if err != nil {
		return s, err
	}
	if tok == SentinelToken {
		if err := creds.ClearToken(); err != nil {
			return s, err
		}
		return s, nil
	}
	s.token = tok
	return s, nil
}

// SetToken transitions Anonymous -> Authenticated. The sentinel is rejected
// and purged from persisted storage. The token is persisted before the
// in-memory state changes; on a persistence failure the machine stays put.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		return apperror.Validation("token must not be empty")
	}
	if token == SentinelToken {
		_ = s.creds.ClearToken()
		s.token = ""
		s.user = nil
		return apperror.Validation("legacy sentinel token is not a valid credential")
	}

	if err := s.creds.SaveToken(token); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Logout transitions to Anonymous: persisted token and in-memory user are
// cleared in the same call.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.creds.ClearToken()
	s.token = ""
	s.user = nil
	return err
}

// ForceLogout is the 401 teardown path. It is equivalent to Logout but never
// fails: by the time it runs the gateway has already purged the persisted
// token, so a storage error here only means there was nothing to remove.
func (s *Session) ForceLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.creds.ClearToken()
	s.token = ""
	s.user = nil
}

// SetUser replaces the user profile wholesale.
func (s *Session) SetUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// User returns the current profile, or nil when anonymous.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the current token and whether one is held.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// IsAuthenticated holds exactly when a token is held.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// State returns the machine's current state, derived from token presence.
func (s *Session) State() SessionState {
	if s.IsAuthenticated() {
		return Authenticated
	}
	return Anonymous
}
