// Package file persists the client's two pieces of durable state: the auth
// token and the theme preference, each under its own fixed key in the state
// directory.
package file

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"crescent-wallet/internal/tokenseal"
)

const (
	tokenKey = "auth_token"

	sealedPrefix = "sealed:v1:"

	dirPerm  = 0o700
	filePerm = 0o600
)

// TokenStore implements ports.CredentialStore on top of a single file.
// When a passphrase is configured the token is sealed at rest.
type TokenStore struct {
	dir        string
	passphrase string
}

// NewTokenStore creates a store rooted at dir. An empty passphrase stores the
// token in plain text.
func NewTokenStore(dir, passphrase string) *TokenStore {
	return &TokenStore{dir: dir, passphrase: passphrase}
}

func (s *TokenStore) path() string {
	return filepath.Join(s.dir, tokenKey)
}

// LoadToken returns the persisted token, or "" when none is stored.
func (s *TokenStore) LoadToken() (string, error) {
	b, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading token file: %w", err)
	}

	raw := strings.TrimSpace(string(b))
	if !strings.HasPrefix(raw, sealedPrefix) {
		return raw, nil
	}

	if s.passphrase == "" {
		return "", errors.New("token is sealed but no passphrase is configured")
	}
	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(raw, sealedPrefix))
	if err != nil {
		return "", fmt.Errorf("decoding sealed token: %w", err)
	}
	tok, err := tokenseal.Open(s.passphrase, blob)
	if err != nil {
		return "", fmt.Errorf("unsealing token: %w", err)
	}
	return tok, nil
}

// SaveToken persists the token, sealing it when a passphrase is configured.
func (s *TokenStore) SaveToken(token string) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	payload := token
	if s.passphrase != "" {
		blob, err := tokenseal.Seal(s.passphrase, token)
		if err != nil {
			return fmt.Errorf("sealing token: %w", err)
		}
		payload = sealedPrefix + base64.StdEncoding.EncodeToString(blob)
	}

	if err := os.WriteFile(s.path(), []byte(payload), filePerm); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// ClearToken removes the persisted token. Clearing an absent token is a
// no-op.
func (s *TokenStore) ClearToken() error {
	err := os.Remove(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
