// Package app is the composition root: it owns the three state stores,
// wires the gateway's unauthorized signal to the session teardown, and runs
// the bootstrap sequence.
package app

import (
	"context"
	"sync"

	"crescent-wallet/config"
	"crescent-wallet/internal/adapter/api"
	"crescent-wallet/internal/adapter/storage/file"
	"crescent-wallet/internal/core/ports"
	"crescent-wallet/internal/state"

	"github.com/rs/zerolog"
)

// App holds the wired client. Stores are injected into commands from here;
// nothing reaches them through package globals.
type App struct {
	Log     zerolog.Logger
	Session *state.Session
	Wallet  *state.WalletStore
	UI      *state.UIStore
	Gateway ports.Gateway

	creds    ports.CredentialStore
	bootOnce sync.Once
}

// New wires stores, storage and gateway from configuration. The app is the
// single subscriber to the gateway's unauthorized signal: any 401 tears the
// session down exactly like an explicit logout.
func New(cfg *config.Config, log zerolog.Logger) (*App, error) {
	creds := file.NewTokenStore(cfg.State.Dir, cfg.State.Passphrase)
	prefs := file.NewPrefStore(cfg.State.Dir)

	session, err := state.NewSession(creds)
	if err != nil {
		return nil, err
	}
	ui, err := state.NewUI(prefs)
	if err != nil {
		return nil, err
	}
	wallet := state.NewWallet()

	gw := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, creds, log)

	a := &App{
		Log:     log,
		Session: session,
		Wallet:  wallet,
		UI:      ui,
		Gateway: gw,
		creds:   creds,
	}
	gw.OnUnauthorized(func() {
		log.Warn().Msg("session invalidated by server, logging out")
		session.ForceLogout()
		wallet.Clear()
	})
	return a, nil
}

// Login exchanges credentials for a token, persists it, stores the user
// profile and refreshes the wallet snapshot.
func (a *App) Login(ctx context.Context, email, password string) error {
	res, err := a.Gateway.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.Session.SetToken(res.Token); err != nil {
		return err
	}
	a.Session.SetUser(res.User)

	// best effort: a failed fetch leaves the wallet empty, not the user
	// logged out
	if w, err := a.Gateway.GetWallet(ctx); err == nil {
		a.Wallet.Apply(*w)
	} else {
		a.Log.Debug().Err(err).Msg("wallet fetch after login failed")
	}
	return nil
}

// Logout clears the session and the wallet cache.
func (a *App) Logout() error {
	err := a.Session.Logout()
	a.Wallet.Clear()
	return err
}

// RefreshWallet re-fetches the authoritative snapshot. Pages call it after
// every balance-affecting operation to restore consistency.
func (a *App) RefreshWallet(ctx context.Context) error {
	w, err := a.Gateway.GetWallet(ctx)
	if err != nil {
		return err
	}
	a.Wallet.Apply(*w)
	return nil
}
