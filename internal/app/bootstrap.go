package app

import (
	"context"

	"crescent-wallet/internal/core/ports"
	"crescent-wallet/internal/state"

	"github.com/rs/zerolog"
)

// RunBootstrap reconciles the persisted token with the wallet store:
//
//  1. no persisted token: nothing to do,
//  2. legacy sentinel: purge it, nothing to do,
//  3. otherwise fetch the wallet and apply the snapshot on success.
//
// A fetch failure is silent and non-fatal: the wallet stays empty and the
// session is left alone. A transient network failure must never log the user
// out; only an explicit 401 does that, through the gateway's own handling.
func RunBootstrap(ctx context.Context, creds ports.CredentialStore, gw ports.Gateway, sink ports.WalletSink, log zerolog.Logger) {
	tok, err := creds.LoadToken()
	if err != nil {
		log.Warn().Err(err).Msg("bootstrap: reading persisted token")
		return
	}
	if tok == "" {
		return
	}
	if tok == state.SentinelToken {
		if err := creds.ClearToken(); err != nil {
			log.Warn().Err(err).Msg("bootstrap: purging sentinel token")
		}
		return
	}

	w, err := gw.GetWallet(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("bootstrap: wallet fetch failed, starting with empty wallet")
		return
	}
	sink.Apply(*w)
}

// Bootstrap runs the sequence exactly once per process lifetime.
func (a *App) Bootstrap(ctx context.Context) {
	a.bootOnce.Do(func() {
		RunBootstrap(ctx, a.creds, a.Gateway, a.Wallet, a.Log)
	})
}
