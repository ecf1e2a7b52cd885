package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crescent-wallet/internal/core/ports"
	"crescent-wallet/pkg/apperror"
	"crescent-wallet/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCredStore struct {
	token string
}

func (m *memCredStore) LoadToken() (string, error) { return m.token, nil }
func (m *memCredStore) SaveToken(t string) error   { m.token = t; return nil }
func (m *memCredStore) ClearToken() error          { m.token = ""; return nil }

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *memCredStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	creds := &memCredStore{}
	log := logger.NewWithWriter("error", testWriter{t})
	return NewClient(srv.URL, 5*time.Second, creds, log), creds, srv
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestBearerTokenReadAtCallTime(t *testing.T) {
	var seen []string
	client, creds, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Write([]byte(`{"status":"success","message":"ok","data":{"balance":1}}`))
	})

	// no token: unauthenticated request
	_, err := client.GetWallet(context.Background())
	require.NoError(t, err)

	// token set after client construction must still be attached
	creds.token = "tok-late"
	_, err = client.GetWallet(context.Background())
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Empty(t, seen[0])
	assert.Equal(t, "Bearer tok-late", seen[1])
}

func TestRequestIDAttached(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"status":"success","message":"ok"}`))
	})
	_, err := client.GetPendingTransactions(context.Background())
	require.NoError(t, err)
}

func TestUnauthorizedPurgesTokenAndNotifies(t *testing.T) {
	client, creds, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	creds.token = "stale"

	var notified int
	client.OnUnauthorized(func() { notified++ })

	// a 401 from any endpoint tears the session down
	_, err := client.GetBlocks(context.Background(), 10, 0)
	assert.True(t, apperror.IsUnauthorized(err))
	assert.Empty(t, creds.token)
	assert.Equal(t, 1, notified)

	_, err = client.GetSystemLogStats(context.Background())
	assert.True(t, apperror.IsUnauthorized(err))
	assert.Equal(t, 2, notified)
}

func TestEnvelopeErrorOnHTTP200(t *testing.T) {
	client, creds, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"insufficient balance","error":"INSUFFICIENT_FUNDS"}`))
	})
	creds.token = "tok"

	_, err := client.SendTransaction(context.Background(), ports.SendParams{
		SenderWallet: "A", ReceiverWallet: "B", Amount: 10, Fee: 0.1,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindRemote, apperror.KindOf(err))
	// logical failures leave the session untouched
	assert.Equal(t, "tok", creds.token)
}

func TestServerErrorIsTransient(t *testing.T) {
	client, creds, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	creds.token = "tok"

	_, err := client.GetWallet(context.Background())
	assert.True(t, apperror.IsTransient(err))
	assert.Equal(t, "tok", creds.token, "transient failures never touch the session")
}

func TestNetworkFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	client := NewClient(srv.URL, time.Second, &memCredStore{}, logger.NewWithWriter("error", testWriter{t}))

	_, err := client.GetWallet(context.Background())
	assert.True(t, apperror.IsTransient(err))
}

func TestHistoryQueryParams(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/transaction/history", r.URL.Path)
		assert.Equal(t, "CRW-A", q.Get("wallet_address"))
		assert.Equal(t, "25", q.Get("limit"))
		assert.Equal(t, "50", q.Get("offset"))
		w.Write([]byte(`{"status":"success","message":"ok","data":{"transactions":[
			{"transaction_hash":"h1","sender_wallet":"CRW-A","amount":5,"status":"confirmed","transaction_type":"transfer"}
		]}}`))
	})

	txns, err := client.GetTransactionHistory(context.Background(), "CRW-A", 25, 50)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "h1", txns[0].TransactionHash)
	assert.True(t, txns[0].IsOutgoing("CRW-A"))
}

func TestLoginDecodesTokenAndUser(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"status":"success","message":"logged in","data":{
			"token":"jwt-abc","user":{"id":"u1","email":"a@b.c","full_name":"Test User"}
		}}`))
	})

	res, err := client.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, "Test User", res.User.FullName)
}
