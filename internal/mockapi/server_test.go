package mockapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crescent-wallet/pkg/envelope"
	"crescent-wallet/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t   *testing.T
	srv *Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logger.NewWithWriter("error", testWriter{t})
	return &testEnv{t: t, srv: NewServer("test-secret", time.Hour, log)}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func (e *testEnv) request(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope.Envelope) {
	e.t.Helper()

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(e.t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(w, req)

	var env envelope.Envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (e *testEnv) registerAndLogin(email string) (token, address string) {
	e.t.Helper()

	w, env := e.request(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "full_name": "Test User", "cnic": "12345-1234567-1", "password": "password123",
	})
	require.Equal(e.t, http.StatusCreated, w.Code)
	var reg struct {
		WalletAddress string `json:"wallet_address"`
	}
	require.NoError(e.t, json.Unmarshal(env.Data, &reg))

	w, env = e.request(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "password123",
	})
	require.Equal(e.t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(e.t, json.Unmarshal(env.Data, &login))
	return login.Token, reg.WalletAddress
}

func TestRegisterValidation(t *testing.T) {
	e := newTestEnv(t)

	w, env := e.request(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "not-an-email", "full_name": "X", "cnic": "1", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_EMAIL", env.Error)

	w, env = e.request(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@b.c", "full_name": "X", "cnic": "1", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "WEAK_PASSWORD", env.Error)
}

func TestDuplicateEmail(t *testing.T) {
	e := newTestEnv(t)
	e.registerAndLogin("dup@example.com")

	w, env := e.request(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "dup@example.com", "full_name": "X", "cnic": "1", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_EXISTS", env.Error)
}

func TestLoginBadCredentials(t *testing.T) {
	e := newTestEnv(t)
	e.registerAndLogin("u@example.com")

	w, _ := e.request(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "u@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newTestEnv(t)

	for _, path := range []string{"/api/wallet/profile", "/api/transaction/pending", "/api/system/health"} {
		w, _ := e.request(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w, _ := e.request(http.MethodGet, "/api/wallet/profile", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	log := logger.NewWithWriter("error", testWriter{t})
	srv := NewServer("test-secret", -time.Minute, log)
	e := &testEnv{t: t, srv: srv}
	token, _ := e.registerAndLogin("exp@example.com")

	w, _ := e.request(http.MethodGet, "/api/wallet/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSendAndMineFlow(t *testing.T) {
	e := newTestEnv(t)
	tokenA, addrA := e.registerAndLogin("a@example.com")
	_, addrB := e.registerAndLogin("b@example.com")

	// send debits the sender immediately and queues a pending transaction
	w, env := e.request(http.MethodPost, "/api/transaction/send", tokenA, map[string]interface{}{
		"sender_wallet": addrA, "receiver_wallet": addrB, "amount": 100.0, "fee": 0.5,
		"note": "rent", "signature": "stub",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.OK())

	w, env = e.request(http.MethodGet, "/api/wallet/profile", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var wallet struct {
		Balance float64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &wallet))
	assert.InDelta(t, 500-100-0.5, wallet.Balance, 1e-9)

	// mining confirms the transaction and credits the receiver
	w, _ = e.request(http.MethodPost, "/api/blockchain/mine", "", map[string]string{"miner_address": addrA})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = e.request(http.MethodPost, "/api/wallet/balance", tokenA, map[string]string{"wallet_address": addrB})
	require.Equal(t, http.StatusOK, w.Code)
	var bal struct {
		Balance float64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bal))
	assert.InDelta(t, 600.0, bal.Balance, 1e-9)
}

func TestSendInsufficientBalanceIsLogicalFailure(t *testing.T) {
	e := newTestEnv(t)
	tokenA, addrA := e.registerAndLogin("poor@example.com")
	_, addrB := e.registerAndLogin("rich@example.com")

	w, env := e.request(http.MethodPost, "/api/transaction/send", tokenA, map[string]interface{}{
		"sender_wallet": addrA, "receiver_wallet": addrB, "amount": 10_000.0, "fee": 1.0,
	})
	// logical failure: HTTP 200 with an error envelope
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, env.OK())
	assert.Equal(t, "TRANSACTION_REJECTED", env.Error)
}

func TestSendRejectsOutOfRangeFee(t *testing.T) {
	e := newTestEnv(t)
	tokenA, addrA := e.registerAndLogin("feesender@example.com")
	_, addrB := e.registerAndLogin("feereceiver@example.com")

	for _, fee := range []float64{-100, -0.01, 1_000_001} {
		w, env := e.request(http.MethodPost, "/api/transaction/send", tokenA, map[string]interface{}{
			"sender_wallet": addrA, "receiver_wallet": addrB, "amount": 0.001, "fee": fee,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_FEE", env.Error)
	}

	// a negative fee must never credit the sender
	w, env := e.request(http.MethodPost, "/api/wallet/balance", tokenA, map[string]string{"wallet_address": addrA})
	require.Equal(t, http.StatusOK, w.Code)
	var bal struct {
		Balance float64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bal))
	assert.InDelta(t, 500.0, bal.Balance, 1e-9)
}

func TestHistoryNewestFirst(t *testing.T) {
	e := newTestEnv(t)
	tokenA, addrA := e.registerAndLogin("hist@example.com")
	_, addrB := e.registerAndLogin("peer@example.com")

	for i := 0; i < 3; i++ {
		w, env := e.request(http.MethodPost, "/api/transaction/send", tokenA, map[string]interface{}{
			"sender_wallet": addrA, "receiver_wallet": addrB, "amount": float64(i + 1), "fee": 0.01,
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, env.OK(), env.Message)
	}

	w, env := e.request(http.MethodGet, fmt.Sprintf("/api/transaction/history?wallet_address=%s&limit=2&offset=0", addrA), tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hist struct {
		Transactions []struct {
			Amount float64 `json:"amount"`
		} `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &hist))
	require.Len(t, hist.Transactions, 2)
	assert.Equal(t, 3.0, hist.Transactions[0].Amount)
}

func TestMonthlyAndZakatReports(t *testing.T) {
	e := newTestEnv(t)
	tokenA, addrA := e.registerAndLogin("rep@example.com")
	_, addrB := e.registerAndLogin("peer2@example.com")

	w, env := e.request(http.MethodPost, "/api/transaction/send", tokenA, map[string]interface{}{
		"sender_wallet": addrA, "receiver_wallet": addrB, "amount": 50.0, "fee": 0.5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.OK())

	w, env = e.request(http.MethodGet, "/api/reports/monthly?wallet_address="+addrA, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var monthly struct {
		Months []struct {
			Outgoing float64 `json:"outgoing"`
			Fee      float64 `json:"fee"`
		} `json:"months"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &monthly))
	require.Len(t, monthly.Months, 1)
	assert.Equal(t, 50.0, monthly.Months[0].Outgoing)
	assert.Equal(t, 0.5, monthly.Months[0].Fee)

	w, env = e.request(http.MethodGet, "/api/reports/zakat?wallet_address="+addrA, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var zakat struct {
		Records []struct {
			ZakatAmount float64 `json:"zakat_amount"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &zakat))
	require.Len(t, zakat.Records, 1)
	assert.InDelta(t, (500-50-0.5)*0.025, zakat.Records[0].ZakatAmount, 1e-9)
}

func TestBeneficiaries(t *testing.T) {
	e := newTestEnv(t)
	token, _ := e.registerAndLogin("ben@example.com")

	w, _ := e.request(http.MethodPost, "/api/beneficiary/add", token, map[string]string{
		"beneficiary_wallet_id": "wallet-123", "nickname": "mom",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := e.request(http.MethodGet, "/api/beneficiary/list", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Beneficiaries []struct {
			Nickname string `json:"nickname"`
		} `json:"beneficiaries"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Beneficiaries, 1)
	assert.Equal(t, "mom", list.Beneficiaries[0].Nickname)
}

func TestSystemEndpoints(t *testing.T) {
	e := newTestEnv(t)
	token, _ := e.registerAndLogin("admin@example.com")

	w, env := e.request(http.MethodGet, "/api/system/logs?type=AUTH", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.OK())

	w, env = e.request(http.MethodGet, "/api/system/logs/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.GreaterOrEqual(t, stats.Total, int64(2))

	w, env = e.request(http.MethodGet, "/api/system/health", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var health struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.Equal(t, "ok", health.Status)
}
