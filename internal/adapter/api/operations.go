package api

import (
	"context"
	"net/url"
	"strconv"

	"crescent-wallet/internal/core/domain"
	"crescent-wallet/internal/core/ports"
)

// Register creates an account and its wallet.
func (c *Client) Register(ctx context.Context, p ports.RegisterParams) (*ports.RegisterResult, error) {
	body := map[string]string{
		"email":     p.Email,
		"full_name": p.FullName,
		"cnic":      p.CNIC,
		"password":  p.Password,
	}
	var out ports.RegisterResult
	if err := c.post(ctx, "/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out ports.LoginResult
	if err := c.post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWallet fetches the caller's wallet snapshot.
func (c *Client) GetWallet(ctx context.Context) (*domain.Wallet, error) {
	var out domain.Wallet
	if err := c.get(ctx, "/wallet/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBalance fetches the authoritative balance for an address.
func (c *Client) GetBalance(ctx context.Context, walletAddress string) (float64, error) {
	body := map[string]string{"wallet_address": walletAddress}
	var out struct {
		Balance float64 `json:"balance"`
	}
	if err := c.post(ctx, "/wallet/balance", body, &out); err != nil {
		return 0, err
	}
	return out.Balance, nil
}

// SendTransaction submits a transfer for processing.
func (c *Client) SendTransaction(ctx context.Context, p ports.SendParams) (*ports.SendReceipt, error) {
	body := map[string]interface{}{
		"sender_wallet":   p.SenderWallet,
		"receiver_wallet": p.ReceiverWallet,
		"amount":          p.Amount,
		"fee":             p.Fee,
		"note":            p.Note,
		"signature":       p.Signature,
	}
	var out ports.SendReceipt
	if err := c.post(ctx, "/transaction/send", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func paging(limit, offset int) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	return q
}

// GetTransactionHistory fetches the server-ordered (newest first) ledger for
// an address.
func (c *Client) GetTransactionHistory(ctx context.Context, walletAddress string, limit, offset int) ([]domain.Transaction, error) {
	q := paging(limit, offset)
	q.Set("wallet_address", walletAddress)
	var out struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := c.get(ctx, "/transaction/history", q, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// GetPendingTransactions fetches transactions not yet mined into a block.
func (c *Client) GetPendingTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var out struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := c.get(ctx, "/transaction/pending", nil, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// GetBlocks pages through the chain, newest first.
func (c *Client) GetBlocks(ctx context.Context, limit, offset int) ([]domain.Block, error) {
	var out struct {
		Blocks []domain.Block `json:"blocks"`
	}
	if err := c.get(ctx, "/blockchain/blocks", paging(limit, offset), &out); err != nil {
		return nil, err
	}
	return out.Blocks, nil
}

// GetBlock fetches one block and the transactions it contains.
func (c *Client) GetBlock(ctx context.Context, hash string) (*domain.BlockDetail, error) {
	var out domain.BlockDetail
	if err := c.get(ctx, "/blockchain/blocks/"+url.PathEscape(hash), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MineBlock asks the backend to mine pending transactions into a new block.
func (c *Client) MineBlock(ctx context.Context, minerAddress string) (*domain.Block, error) {
	body := map[string]string{"miner_address": minerAddress}
	var out struct {
		Block domain.Block `json:"block"`
	}
	if err := c.post(ctx, "/blockchain/mine", body, &out); err != nil {
		return nil, err
	}
	return &out.Block, nil
}

// GetMonthlyReport fetches the server-computed monthly summaries.
func (c *Client) GetMonthlyReport(ctx context.Context, walletAddress string) ([]domain.MonthlyAggregate, error) {
	q := url.Values{}
	q.Set("wallet_address", walletAddress)
	var out struct {
		Months []domain.MonthlyAggregate `json:"months"`
	}
	if err := c.get(ctx, "/reports/monthly", q, &out); err != nil {
		return nil, err
	}
	return out.Months, nil
}

// GetZakatReport fetches recorded zakat deductions.
func (c *Client) GetZakatReport(ctx context.Context, walletAddress string) ([]domain.ZakatRecord, error) {
	q := url.Values{}
	q.Set("wallet_address", walletAddress)
	var out struct {
		Records []domain.ZakatRecord `json:"records"`
	}
	if err := c.get(ctx, "/reports/zakat", q, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// AddBeneficiary saves a destination wallet under a nickname.
func (c *Client) AddBeneficiary(ctx context.Context, beneficiaryWalletID, nickname string) (*domain.Beneficiary, error) {
	body := map[string]string{
		"beneficiary_wallet_id": beneficiaryWalletID,
		"nickname":              nickname,
	}
	var out domain.Beneficiary
	if err := c.post(ctx, "/beneficiary/add", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBeneficiaries fetches the caller's saved beneficiaries.
func (c *Client) ListBeneficiaries(ctx context.Context) ([]domain.Beneficiary, error) {
	var out struct {
		Beneficiaries []domain.Beneficiary `json:"beneficiaries"`
	}
	if err := c.get(ctx, "/beneficiary/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Beneficiaries, nil
}

// GetSystemLogs fetches admin diagnostics filtered by type ("ALL" for all).
func (c *Client) GetSystemLogs(ctx context.Context, logType string, limit, offset int) ([]domain.SystemLog, error) {
	q := paging(limit, offset)
	q.Set("type", logType)
	var out struct {
		Logs []domain.SystemLog `json:"logs"`
	}
	if err := c.get(ctx, "/system/logs", q, &out); err != nil {
		return nil, err
	}
	return out.Logs, nil
}

// GetSystemLogStats fetches log volume statistics.
func (c *Client) GetSystemLogStats(ctx context.Context) (*domain.SystemLogStats, error) {
	var out domain.SystemLogStats
	if err := c.get(ctx, "/system/logs/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSystemHealth fetches the backend health snapshot.
func (c *Client) GetSystemHealth(ctx context.Context) (*domain.SystemHealth, error) {
	var out domain.SystemHealth
	if err := c.get(ctx, "/system/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
