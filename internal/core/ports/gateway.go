package ports

import (
	"context"

	"crescent-wallet/internal/core/domain"
)

// RegisterParams are the inputs for account creation.
type RegisterParams struct {
	Email    string
	FullName string
	CNIC     string
	Password string
}

// RegisterResult is the created-session hint returned by the backend.
type RegisterResult struct {
	UserID        string `json:"user_id"`
	WalletID      string `json:"wallet_id"`
	WalletAddress string `json:"wallet_address"`
}

// LoginResult carries the bearer token and the authenticated user profile.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// SendParams are the inputs for submitting a transfer. Signature is produced
// by the (stubbed) client-side signer.
type SendParams struct {
	SenderWallet   string
	ReceiverWallet string
	Amount         float64
	Fee            float64
	Note           string
	Signature      string
}

// SendReceipt is the submission acknowledgement; the transaction stays
// pending until observed confirmed via re-fetch.
type SendReceipt struct {
	TransactionHash string                   `json:"transaction_hash"`
	Status          domain.TransactionStatus `json:"status"`
}

// Gateway is the sole HTTP boundary: one method per server operation. Every
// call attaches the bearer token read from the credential store at call time.
// A 401 from any method purges the persisted token, notifies the registered
// unauthorized subscriber and returns an apperror with KindUnauthorized;
// callers cannot opt out.
type Gateway interface {
	Register(ctx context.Context, p RegisterParams) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	GetWallet(ctx context.Context) (*domain.Wallet, error)
	GetBalance(ctx context.Context, walletAddress string) (float64, error)

	SendTransaction(ctx context.Context, p SendParams) (*SendReceipt, error)
	GetTransactionHistory(ctx context.Context, walletAddress string, limit, offset int) ([]domain.Transaction, error)
	GetPendingTransactions(ctx context.Context) ([]domain.Transaction, error)

	GetBlocks(ctx context.Context, limit, offset int) ([]domain.Block, error)
	GetBlock(ctx context.Context, hash string) (*domain.BlockDetail, error)
	MineBlock(ctx context.Context, minerAddress string) (*domain.Block, error)

	GetMonthlyReport(ctx context.Context, walletAddress string) ([]domain.MonthlyAggregate, error)
	GetZakatReport(ctx context.Context, walletAddress string) ([]domain.ZakatRecord, error)

	AddBeneficiary(ctx context.Context, beneficiaryWalletID, nickname string) (*domain.Beneficiary, error)
	ListBeneficiaries(ctx context.Context) ([]domain.Beneficiary, error)

	GetSystemLogs(ctx context.Context, logType string, limit, offset int) ([]domain.SystemLog, error)
	GetSystemLogStats(ctx context.Context) (*domain.SystemLogStats, error)
	GetSystemHealth(ctx context.Context) (*domain.SystemHealth, error)
}
