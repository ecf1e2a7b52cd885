package domain

import "time"

// TransactionStatus is the server-side lifecycle state of a transaction.
// Status transitions (pending -> confirmed|failed) happen server-side and are
// observed only via re-fetch.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
	StatusFailed    TransactionStatus = "failed"
)

// TransactionType distinguishes ordinary transfers from zakat deductions.
type TransactionType string

const (
	TypeTransfer TransactionType = "transfer"
	TypeZakat    TransactionType = "zakat"
)

// Transaction amount and fee bounds enforced client-side before a send
// reaches the network.
const (
	MinTransactionAmount = 0.001
	MaxTransactionAmount = 1_000_000_000
	MaxTransactionFee    = 1_000_000
)

// Transaction is an immutable ledger entry.
type Transaction struct {
	ID              string            `json:"id"`
	TransactionHash string            `json:"transaction_hash"`
	BlockHash       *string           `json:"block_hash,omitempty"`
	SenderWallet    string            `json:"sender_wallet"`
	ReceiverWallet  string            `json:"receiver_wallet"`
	Amount          float64           `json:"amount"`
	Fee             float64           `json:"fee"`
	Note            string            `json:"note,omitempty"`
	Signature       string            `json:"signature"`
	Status          TransactionStatus `json:"status"`
	TransactionType TransactionType   `json:"transaction_type"`
	CreatedAt       time.Time         `json:"created_at"`
}

// IsOutgoing reports whether the transaction debits the given wallet address.
func (t Transaction) IsOutgoing(walletAddress string) bool {
	return t.SenderWallet == walletAddress
}
