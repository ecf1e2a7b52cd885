package domain

import "time"

// Wallet is the last-known wallet snapshot. Balance is authoritative only as
// of LastUpdated; the client never computes it locally except for explicitly
// non-authoritative display previews.
type Wallet struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	WalletAddress string    `json:"wallet_address"`
	Balance       float64   `json:"balance"`
	LastUpdated   time.Time `json:"last_updated"`
}
