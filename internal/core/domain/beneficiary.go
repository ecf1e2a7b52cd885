package domain

import "time"

// Beneficiary is a saved destination wallet.
type Beneficiary struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	BeneficiaryWalletID string    `json:"beneficiary_wallet_id"`
	Nickname            string    `json:"nickname"`
	CreatedAt           time.Time `json:"created_at"`
}
