package domain

import "time"

// User is the account holder profile as returned by the backend.
// Immutable once fetched; replaced wholesale, never patched.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	CNIC       string    `json:"cnic"`
	WalletID   string    `json:"wallet_id"`
	PublicKey  string    `json:"public_key"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}
