package domain

import "time"

// SystemLog is an admin-only diagnostic entry.
type SystemLog struct {
	ID            string    `json:"id"`
	LogType       string    `json:"log_type"`
	Message       string    `json:"message"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	IPAddress     string    `json:"ip_address,omitempty"`
	UserAgent     string    `json:"user_agent,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// SystemLogStats summarises log volume per type.
type SystemLogStats struct {
	Total   int64            `json:"total"`
	ByType  map[string]int64 `json:"by_type"`
	Since   time.Time        `json:"since"`
	Updated time.Time        `json:"updated"`
}

// SystemHealth is the backend's self-reported health snapshot.
type SystemHealth struct {
	Status    string    `json:"status"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}
