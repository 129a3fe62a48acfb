package models

import (
	"time"

	"github.com/google/uuid"
)

// OTP challenge statuses
const (
	ChallengeStatusPending  = "pending"
	ChallengeStatusVerified = "verified"
	ChallengeStatusExpired  = "expired"
	ChallengeStatusFailed   = "failed"
)

// OtpChallenge represents one outstanding mobile-verification attempt.
// Rows are never deleted; the table doubles as an audit log.
type OtpChallenge struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	Mobile            string     `json:"mobile" db:"mobile"`
	ProviderRequestID string     `json:"provider_request_id" db:"provider_request_id"`
	Status            string     `json:"status" db:"status"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt         time.Time  `json:"expires_at" db:"expires_at"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty" db:"verified_at"`
}

// ValidationToken binds a whitelist check to a later OTP verification.
// Single use: consuming it flips used exactly once.
type ValidationToken struct {
	Token     string    `json:"token"`
	Mobile    string    `json:"mobile"`
	ClientIP  string    `json:"client_ip"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// WhitelistEntry is a mobile number permitted to authenticate via OTP
type WhitelistEntry struct {
	Mobile    string    `json:"mobile" db:"mobile"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
