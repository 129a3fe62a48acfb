package models

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one authenticated browser context, referenced by an
// opaque identifier stored in an HTTP-only cookie
type Session struct {
	ID           string    `json:"id" db:"id"`
	AdminID      uuid.UUID `json:"admin_id" db:"admin_id"`
	Role         string    `json:"role" db:"role"`
	Email        string    `json:"email" db:"email"`
	Mobile       string    `json:"mobile" db:"mobile"`
	ClientIP     string    `json:"client_ip" db:"client_ip"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	LastActivity time.Time `json:"last_activity" db:"last_activity"`
	ExpiresAt    time.Time `json:"expires_at" db:"expires_at"`
}

// Expired reports whether the session has passed its expiry. An expired
// session is treated identically to a missing one.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
