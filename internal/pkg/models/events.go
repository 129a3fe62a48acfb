package models

import "time"

// Security event types published to NSQ
const (
	EventWhitelistMiss    = "whitelist_miss"
	EventMFAFailure       = "mfa_failure"
	EventLoginFailure     = "login_failure"
	EventChallengeAnomaly = "challenge_anomaly"
	EventSessionCreated   = "session_created"
	EventSessionDestroyed = "session_destroyed"
)

// SecurityEvent is an audit record for a security-relevant rejection.
// Mobile numbers are masked before the event leaves the process.
type SecurityEvent struct {
	Type         string    `json:"type"`
	Email        string    `json:"email,omitempty"`
	MaskedMobile string    `json:"masked_mobile,omitempty"`
	ClientIP     string    `json:"client_ip,omitempty"`
	Detail       string    `json:"detail,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// SessionEvent records session lifecycle changes
type SessionEvent struct {
	Type       string    `json:"type"`
	AdminID    string    `json:"admin_id"`
	SessionID  string    `json:"session_id"`
	ClientIP   string    `json:"client_ip,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
