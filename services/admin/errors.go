package admin

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors surfaced by the admin auth subsystem. Handlers map these to
// HTTP statuses; the messages are deliberately generic where enumeration is a
// concern.
var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// deactivated accounts alike so responses never reveal which it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidMFACode is returned for a wrong or malformed TOTP code
	ErrInvalidMFACode = errors.New("invalid authentication code")

	// ErrMFANotEnrolled is returned when a code is confirmed against an
	// account that has no stored secret
	ErrMFANotEnrolled = errors.New("mfa enrollment has not been started")

	// ErrMFAAlreadyEnabled is returned when setup is requested for an
	// account whose MFA is already confirmed
	ErrMFAAlreadyEnabled = errors.New("mfa is already enabled")

	// ErrInvalidMobile is returned before any store or network access when
	// the mobile number fails format validation
	ErrInvalidMobile = errors.New("invalid mobile number")

	// ErrNotWhitelisted is an authorization failure, distinct from
	// authentication failures and always logged as a security event
	ErrNotWhitelisted = errors.New("mobile number is not authorized")

	// ErrValidationToken is returned when a validation token is missing,
	// expired, or already consumed
	ErrValidationToken = errors.New("validation token invalid or already used")

	// ErrChallengeNotFound is returned when a resend references an unknown
	// challenge
	ErrChallengeNotFound = errors.New("challenge not found")

	// ErrAssertionInvalid is returned when the gateway widget assertion
	// fails verification
	ErrAssertionInvalid = errors.New("verification assertion invalid")

	// ErrGatewayUnavailable wraps provider timeouts and errors into a single
	// recoverable failure; provider detail stays in server logs
	ErrGatewayUnavailable = errors.New("otp delivery temporarily unavailable")

	// ErrSessionNotFound covers both missing and expired sessions
	ErrSessionNotFound = errors.New("session not found")

	// ErrAdminNotFound is returned by repository lookups for missing admins
	ErrAdminNotFound = errors.New("admin not found")

	// ErrWeakPassword is returned when a new password fails the length policy
	ErrWeakPassword = errors.New("new password must be at least 8 characters")

	// ErrInvalidPIN is returned when a new PIN is not 4 to 6 digits
	ErrInvalidPIN = errors.New("pin must be 4 to 6 digits")
)

// RateLimitError reports an exhausted attempt budget with a retry-after hint
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// CooldownError reports a resend attempted before the cooldown elapsed
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("resend cooldown active, %s remaining", e.Remaining)
}
