package models

import "time"

// Login outcome statuses
const (
	LoginStatusAuthenticated    = "authenticated"
	LoginStatusMFASetupRequired = "mfa_setup_required"
	LoginStatusMFACodeRequired  = "mfa_code_required"
)

// LoginRequest represents an admin credential login attempt
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	AuthCode string `json:"auth_code,omitempty"`
}

// LoginResult is the outcome of a login or OTP-verify attempt
type LoginResult struct {
	Status  string     `json:"status"`
	Session *Session   `json:"-"`
	Admin   *AdminInfo `json:"admin,omitempty"`
}

// MFASetupRequest asks for a fresh TOTP secret for the given admin
type MFASetupRequest struct {
	Email string `json:"email" validate:"required"`
}

// MFASetupResponse carries enrollment material for the authenticator app.
// The secret is stored server-side but not yet enabled.
type MFASetupResponse struct {
	Secret        string `json:"secret"`
	EnrollmentURI string `json:"enrollment_uri"`
}

// MFAConfirmRequest proves the admin captured the secret before it is relied on
type MFAConfirmRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// OTPSendRequest asks for an OTP dispatch to the given mobile
type OTPSendRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

// OTPSendResult reports a dispatched (or re-dispatched) challenge
type OTPSendResult struct {
	ChallengeID       string    `json:"challenge_id"`
	ProviderRequestID string    `json:"provider_request_id"`
	ValidationToken   string    `json:"validation_token,omitempty"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// OTPResendRequest asks for a re-dispatch of an existing challenge
type OTPResendRequest struct {
	ChallengeID string `json:"challenge_id" validate:"required"`
}

// OTPVerifyRequest completes the mobile-OTP login path
type OTPVerifyRequest struct {
	Mobile          string `json:"mobile" validate:"required"`
	AssertionToken  string `json:"assertion_token" validate:"required"`
	ValidationToken string `json:"validation_token,omitempty"`
}
