package totp

import (
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	period     = 30
	secretSize = 20
	skew       = 1
)

// Engine generates enrollment secrets and verifies 6-digit time-based codes
type Engine struct {
	issuer string
}

// NewEngine creates a TOTP engine with the given issuer name
func NewEngine(issuer string) *Engine {
	if strings.TrimSpace(issuer) == "" {
		issuer = "Admin"
	}
	return &Engine{issuer: issuer}
}

// GenerateSecret creates a new base32 secret and the otpauth enrollment URI
// for authenticator apps
func (e *Engine) GenerateSecret(accountLabel string) (string, string, error) {
	if strings.TrimSpace(accountLabel) == "" {
		return "", "", fmt.Errorf("account label cannot be empty")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      e.issuer,
		AccountName: accountLabel,
		Period:      period,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
		SecretSize:  secretSize,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	return key.Secret(), key.URL(), nil
}

// Verify checks a submitted code against the stored secret, tolerating one
// period of clock drift on either side
func (e *Engine) Verify(secret, code string) bool {
	if strings.TrimSpace(secret) == "" || strings.TrimSpace(code) == "" {
		return false
	}

	valid, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    period,
		Skew:      skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return false
	}

	return valid
}

// CodeAt computes the code for a secret at the given time
func CodeAt(secret string, at time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, at, totp.ValidateOpts{
		Period:    period,
		Skew:      skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
}
