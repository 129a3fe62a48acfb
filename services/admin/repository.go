package admin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propline/adminauth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/propline/adminauth/services/admin AdminRepo

// Rate-limit action names shared by the limiter policy and its callers
const (
	ActionLogin      = "login"
	ActionOTPSend    = "otp_send"
	ActionOTPVerify  = "otp_verify"
	ActionMFAConfirm = "mfa_confirm"
)

// AdminRepo represents the admin auth repository interface
type AdminRepo interface {
	// admin records
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetAdminByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	GetAdminByMobile(ctx context.Context, mobile string) (*models.AdminUser, error)
	CreateAdmin(ctx context.Context, admin *models.AdminUser) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdatePIN(ctx context.Context, id uuid.UUID, pinHash string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	SetMFASecret(ctx context.Context, id uuid.UUID, secret string) error
	EnableMFA(ctx context.Context, id uuid.UUID) error

	// sessions
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	TouchSession(ctx context.Context, sessionID string) error
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// OTP challenges
	CreateChallenge(ctx context.Context, challenge *models.OtpChallenge) error
	GetChallenge(ctx context.Context, id uuid.UUID) (*models.OtpChallenge, error)
	GetLatestPendingChallenge(ctx context.Context, mobile string) (*models.OtpChallenge, error)
	ResetChallenge(ctx context.Context, id uuid.UUID, prevCreatedAt time.Time, expiresAt time.Time) (bool, error)
	SetChallengeProvider(ctx context.Context, id uuid.UUID, requestID string) error
	MarkChallengeVerified(ctx context.Context, id uuid.UUID) (bool, error)
	MarkChallengeFailed(ctx context.Context, id uuid.UUID) error
	ExpireChallenges(ctx context.Context) (int64, error)

	// whitelist
	IsWhitelisted(ctx context.Context, mobile string) (bool, error)

	// rate limiting
	Allow(ctx context.Context, action, key string) (bool, time.Duration, error)

	// validation tokens
	StoreValidationToken(ctx context.Context, token *models.ValidationToken) error
	ConsumeValidationToken(ctx context.Context, token string) (*models.ValidationToken, error)
}
