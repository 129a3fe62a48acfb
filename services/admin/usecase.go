package admin

import (
	"context"

	"github.com/propline/adminauth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/propline/adminauth/services/admin AdminUC

// AdminUC represents the admin authentication usecase interface
type AdminUC interface {
	// credential + MFA login path
	Login(ctx context.Context, req *models.LoginRequest, clientIP string) (*models.LoginResult, error)
	SetupMFA(ctx context.Context, email string) (*models.MFASetupResponse, error)
	ConfirmMFA(ctx context.Context, email, code string) error

	// mobile OTP login path
	SendOTP(ctx context.Context, mobile, clientIP string) (*models.OTPSendResult, error)
	ResendOTP(ctx context.Context, challengeID, clientIP string) (*models.OTPSendResult, error)
	VerifyOTP(ctx context.Context, req *models.OTPVerifyRequest, clientIP string) (*models.LoginResult, error)

	// session lifecycle
	VerifySession(ctx context.Context, sessionID string) (*models.AdminInfo, error)
	Logout(ctx context.Context, sessionID string) error
	SweepSessions(ctx context.Context) (int64, error)
	SweepChallenges(ctx context.Context) (int64, error)

	// account maintenance
	ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error
	ChangePIN(ctx context.Context, email, password, pin string) error
}
