package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/propline/adminauth/internal/pkg/logger"
	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/utils"
	"github.com/propline/adminauth/services/admin"
)

// SetupMFA generates and stores a fresh TOTP secret for the admin. The
// secret is not relied on until ConfirmMFA proves the admin captured it.
func (u *AdminUC) SetupMFA(ctx context.Context, email string) (*models.MFASetupResponse, error) {
	email = utils.NormalizeEmail(email)

	adm, err := u.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return nil, admin.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if !adm.IsActive {
		return nil, admin.ErrInvalidCredentials
	}
	if adm.MFAEnabled {
		return nil, admin.ErrMFAAlreadyEnabled
	}

	secret, enrollmentURI, err := u.totp.GenerateSecret(adm.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate totp secret: %w", err)
	}

	// Re-running setup replaces any earlier unconfirmed secret
	if err := u.adminRepo.SetMFASecret(ctx, adm.ID, secret); err != nil {
		return nil, fmt.Errorf("failed to store totp secret: %w", err)
	}

	logger.Info("MFA enrollment started", logger.String("email", email))

	return &models.MFASetupResponse{
		Secret:        secret,
		EnrollmentURI: enrollmentURI,
	}, nil
}

// ConfirmMFA verifies one code against the stored secret and only then flips
// mfa_enabled, so the system never depends on a secret nobody recorded
func (u *AdminUC) ConfirmMFA(ctx context.Context, email, code string) error {
	email = utils.NormalizeEmail(email)

	allowed, retryAfter, err := u.adminRepo.Allow(ctx, admin.ActionMFAConfirm, "email:"+email)
	if err == nil && !allowed {
		return &admin.RateLimitError{RetryAfter: retryAfter}
	}

	adm, err := u.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return admin.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if !adm.IsActive {
		return admin.ErrInvalidCredentials
	}
	if adm.MFASecret == "" {
		return admin.ErrMFANotEnrolled
	}

	if !u.totp.Verify(adm.MFASecret, code) {
		u.publishSecurityEvent(ctx, models.EventMFAFailure, email, "", "", "wrong code during enrollment confirmation")
		return admin.ErrInvalidMFACode
	}

	if err := u.adminRepo.EnableMFA(ctx, adm.ID); err != nil {
		return fmt.Errorf("failed to enable mfa: %w", err)
	}

	logger.Info("MFA enabled", logger.String("email", email))
	return nil
}
