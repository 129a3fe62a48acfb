package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/propline/adminauth/internal/pkg/logger"
	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/utils"
	"github.com/propline/adminauth/services/admin"
)

// decoyHash is compared against when the email is unknown so the response
// time does not reveal whether the account exists.
const decoyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login runs the credential half of the login state machine: password check,
// then MFA branch. All credential failures collapse into ErrInvalidCredentials.
func (u *AdminUC) Login(ctx context.Context, req *models.LoginRequest, clientIP string) (*models.LoginResult, error) {
	email := utils.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, admin.ErrInvalidCredentials
	}

	// Throttled per source IP and per target account, so spraying one
	// account from many addresses still hits a ceiling
	for _, key := range []string{"ip:" + clientIP, "email:" + email} {
		allowed, retryAfter, err := u.adminRepo.Allow(ctx, admin.ActionLogin, key)
		if err == nil && !allowed {
			return nil, &admin.RateLimitError{RetryAfter: retryAfter}
		}
	}

	adm, err := u.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			// burn a hash comparison anyway
			utils.CheckPassword(req.Password, decoyHash)
			u.publishSecurityEvent(ctx, models.EventLoginFailure, email, "", clientIP, "unknown email")
			return nil, admin.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	passwordOK := utils.CheckPassword(req.Password, adm.PasswordHash)
	if !passwordOK || !adm.IsActive {
		detail := "password mismatch"
		if passwordOK {
			detail = "inactive account"
		}
		u.publishSecurityEvent(ctx, models.EventLoginFailure, email, "", clientIP, detail)
		return nil, admin.ErrInvalidCredentials
	}

	// MFA branch. Enrollment is mandatory by policy: a code cannot be valid
	// without an enrolled secret, so a supplied code is ignored here.
	enrolled := adm.MFASecret != "" && adm.MFAEnabled
	if !enrolled {
		if u.cfg.Auth.MandatoryMFA {
			return &models.LoginResult{
				Status: models.LoginStatusMFASetupRequired,
				Admin:  adm.Info(),
			}, nil
		}
	} else {
		if req.AuthCode == "" {
			// password accepted, second factor still outstanding
			return &models.LoginResult{
				Status: models.LoginStatusMFACodeRequired,
			}, nil
		}
		if !u.totp.Verify(adm.MFASecret, req.AuthCode) {
			u.publishSecurityEvent(ctx, models.EventMFAFailure, email, "", clientIP, "wrong totp code")
			return nil, admin.ErrInvalidMFACode
		}
	}

	session, err := u.createSession(ctx, adm, clientIP)
	if err != nil {
		return nil, err
	}

	logger.Info("Admin authenticated",
		logger.String("email", email),
		logger.String("client_ip", clientIP))

	return &models.LoginResult{
		Status:  models.LoginStatusAuthenticated,
		Session: session,
		Admin:   adm.Info(),
	}, nil
}

// ChangePassword rotates the password after re-verifying the current one
func (u *AdminUC) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return admin.ErrWeakPassword
	}

	adm, err := u.adminRepo.GetAdminByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return admin.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	if !adm.IsActive || !utils.CheckPassword(currentPassword, adm.PasswordHash) {
		return admin.ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := u.adminRepo.UpdatePassword(ctx, adm.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// ChangePIN sets the optional PIN after re-verifying the password
func (u *AdminUC) ChangePIN(ctx context.Context, email, password, pin string) error {
	if len(pin) < 4 || len(pin) > 6 {
		return admin.ErrInvalidPIN
	}
	for _, ch := range pin {
		if ch < '0' || ch > '9' {
			return admin.ErrInvalidPIN
		}
	}

	adm, err := u.adminRepo.GetAdminByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return admin.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	if !adm.IsActive || !utils.CheckPassword(password, adm.PasswordHash) {
		return admin.ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(pin)
	if err != nil {
		return err
	}

	if err := u.adminRepo.UpdatePIN(ctx, adm.ID, hash); err != nil {
		return fmt.Errorf("failed to update pin: %w", err)
	}

	return nil
}

// publishSecurityEvent publishes an audit event, best effort
func (u *AdminUC) publishSecurityEvent(ctx context.Context, eventType, email, mobile, clientIP, detail string) {
	event := &models.SecurityEvent{
		Type:       eventType,
		Email:      email,
		ClientIP:   clientIP,
		Detail:     detail,
		OccurredAt: time.Now(),
	}
	if mobile != "" {
		event.MaskedMobile = utils.MaskMobile(mobile)
	}

	if err := u.events.PublishSecurityEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish security event",
			logger.String("type", eventType),
			logger.Err(err))
	}
}
