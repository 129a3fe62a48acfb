package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/propline/adminauth/internal/pkg/logger"
	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/utils"
	"github.com/propline/adminauth/services/admin"
)

// SendOTP validates and whitelists the mobile, then dispatches a code through
// the gateway. The whitelist check always precedes the gateway call.
func (u *AdminUC) SendOTP(ctx context.Context, mobile, clientIP string) (*models.OTPSendResult, error) {
	normalized, err := utils.NormalizeMobile(mobile)
	if err != nil {
		return nil, admin.ErrInvalidMobile
	}

	for _, key := range []string{"ip:" + clientIP, "mobile:" + normalized} {
		allowed, retryAfter, err := u.adminRepo.Allow(ctx, admin.ActionOTPSend, key)
		if err == nil && !allowed {
			return nil, &admin.RateLimitError{RetryAfter: retryAfter}
		}
	}

	whitelisted, err := u.adminRepo.IsWhitelisted(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to check whitelist: %w", err)
	}
	if !whitelisted {
		u.publishSecurityEvent(ctx, models.EventWhitelistMiss, "", normalized, clientIP, "otp send for non-whitelisted mobile")
		return nil, admin.ErrNotWhitelisted
	}

	validationToken, err := u.issueValidationToken(ctx, normalized, clientIP)
	if err != nil {
		return nil, err
	}

	requestID, err := u.smsGW.SendOTP(ctx, normalized)
	if err != nil {
		logger.Error("OTP gateway send failed",
			logger.String("mobile", utils.MaskMobile(normalized)),
			logger.Err(err))
		return nil, admin.ErrGatewayUnavailable
	}

	now := time.Now()
	challenge := &models.OtpChallenge{
		ID:                uuid.New(),
		Mobile:            normalized,
		ProviderRequestID: requestID,
		Status:            models.ChallengeStatusPending,
		CreatedAt:         now,
		ExpiresAt:         now.Add(time.Duration(u.cfg.Auth.OTPExpiry) * time.Second),
	}
	if err := u.adminRepo.CreateChallenge(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	logger.Info("OTP dispatched",
		logger.String("mobile", utils.MaskMobile(normalized)),
		logger.String("challenge_id", challenge.ID.String()))

	return &models.OTPSendResult{
		ChallengeID:       challenge.ID.String(),
		ProviderRequestID: requestID,
		ValidationToken:   validationToken,
		ExpiresAt:         challenge.ExpiresAt,
	}, nil
}

// ResendOTP re-dispatches an existing challenge after the cooldown. The
// cooldown is claimed first through a conditional update keyed on the
// previous created_at: of two concurrent resends only one matches, and only
// that winner reaches the provider.
func (u *AdminUC) ResendOTP(ctx context.Context, challengeID, clientIP string) (*models.OTPSendResult, error) {
	id, err := uuid.Parse(challengeID)
	if err != nil {
		return nil, admin.ErrChallengeNotFound
	}

	allowed, retryAfter, err := u.adminRepo.Allow(ctx, admin.ActionOTPSend, "ip:"+clientIP)
	if err == nil && !allowed {
		return nil, &admin.RateLimitError{RetryAfter: retryAfter}
	}

	challenge, err := u.adminRepo.GetChallenge(ctx, id)
	if err != nil {
		if errors.Is(err, admin.ErrChallengeNotFound) {
			return nil, admin.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	cooldown := time.Duration(u.cfg.Auth.ResendCooldown) * time.Second
	elapsed := time.Since(challenge.CreatedAt)
	if elapsed < cooldown {
		return nil, &admin.CooldownError{Remaining: cooldown - elapsed}
	}

	// The whitelist may have changed since the original send
	whitelisted, err := u.adminRepo.IsWhitelisted(ctx, challenge.Mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to check whitelist: %w", err)
	}
	if !whitelisted {
		u.publishSecurityEvent(ctx, models.EventWhitelistMiss, "", challenge.Mobile, clientIP, "otp resend for non-whitelisted mobile")
		return nil, admin.ErrNotWhitelisted
	}

	expiresAt := time.Now().Add(time.Duration(u.cfg.Auth.OTPExpiry) * time.Second)
	claimed, err := u.adminRepo.ResetChallenge(ctx, challenge.ID, challenge.CreatedAt, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reset challenge: %w", err)
	}
	if !claimed {
		// another resend claimed the cooldown first
		return nil, &admin.CooldownError{Remaining: cooldown}
	}

	requestID, err := u.smsGW.ResendOTP(ctx, challenge.ProviderRequestID, challenge.Mobile)
	if err != nil {
		logger.Error("OTP gateway resend failed",
			logger.String("mobile", utils.MaskMobile(challenge.Mobile)),
			logger.Err(err))
		return nil, admin.ErrGatewayUnavailable
	}

	if err := u.adminRepo.SetChallengeProvider(ctx, challenge.ID, requestID); err != nil {
		return nil, fmt.Errorf("failed to record provider request: %w", err)
	}

	logger.Info("OTP re-dispatched",
		logger.String("mobile", utils.MaskMobile(challenge.Mobile)),
		logger.String("challenge_id", challenge.ID.String()))

	return &models.OTPSendResult{
		ChallengeID:       challenge.ID.String(),
		ProviderRequestID: requestID,
		ExpiresAt:         expiresAt,
	}, nil
}

// VerifyOTP completes the mobile login path. The whitelist and our own
// normalized input stay authoritative: the widget assertion's mobile claim is
// cross-checked, never trusted on its own.
func (u *AdminUC) VerifyOTP(ctx context.Context, req *models.OTPVerifyRequest, clientIP string) (*models.LoginResult, error) {
	normalized, err := utils.NormalizeMobile(req.Mobile)
	if err != nil {
		return nil, admin.ErrInvalidMobile
	}

	for _, key := range []string{"ip:" + clientIP, "mobile:" + normalized} {
		allowed, retryAfter, err := u.adminRepo.Allow(ctx, admin.ActionOTPVerify, key)
		if err == nil && !allowed {
			return nil, &admin.RateLimitError{RetryAfter: retryAfter}
		}
	}

	whitelisted, err := u.adminRepo.IsWhitelisted(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to check whitelist: %w", err)
	}
	if !whitelisted {
		u.publishSecurityEvent(ctx, models.EventWhitelistMiss, "", normalized, clientIP, "otp verify for non-whitelisted mobile")
		return nil, admin.ErrNotWhitelisted
	}

	// The single-use token issued at send time is not optional: without it a
	// bare assertion never reaches a session
	if req.ValidationToken == "" {
		u.publishSecurityEvent(ctx, models.EventChallengeAnomaly, "", normalized, clientIP, "otp verify without validation token")
		return nil, admin.ErrValidationToken
	}
	token, err := u.adminRepo.ConsumeValidationToken(ctx, req.ValidationToken)
	if err != nil {
		return nil, admin.ErrValidationToken
	}
	if token.Mobile != normalized {
		u.publishSecurityEvent(ctx, models.EventChallengeAnomaly, "", normalized, clientIP, "validation token mobile mismatch")
		return nil, admin.ErrValidationToken
	}

	mobileClaim, err := u.smsGW.VerifyAssertion(ctx, req.AssertionToken)
	if err != nil {
		u.failPendingChallenge(ctx, normalized)
		u.publishSecurityEvent(ctx, models.EventChallengeAnomaly, "", normalized, clientIP, "assertion verification failed")
		return nil, admin.ErrAssertionInvalid
	}
	if claim, err := utils.NormalizeMobile(mobileClaim); err != nil || claim != normalized {
		u.failPendingChallenge(ctx, normalized)
		u.publishSecurityEvent(ctx, models.EventChallengeAnomaly, "", normalized, clientIP, "assertion mobile mismatch")
		return nil, admin.ErrAssertionInvalid
	}

	// Close out the pending challenge. A missing or stale challenge does not
	// block login once the whitelist and assertion checks pass, but it is
	// recorded as an anomaly.
	challenge, err := u.adminRepo.GetLatestPendingChallenge(ctx, normalized)
	if err == nil && challenge != nil {
		if verified, err := u.adminRepo.MarkChallengeVerified(ctx, challenge.ID); err != nil || !verified {
			u.publishSecurityEvent(ctx, models.EventChallengeAnomaly, "", normalized, clientIP, "challenge already closed")
		}
	} else {
		u.publishSecurityEvent(ctx, models.EventChallengeAnomaly, "", normalized, clientIP, "no pending challenge at verify")
	}

	adm, err := u.adminRepo.GetAdminByMobile(ctx, normalized)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			u.publishSecurityEvent(ctx, models.EventLoginFailure, "", normalized, clientIP, "no admin for verified mobile")
			return nil, admin.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if !adm.IsActive {
		u.publishSecurityEvent(ctx, models.EventLoginFailure, adm.Email, normalized, clientIP, "inactive account")
		return nil, admin.ErrInvalidCredentials
	}

	session, err := u.createSession(ctx, adm, clientIP)
	if err != nil {
		return nil, err
	}

	logger.Info("Admin authenticated via OTP",
		logger.String("mobile", utils.MaskMobile(normalized)),
		logger.String("client_ip", clientIP))

	return &models.LoginResult{
		Status:  models.LoginStatusAuthenticated,
		Session: session,
		Admin:   adm.Info(),
	}, nil
}

// failPendingChallenge closes the newest pending challenge for a mobile as
// failed so the challenge table records the rejected attempt
func (u *AdminUC) failPendingChallenge(ctx context.Context, mobile string) {
	challenge, err := u.adminRepo.GetLatestPendingChallenge(ctx, mobile)
	if err != nil || challenge == nil {
		return
	}
	if err := u.adminRepo.MarkChallengeFailed(ctx, challenge.ID); err != nil {
		logger.Warn("Failed to mark challenge failed",
			logger.String("challenge_id", challenge.ID.String()),
			logger.Err(err))
	}
}

// issueValidationToken stores a short-lived single-use token binding this
// whitelist validation to the later verify call
func (u *AdminUC) issueValidationToken(ctx context.Context, mobile, clientIP string) (string, error) {
	token, err := utils.GenerateRandomHex(64)
	if err != nil {
		return "", fmt.Errorf("failed to generate validation token: %w", err)
	}

	now := time.Now()
	err = u.adminRepo.StoreValidationToken(ctx, &models.ValidationToken{
		Token:     token,
		Mobile:    mobile,
		ClientIP:  clientIP,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(u.cfg.Auth.ValidationTokenTTL) * time.Second),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store validation token: %w", err)
	}

	return token, nil
}
