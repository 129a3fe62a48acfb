package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/propline/adminauth/internal/pkg/logger"
	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/utils"
	"github.com/propline/adminauth/services/admin"
)

// createSession issues an opaque session identifier and persists the session
// with a fixed TTL
func (u *AdminUC) createSession(ctx context.Context, adm *models.AdminUser, clientIP string) (*models.Session, error) {
	id, err := utils.GenerateRandomHex(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	now := time.Now()
	session := &models.Session{
		ID:           id,
		AdminID:      adm.ID,
		Role:         adm.Role,
		Email:        adm.Email,
		Mobile:       adm.Mobile,
		ClientIP:     clientIP,
		CreatedAt:    now,
		LastActivity: now,
		ExpiresAt:    now.Add(time.Duration(u.cfg.Auth.SessionTTL) * time.Hour),
	}

	if err := u.adminRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	u.publishSessionEvent(ctx, models.EventSessionCreated, session)

	return session, nil
}

// VerifySession resolves a session id to its admin. Expired sessions and
// sessions whose owner has gone missing or inactive are both reported as not
// found.
func (u *AdminUC) VerifySession(ctx context.Context, sessionID string) (*models.AdminInfo, error) {
	if sessionID == "" {
		return nil, admin.ErrSessionNotFound
	}

	session, err := u.adminRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, admin.ErrSessionNotFound
	}
	if session.Expired(time.Now()) {
		return nil, admin.ErrSessionNotFound
	}

	adm, err := u.adminRepo.GetAdminByID(ctx, session.AdminID)
	if err != nil || !adm.IsActive {
		return nil, admin.ErrSessionNotFound
	}

	// Activity tracking only; the expiry is never extended
	if err := u.adminRepo.TouchSession(ctx, sessionID); err != nil {
		logger.Warn("Failed to touch session", logger.Err(err))
	}

	return adm.Info(), nil
}

// Logout destroys the session. Destroying an unknown session is not an error.
func (u *AdminUC) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	session, err := u.adminRepo.GetSession(ctx, sessionID)

	if err := u.adminRepo.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if err == nil && session != nil {
		u.publishSessionEvent(ctx, models.EventSessionDestroyed, session)
	}

	return nil
}

// SweepSessions removes expired session rows. Validation never honors them,
// so the sweep is purely housekeeping and can run on a timer.
func (u *AdminUC) SweepSessions(ctx context.Context) (int64, error) {
	removed, err := u.adminRepo.DeleteExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	if removed > 0 {
		logger.Info("Swept expired sessions", logger.Int64("removed", removed))
	}
	return removed, nil
}

// SweepChallenges marks pending challenges past their expiry so the challenge
// table reflects the real outcome of every attempt
func (u *AdminUC) SweepChallenges(ctx context.Context) (int64, error) {
	expired, err := u.adminRepo.ExpireChallenges(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire challenges: %w", err)
	}
	if expired > 0 {
		logger.Info("Expired stale challenges", logger.Int64("expired", expired))
	}
	return expired, nil
}

// publishSessionEvent publishes a session lifecycle event, best effort
func (u *AdminUC) publishSessionEvent(ctx context.Context, eventType string, session *models.Session) {
	err := u.events.PublishSessionEvent(ctx, &models.SessionEvent{
		Type:       eventType,
		AdminID:    session.AdminID.String(),
		SessionID:  session.ID,
		ClientIP:   session.ClientIP,
		OccurredAt: time.Now(),
	})
	if err != nil {
		logger.Warn("Failed to publish session event",
			logger.String("type", eventType),
			logger.Err(err))
	}
}
