package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/services/admin"
)

// CreateChallenge persists a new pending OTP challenge
func (r *AdminRepository) CreateChallenge(ctx context.Context, challenge *models.OtpChallenge) error {
	query := `
		INSERT INTO otp_challenges (id, mobile, provider_request_id, status, created_at, expires_at)
		VALUES (:id, :mobile, :provider_request_id, :status, :created_at, :expires_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, challenge)
	if err != nil {
		return fmt.Errorf("failed to insert challenge: %w", err)
	}

	return nil
}

// GetChallenge retrieves a challenge by id
func (r *AdminRepository) GetChallenge(ctx context.Context, id uuid.UUID) (*models.OtpChallenge, error) {
	query := `
		SELECT id, mobile, provider_request_id, status, created_at, expires_at, verified_at
		FROM otp_challenges
		WHERE id = $1
	`

	var challenge models.OtpChallenge
	err := r.db.GetContext(ctx, &challenge, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, admin.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return &challenge, nil
}

// GetLatestPendingChallenge retrieves the newest unexpired pending challenge
// for a mobile number
func (r *AdminRepository) GetLatestPendingChallenge(ctx context.Context, mobile string) (*models.OtpChallenge, error) {
	query := `
		SELECT id, mobile, provider_request_id, status, created_at, expires_at, verified_at
		FROM otp_challenges
		WHERE mobile = $1 AND status = $2 AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var challenge models.OtpChallenge
	err := r.db.GetContext(ctx, &challenge, query, mobile, models.ChallengeStatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, admin.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get pending challenge: %w", err)
	}

	return &challenge, nil
}

// ResetChallenge claims the resend cooldown and returns the challenge to
// pending with fresh timestamps. The created_at predicate makes the update
// conditional: of two concurrent resends only one matches the previous
// timestamp, the loser sees zero rows and backs off before any dispatch.
func (r *AdminRepository) ResetChallenge(ctx context.Context, id uuid.UUID, prevCreatedAt time.Time, expiresAt time.Time) (bool, error) {
	query := `
		UPDATE otp_challenges
		SET status = $2, created_at = NOW(), expires_at = $3, verified_at = NULL
		WHERE id = $1 AND created_at = $4
	`

	result, err := r.db.ExecContext(ctx, query, id, models.ChallengeStatusPending, expiresAt, prevCreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to reset challenge: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to reset challenge: %w", err)
	}

	return rows > 0, nil
}

// SetChallengeProvider records the provider request id issued for the latest
// dispatch of a challenge
func (r *AdminRepository) SetChallengeProvider(ctx context.Context, id uuid.UUID, requestID string) error {
	query := `
		UPDATE otp_challenges
		SET provider_request_id = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, requestID)
	if err != nil {
		return fmt.Errorf("failed to set provider request id: %w", err)
	}

	return nil
}

// MarkChallengeVerified closes a pending challenge. The status and expiry
// predicates make the transition single-shot.
func (r *AdminRepository) MarkChallengeVerified(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE otp_challenges
		SET status = $2, verified_at = NOW()
		WHERE id = $1 AND status = $3 AND expires_at > NOW()
	`

	result, err := r.db.ExecContext(ctx, query, id, models.ChallengeStatusVerified, models.ChallengeStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark challenge verified: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark challenge verified: %w", err)
	}

	return rows > 0, nil
}

// MarkChallengeFailed records a failed verification attempt against a
// pending challenge
func (r *AdminRepository) MarkChallengeFailed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE otp_challenges
		SET status = $2
		WHERE id = $1 AND status = $3
	`

	_, err := r.db.ExecContext(ctx, query, id, models.ChallengeStatusFailed, models.ChallengeStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark challenge failed: %w", err)
	}

	return nil
}

// ExpireChallenges flips pending challenges past their expiry to expired and
// reports how many rows changed
func (r *AdminRepository) ExpireChallenges(ctx context.Context) (int64, error) {
	query := `
		UPDATE otp_challenges
		SET status = $1
		WHERE status = $2 AND expires_at <= NOW()
	`

	result, err := r.db.ExecContext(ctx, query, models.ChallengeStatusExpired, models.ChallengeStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to expire challenges: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to expire challenges: %w", err)
	}

	return rows, nil
}
