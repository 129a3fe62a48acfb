package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/services/admin"
)

// CreateSession persists a new session row
func (r *AdminRepository) CreateSession(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO admin_sessions (id, admin_id, role, email, mobile, client_ip,
			created_at, last_activity, expires_at
		) VALUES (:id, :admin_id, :role, :email, :mobile, :client_ip,
			:created_at, :last_activity, :expires_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// GetSession retrieves a live session. Expired rows are filtered out at the
// query level so the sweep lagging behind never leaks a stale session.
func (r *AdminRepository) GetSession(ctx context.Context, id string) (*models.Session, error) {
	query := `
		SELECT id, admin_id, role, email, mobile, client_ip, created_at, last_activity, expires_at
		FROM admin_sessions
		WHERE id = $1 AND expires_at > NOW()
	`

	var session models.Session
	err := r.db.GetContext(ctx, &session, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, admin.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// TouchSession records activity without extending the expiry
func (r *AdminRepository) TouchSession(ctx context.Context, id string) error {
	query := `
		UPDATE admin_sessions
		SET last_activity = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	return nil
}

// DeleteSession removes a session row. Deleting an absent session is a no-op.
func (r *AdminRepository) DeleteSession(ctx context.Context, id string) error {
	query := `DELETE FROM admin_sessions WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// DeleteExpiredSessions removes rows past their expiry and reports the count
func (r *AdminRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	query := `DELETE FROM admin_sessions WHERE expires_at <= NOW()`

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return rows, nil
}
