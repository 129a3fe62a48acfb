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

const adminColumns = `id, email, mobile, password_hash, pin_hash, role, is_active, mfa_secret, mfa_enabled, created_at, updated_at, deactivated_at`

// GetAdminByEmail retrieves an admin by email, case-insensitively
func (r *AdminRepository) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE LOWER(email) = LOWER($1)
	`

	var adm models.AdminUser
	err := r.db.GetContext(ctx, &adm, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &adm, nil
}

// GetAdminByID retrieves an admin by id
func (r *AdminRepository) GetAdminByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE id = $1
	`

	var adm models.AdminUser
	err := r.db.GetContext(ctx, &adm, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &adm, nil
}

// GetAdminByMobile retrieves an admin by canonical mobile number
func (r *AdminRepository) GetAdminByMobile(ctx context.Context, mobile string) (*models.AdminUser, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE mobile = $1
	`

	var adm models.AdminUser
	err := r.db.GetContext(ctx, &adm, query, mobile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &adm, nil
}

// CreateAdmin creates a new admin record
func (r *AdminRepository) CreateAdmin(ctx context.Context, adm *models.AdminUser) error {
	if adm.ID == uuid.Nil {
		adm.ID = uuid.New()
	}
	now := time.Now()
	adm.CreatedAt = now
	adm.UpdatedAt = now

	query := `
		INSERT INTO admins (id, email, mobile, password_hash, pin_hash, role,
			is_active, mfa_secret, mfa_enabled, created_at, updated_at
		) VALUES (:id, :email, :mobile, :password_hash, :pin_hash, :role,
			:is_active, :mfa_secret, :mfa_enabled, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, adm)
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	return nil
}

// UpdatePassword replaces the stored password hash
func (r *AdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE admins
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// UpdatePIN replaces the stored PIN hash
func (r *AdminRepository) UpdatePIN(ctx context.Context, id uuid.UUID, pinHash string) error {
	query := `
		UPDATE admins
		SET pin_hash = $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, pinHash)
	if err != nil {
		return fmt.Errorf("failed to update pin: %w", err)
	}

	return nil
}

// SetActive activates or deactivates an admin. Admins are never hard-deleted.
func (r *AdminRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `
		UPDATE admins
		SET is_active = $2,
			deactivated_at = CASE WHEN $2 THEN NULL ELSE NOW() END,
			updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("failed to set active flag: %w", err)
	}

	return nil
}

// SetMFASecret stores a new TOTP secret and clears the enabled flag until the
// enrollment is confirmed
func (r *AdminRepository) SetMFASecret(ctx context.Context, id uuid.UUID, secret string) error {
	query := `
		UPDATE admins
		SET mfa_secret = $2, mfa_enabled = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, secret)
	if err != nil {
		return fmt.Errorf("failed to set mfa secret: %w", err)
	}

	return nil
}

// EnableMFA flips the enabled flag. The guard on mfa_secret enforces that MFA
// can never be enabled without a stored secret.
func (r *AdminRepository) EnableMFA(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE admins
		SET mfa_enabled = TRUE, updated_at = NOW()
		WHERE id = $1 AND mfa_secret <> ''
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to enable mfa: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to enable mfa: %w", err)
	}
	if rows == 0 {
		return admin.ErrMFANotEnrolled
	}

	return nil
}
