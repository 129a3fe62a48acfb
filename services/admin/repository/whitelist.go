package repository

import (
	"context"
	"fmt"
)

// IsWhitelisted reports whether the canonical mobile number is permitted to
// authenticate via OTP
func (r *AdminRepository) IsWhitelisted(ctx context.Context, mobile string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM whitelist_entries
			WHERE mobile = $1 AND is_active = TRUE
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, mobile)
	if err != nil {
		return false, fmt.Errorf("failed to check whitelist: %w", err)
	}

	return exists, nil
}
