package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/services/admin"
)

const validationTokenPrefix = "vtoken:"

// StoreValidationToken stores a validation token with its TTL
func (r *AdminRepository) StoreValidationToken(ctx context.Context, token *models.ValidationToken) error {
	payload, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal validation token: %w", err)
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("validation token already expired")
	}

	err = r.redisClient.Set(ctx, validationTokenPrefix+token.Token, payload, ttl)
	if err != nil {
		return fmt.Errorf("failed to store validation token: %w", err)
	}

	return nil
}

// ConsumeValidationToken atomically fetches and deletes a validation token.
// GETDEL guarantees a token can only ever be consumed once, even under
// concurrent verify calls.
func (r *AdminRepository) ConsumeValidationToken(ctx context.Context, token string) (*models.ValidationToken, error) {
	payload, err := r.redisClient.Client.GetDel(ctx, validationTokenPrefix+token).Result()
	if err != nil {
		return nil, admin.ErrValidationToken
	}

	var vt models.ValidationToken
	if err := json.Unmarshal([]byte(payload), &vt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal validation token: %w", err)
	}

	return &vt, nil
}
