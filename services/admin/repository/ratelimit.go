package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/propline/adminauth/services/admin"
)

// Allow applies a fixed-window rate limit for the given action and key.
// It returns whether the attempt is allowed and, when denied, how long until
// the window resets. INCR followed by EXPIRE on the first hit keeps the
// counter atomic without a transaction.
func (r *AdminRepository) Allow(ctx context.Context, action, key string) (bool, time.Duration, error) {
	limit, window := r.limitFor(action)
	if limit <= 0 {
		return true, 0, nil
	}

	redisKey := fmt.Sprintf("rate:%s:%s", action, key)

	count, err := r.redisClient.Client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment rate counter: %w", err)
	}

	if count == 1 {
		if err := r.redisClient.Client.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set rate window: %w", err)
		}
	}

	if count <= int64(limit) {
		return true, 0, nil
	}

	retryAfter, err := r.redisClient.Client.TTL(ctx, redisKey).Result()
	if err != nil || retryAfter < 0 {
		retryAfter = window
	}

	return false, retryAfter, nil
}

func (r *AdminRepository) limitFor(action string) (int, time.Duration) {
	auth := r.cfg.Auth
	switch action {
	case admin.ActionLogin:
		return auth.LoginLimit, time.Duration(auth.LoginWindow) * time.Second
	case admin.ActionOTPSend:
		return auth.OTPSendLimit, time.Duration(auth.OTPSendWindow) * time.Second
	case admin.ActionOTPVerify:
		return auth.OTPVerifyLimit, time.Duration(auth.OTPVerifyWindow) * time.Second
	case admin.ActionMFAConfirm:
		return auth.MFAConfirmLimit, time.Duration(auth.MFAConfirmWindow) * time.Second
	default:
		return 0, 0
	}
}
