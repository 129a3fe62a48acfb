package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/services/admin"
)

func TestValidationToken_RoundTrip(t *testing.T) {
	repo, mr := setupRedisRepoTest(t)
	defer mr.Close()

	now := time.Now()
	token := &models.ValidationToken{
		Token:     "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
		Mobile:    "9812345678",
		ClientIP:  "203.0.113.10",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}

	err := repo.StoreValidationToken(context.Background(), token)
	require.NoError(t, err)

	got, err := repo.ConsumeValidationToken(context.Background(), token.Token)
	require.NoError(t, err)
	assert.Equal(t, token.Mobile, got.Mobile)
	assert.Equal(t, token.ClientIP, got.ClientIP)
}

func TestValidationToken_SingleUse(t *testing.T) {
	repo, mr := setupRedisRepoTest(t)
	defer mr.Close()

	now := time.Now()
	token := &models.ValidationToken{
		Token:     "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
		Mobile:    "9812345678",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}

	require.NoError(t, repo.StoreValidationToken(context.Background(), token))

	_, err := repo.ConsumeValidationToken(context.Background(), token.Token)
	require.NoError(t, err)

	// Second consume must fail
	_, err = repo.ConsumeValidationToken(context.Background(), token.Token)
	assert.ErrorIs(t, err, admin.ErrValidationToken)
}

func TestValidationToken_Expiry(t *testing.T) {
	repo, mr := setupRedisRepoTest(t)
	defer mr.Close()

	now := time.Now()
	token := &models.ValidationToken{
		Token:     "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
		Mobile:    "9812345678",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}

	require.NoError(t, repo.StoreValidationToken(context.Background(), token))

	mr.FastForward(6 * time.Minute)

	_, err := repo.ConsumeValidationToken(context.Background(), token.Token)
	assert.ErrorIs(t, err, admin.ErrValidationToken)
}

func TestValidationToken_UnknownToken(t *testing.T) {
	repo, mr := setupRedisRepoTest(t)
	defer mr.Close()

	_, err := repo.ConsumeValidationToken(context.Background(), "never-issued")
	assert.ErrorIs(t, err, admin.ErrValidationToken)
}

func TestStoreValidationToken_AlreadyExpired(t *testing.T) {
	repo, mr := setupRedisRepoTest(t)
	defer mr.Close()

	now := time.Now()
	token := &models.ValidationToken{
		Token:     "deadbeef",
		Mobile:    "9812345678",
		CreatedAt: now.Add(-10 * time.Minute),
		ExpiresAt: now.Add(-5 * time.Minute),
	}

	err := repo.StoreValidationToken(context.Background(), token)
	assert.Error(t, err)
}
