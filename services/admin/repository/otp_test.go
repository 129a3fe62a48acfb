package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/services/admin"
)

func challengeRows(c *models.OtpChallenge) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "mobile", "provider_request_id", "status", "created_at", "expires_at", "verified_at",
	}).AddRow(c.ID, c.Mobile, c.ProviderRequestID, c.Status, c.CreatedAt, c.ExpiresAt, c.VerifiedAt)
}

func TestCreateChallenge(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	now := time.Now()
	challenge := &models.OtpChallenge{
		ID:                uuid.New(),
		Mobile:            "9812345678",
		ProviderRequestID: "req-123",
		Status:            models.ChallengeStatusPending,
		CreatedAt:         now,
		ExpiresAt:         now.Add(5 * time.Minute),
	}

	mock.ExpectExec("^\\s*INSERT INTO otp_challenges").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateChallenge(context.Background(), challenge)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChallenge_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("^\\s*SELECT (.+) FROM otp_challenges\\s+WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	challenge, err := repo.GetChallenge(context.Background(), id)
	assert.ErrorIs(t, err, admin.ErrChallengeNotFound)
	assert.Nil(t, challenge)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestPendingChallenge(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	now := time.Now()
	challenge := &models.OtpChallenge{
		ID:                uuid.New(),
		Mobile:            "9812345678",
		ProviderRequestID: "req-123",
		Status:            models.ChallengeStatusPending,
		CreatedAt:         now,
		ExpiresAt:         now.Add(5 * time.Minute),
	}

	mock.ExpectQuery("^\\s*SELECT (.+) FROM otp_challenges\\s+WHERE mobile").
		WithArgs("9812345678", models.ChallengeStatusPending).
		WillReturnRows(challengeRows(challenge))

	got, err := repo.GetLatestPendingChallenge(context.Background(), "9812345678")
	assert.NoError(t, err)
	assert.Equal(t, challenge.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetChallenge(t *testing.T) {
	testCases := []struct {
		name      string
		rows      int64
		wantReset bool
	}{
		{name: "Won The Race", rows: 1, wantReset: true},
		{name: "Lost The Race", rows: 0, wantReset: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminRepoTest(t)
			defer cleanup()

			id := uuid.New()
			prevCreatedAt := time.Now().Add(-time.Minute)
			expiresAt := time.Now().Add(5 * time.Minute)

			mock.ExpectExec("^\\s*UPDATE otp_challenges\\s+SET status").
				WithArgs(id, models.ChallengeStatusPending, expiresAt, prevCreatedAt).
				WillReturnResult(sqlmock.NewResult(0, tc.rows))

			reset, err := repo.ResetChallenge(context.Background(), id, prevCreatedAt, expiresAt)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantReset, reset)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSetChallengeProvider(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^\\s*UPDATE otp_challenges\\s+SET provider_request_id").
		WithArgs(id, "req-456").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetChallengeProvider(context.Background(), id, "req-456")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkChallengeVerified(t *testing.T) {
	testCases := []struct {
		name         string
		rows         int64
		wantVerified bool
	}{
		{name: "Pending Challenge Closed", rows: 1, wantVerified: true},
		{name: "Already Closed Or Expired", rows: 0, wantVerified: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminRepoTest(t)
			defer cleanup()

			id := uuid.New()
			mock.ExpectExec("^\\s*UPDATE otp_challenges\\s+SET status").
				WithArgs(id, models.ChallengeStatusVerified, models.ChallengeStatusPending).
				WillReturnResult(sqlmock.NewResult(0, tc.rows))

			verified, err := repo.MarkChallengeVerified(context.Background(), id)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantVerified, verified)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkChallengeFailed(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^\\s*UPDATE otp_challenges\\s+SET status").
		WithArgs(id, models.ChallengeStatusFailed, models.ChallengeStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkChallengeFailed(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireChallenges(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^\\s*UPDATE otp_challenges\\s+SET status").
		WithArgs(models.ChallengeStatusExpired, models.ChallengeStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 4))

	expired, err := repo.ExpireChallenges(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(4), expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}
