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

func TestCreateSession(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	now := time.Now()
	session := &models.Session{
		ID:           "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90",
		AdminID:      uuid.New(),
		Role:         models.RoleAdmin,
		Email:        "ops@propline.example",
		Mobile:       "9812345678",
		ClientIP:     "203.0.113.10",
		CreatedAt:    now,
		LastActivity: now,
		ExpiresAt:    now.Add(24 * time.Hour),
	}

	mock.ExpectExec("^\\s*INSERT INTO admin_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateSession(context.Background(), session)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSession(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock, id string)
		wantErr   error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, id string) {
				now := time.Now()
				rows := sqlmock.NewRows([]string{
					"id", "admin_id", "role", "email", "mobile", "client_ip",
					"created_at", "last_activity", "expires_at",
				}).AddRow(id, uuid.New(), models.RoleAdmin, "ops@propline.example",
					"9812345678", "203.0.113.10", now, now, now.Add(time.Hour))
				mock.ExpectQuery("^\\s*SELECT (.+) FROM admin_sessions\\s+WHERE id").
					WithArgs(id).
					WillReturnRows(rows)
			},
			wantErr: nil,
		},
		{
			// An expired row is filtered by the query, so it surfaces exactly
			// like a missing one
			name: "Expired Or Missing",
			mockSetup: func(mock sqlmock.Sqlmock, id string) {
				mock.ExpectQuery("^\\s*SELECT (.+) FROM admin_sessions\\s+WHERE id").
					WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: admin.ErrSessionNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminRepoTest(t)
			defer cleanup()

			id := "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"
			tc.mockSetup(mock, id)

			session, err := repo.GetSession(context.Background(), id)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, id, session.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteSession_Idempotent(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	// Zero rows affected is still success
	mock.ExpectExec("^DELETE FROM admin_sessions WHERE id").
		WithArgs("unknown-session").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteSession(context.Background(), "unknown-session")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpiredSessions(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^DELETE FROM admin_sessions WHERE expires_at").
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpiredSessions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
