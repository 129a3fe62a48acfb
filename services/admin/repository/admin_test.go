package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propline/adminauth/internal/pkg/database"
	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/services/admin"
)

func setupAdminRepoTest(t *testing.T) (*AdminRepository, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AdminRepository{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func adminRows(adm *models.AdminUser) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "mobile", "password_hash", "pin_hash", "role",
		"is_active", "mfa_secret", "mfa_enabled", "created_at", "updated_at", "deactivated_at",
	}).AddRow(
		adm.ID, adm.Email, adm.Mobile, adm.PasswordHash, adm.PinHash, adm.Role,
		adm.IsActive, adm.MFASecret, adm.MFAEnabled, adm.CreatedAt, adm.UpdatedAt, adm.DeactivatedAt,
	)
}

func TestGetAdminByEmail(t *testing.T) {
	testCases := []struct {
		name       string
		email      string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, adm *models.AdminUser, err error)
	}{
		{
			name:  "Success",
			email: "Ops@Propline.example",
			mockSetup: func(mock sqlmock.Sqlmock) {
				adm := &models.AdminUser{
					ID:           uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
					Email:        "ops@propline.example",
					Mobile:       "9812345678",
					PasswordHash: "$2a$10$hash",
					Role:         models.RoleAdmin,
					IsActive:     true,
					MFAEnabled:   true,
					MFASecret:    "JBSWY3DPEHPK3PXP",
					CreatedAt:    time.Now(),
					UpdatedAt:    time.Now(),
				}
				mock.ExpectQuery("^\\s*SELECT (.+) FROM admins\\s+WHERE LOWER\\(email\\)").
					WithArgs("Ops@Propline.example").
					WillReturnRows(adminRows(adm))
			},
			assertFunc: func(t *testing.T, adm *models.AdminUser, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, adm)
				assert.Equal(t, "ops@propline.example", adm.Email)
				assert.True(t, adm.MFAEnabled)
			},
		},
		{
			name:  "Not Found",
			email: "nobody@propline.example",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^\\s*SELECT (.+) FROM admins\\s+WHERE LOWER\\(email\\)").
					WithArgs("nobody@propline.example").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, adm *models.AdminUser, err error) {
				assert.ErrorIs(t, err, admin.ErrAdminNotFound)
				assert.Nil(t, adm)
			},
		},
		{
			name:  "Database Error",
			email: "ops@propline.example",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^\\s*SELECT (.+) FROM admins\\s+WHERE LOWER\\(email\\)").
					WithArgs("ops@propline.example").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, adm *models.AdminUser, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, admin.ErrAdminNotFound)
				assert.Nil(t, adm)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			adm, err := repo.GetAdminByEmail(context.Background(), tc.email)

			tc.assertFunc(t, adm, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetAdminByMobile(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	adm := &models.AdminUser{
		ID:       uuid.New(),
		Email:    "ops@propline.example",
		Mobile:   "9812345678",
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	}
	mock.ExpectQuery("^\\s*SELECT (.+) FROM admins\\s+WHERE mobile").
		WithArgs("9812345678").
		WillReturnRows(adminRows(adm))

	got, err := repo.GetAdminByMobile(context.Background(), "9812345678")
	assert.NoError(t, err)
	assert.Equal(t, adm.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMFASecret(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^\\s*UPDATE admins\\s+SET mfa_secret").
		WithArgs(id, "JBSWY3DPEHPK3PXP").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetMFASecret(context.Background(), id, "JBSWY3DPEHPK3PXP")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnableMFA(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock, id uuid.UUID)
		wantErr   error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("^\\s*UPDATE admins\\s+SET mfa_enabled").
					WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantErr: nil,
		},
		{
			name: "No Secret Stored",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("^\\s*UPDATE admins\\s+SET mfa_enabled").
					WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: admin.ErrMFANotEnrolled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminRepoTest(t)
			defer cleanup()

			id := uuid.New()
			tc.mockSetup(mock, id)

			err := repo.EnableMFA(context.Background(), id)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIsWhitelisted(t *testing.T) {
	testCases := []struct {
		name   string
		mobile string
		exists bool
	}{
		{name: "Whitelisted", mobile: "9812345678", exists: true},
		{name: "Not Whitelisted", mobile: "9899999999", exists: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminRepoTest(t)
			defer cleanup()

			rows := sqlmock.NewRows([]string{"exists"}).AddRow(tc.exists)
			mock.ExpectQuery("^\\s*SELECT EXISTS").
				WithArgs(tc.mobile).
				WillReturnRows(rows)

			got, err := repo.IsWhitelisted(context.Background(), tc.mobile)
			assert.NoError(t, err)
			assert.Equal(t, tc.exists, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
