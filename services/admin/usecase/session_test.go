package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/services/admin"
)

func liveSession(adm *models.AdminUser) *models.Session {
	now := time.Now()
	return &models.Session{
		ID:           "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90",
		AdminID:      adm.ID,
		Role:         adm.Role,
		Email:        adm.Email,
		Mobile:       adm.Mobile,
		ClientIP:     "203.0.113.10",
		CreatedAt:    now.Add(-time.Hour),
		LastActivity: now.Add(-time.Minute),
		ExpiresAt:    now.Add(23 * time.Hour),
	}
}

func TestVerifySession_Success(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	adm := testAdmin(t, "correct-horse")
	session := liveSession(adm)

	mockRepo.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil)
	mockRepo.EXPECT().GetAdminByID(gomock.Any(), adm.ID).Return(adm, nil)
	mockRepo.EXPECT().TouchSession(gomock.Any(), session.ID).Return(nil)

	info, err := uc.VerifySession(context.Background(), session.ID)

	require.NoError(t, err)
	assert.Equal(t, adm.ID, info.ID)
	assert.Equal(t, adm.Email, info.Email)
}

func TestVerifySession_EmptyID(t *testing.T) {
	uc, _, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	info, err := uc.VerifySession(context.Background(), "")

	assert.ErrorIs(t, err, admin.ErrSessionNotFound)
	assert.Nil(t, info)
}

func TestVerifySession_Expired(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	adm := testAdmin(t, "correct-horse")
	session := liveSession(adm)
	session.ExpiresAt = time.Now().Add(-time.Second)

	mockRepo.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil)

	info, err := uc.VerifySession(context.Background(), session.ID)

	assert.ErrorIs(t, err, admin.ErrSessionNotFound)
	assert.Nil(t, info)
}

func TestVerifySession_OwnerDeactivated(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	adm := testAdmin(t, "correct-horse")
	adm.IsActive = false
	session := liveSession(adm)

	mockRepo.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil)
	mockRepo.EXPECT().GetAdminByID(gomock.Any(), adm.ID).Return(adm, nil)

	info, err := uc.VerifySession(context.Background(), session.ID)

	assert.ErrorIs(t, err, admin.ErrSessionNotFound)
	assert.Nil(t, info)
}

func TestVerifySession_TouchFailureIsNotFatal(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	adm := testAdmin(t, "correct-horse")
	session := liveSession(adm)

	mockRepo.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil)
	mockRepo.EXPECT().GetAdminByID(gomock.Any(), adm.ID).Return(adm, nil)
	mockRepo.EXPECT().TouchSession(gomock.Any(), session.ID).Return(assert.AnError)

	info, err := uc.VerifySession(context.Background(), session.ID)

	assert.NoError(t, err)
	assert.NotNil(t, info)
}

func TestLogout_DestroysSession(t *testing.T) {
	uc, mockRepo, _, mockEvents, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	adm := testAdmin(t, "correct-horse")
	session := liveSession(adm)

	mockRepo.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil)
	mockRepo.EXPECT().DeleteSession(gomock.Any(), session.ID).Return(nil)
	mockEvents.EXPECT().PublishSessionEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SessionEvent) error {
			assert.Equal(t, models.EventSessionDestroyed, event.Type)
			return nil
		})

	err := uc.Logout(context.Background(), session.ID)
	assert.NoError(t, err)
}

func TestLogout_UnknownSessionIsNoop(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetSession(gomock.Any(), "unknown").
		Return(nil, admin.ErrSessionNotFound)
	mockRepo.EXPECT().DeleteSession(gomock.Any(), "unknown").Return(nil)

	// no session event expected
	err := uc.Logout(context.Background(), "unknown")
	assert.NoError(t, err)
}

func TestLogout_EmptyID(t *testing.T) {
	uc, _, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	err := uc.Logout(context.Background(), "")
	assert.NoError(t, err)
}

func TestSweepSessions(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().DeleteExpiredSessions(gomock.Any()).Return(int64(7), nil)

	removed, err := uc.SweepSessions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), removed)
}

func TestSweepChallenges(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().ExpireChallenges(gomock.Any()).Return(int64(3), nil)

	expired, err := uc.SweepChallenges(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), expired)
}
