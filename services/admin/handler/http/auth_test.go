package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/services/admin"
	"github.com/propline/adminauth/services/admin/mocks"
)

func handlerConfig() *models.Config {
	return &models.Config{
		Auth: models.AuthConfig{
			CookieName:   "admin_session",
			CookieSecure: true,
		},
	}
}

func postJSON(target, body string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func sessionCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestLogin_Authenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	authHandler := NewAuthHandler(mockUC, handlerConfig())

	session := &models.Session{
		ID:        "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.LoginResult{
			Status:  models.LoginStatusAuthenticated,
			Session: session,
			Admin:   &models.AdminInfo{ID: uuid.New(), Email: "ops@propline.example"},
		}, nil)

	rec, c := postJSON("/auth/login", `{"email":"ops@propline.example","password":"correct-horse","auth_code":"123456"}`)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec, "admin_session")
	require.NotNil(t, cookie)
	assert.Equal(t, session.ID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "authenticated", data["status"])
	// the opaque session id only travels in the cookie
	assert.NotContains(t, rec.Body.String(), session.ID)
}

func TestLogin_MFASetupRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	authHandler := NewAuthHandler(mockUC, handlerConfig())

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.LoginResult{Status: models.LoginStatusMFASetupRequired}, nil)

	rec, c := postJSON("/auth/login", `{"email":"ops@propline.example","password":"correct-horse"}`)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, sessionCookie(rec, "admin_session"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "mfa_setup_required", data["status"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	authHandler := NewAuthHandler(mockUC, handlerConfig())

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, admin.ErrInvalidCredentials)

	rec, c := postJSON("/auth/login", `{"email":"ops@propline.example","password":"wrong"}`)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "invalid_credentials", response["status"])
}

func TestLogin_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	authHandler := NewAuthHandler(mockUC, handlerConfig())

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &admin.RateLimitError{RetryAfter: 42 * time.Second})

	rec, c := postJSON("/auth/login", `{"email":"ops@propline.example","password":"wrong"}`)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "42", rec.Header().Get("Retry-After"))
}

func TestLogin_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	authHandler := NewAuthHandler(mockUC, handlerConfig())

	rec, c := postJSON("/auth/login", `{"email":"ops@propline.example"}`)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetupMFA_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	authHandler := NewAuthHandler(mockUC, handlerConfig())

	mockUC.EXPECT().
		SetupMFA(gomock.Any(), "ops@propline.example").
		Return(&models.MFASetupResponse{
			Secret:        "JBSWY3DPEHPK3PXP",
			EnrollmentURI: "otpauth://totp/Propline:ops@propline.example?secret=JBSWY3DPEHPK3PXP",
		}, nil)

	rec, c := postJSON("/auth/mfa/setup", `{"email":"ops@propline.example"}`)

	err := authHandler.SetupMFA(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "otpauth://totp/")
}

func TestConfirmMFA_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	authHandler := NewAuthHandler(mockUC, handlerConfig())

	mockUC.EXPECT().
		ConfirmMFA(gomock.Any(), "ops@propline.example", "000000").
		Return(admin.ErrInvalidMFACode)

	rec, c := postJSON("/auth/mfa/confirm", `{"email":"ops@propline.example","code":"000000"}`)

	err := authHandler.ConfirmMFA(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "invalid_mfa_code", response["status"])
}

func TestChangePassword_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	authHandler := NewAuthHandler(mockUC, handlerConfig())

	// context without an admin set by the session middleware
	rec, c := postJSON("/account/password", `{"current_password":"a","new_password":"longenough"}`)

	err := authHandler.ChangePassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	authHandler := NewAuthHandler(mockUC, handlerConfig())

	mockUC.EXPECT().
		ChangePassword(gomock.Any(), "ops@propline.example", "old-password", "new-password").
		Return(nil)

	rec, c := postJSON("/account/password", `{"current_password":"old-password","new_password":"new-password"}`)
	c.Set("admin", &models.AdminInfo{Email: "ops@propline.example"})

	err := authHandler.ChangePassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
