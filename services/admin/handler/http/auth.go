package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propline/adminauth/internal/pkg/logger"
	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/utils"
	"github.com/propline/adminauth/services/admin"
)

// AuthHandler handles HTTP requests for the credential login path
type AuthHandler struct {
	authUC admin.AdminUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC admin.AdminUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// Login handles credential login requests. An authenticated outcome sets the
// session cookie; the MFA pending outcomes return 200 with a status the
// frontend branches on.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	result, err := h.authUC.Login(c.Request().Context(), &req, c.RealIP())
	if err != nil {
		return respondAuthError(c, err)
	}

	if result.Status == models.LoginStatusAuthenticated {
		setSessionCookie(c, h.cfg, result.Session)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login processed", result)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword rotates the authenticated admin's password
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	info, ok := c.Get("admin").(*models.AdminInfo)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, "Current and new password are required")
	}

	err := h.authUC.ChangePassword(c.Request().Context(), info.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return respondAuthError(c, err)
	}

	logger.Info("Password changed", logger.String("email", info.Email))
	return utils.SuccessResponse(c, http.StatusOK, "Password changed", nil)
}

type changePINRequest struct {
	Password string `json:"password"`
	PIN      string `json:"pin"`
}

// ChangePIN sets the authenticated admin's listing-approval PIN
func (h *AuthHandler) ChangePIN(c echo.Context) error {
	info, ok := c.Get("admin").(*models.AdminInfo)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req changePINRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Password == "" || req.PIN == "" {
		return utils.BadRequestResponse(c, "Password and PIN are required")
	}

	err := h.authUC.ChangePIN(c.Request().Context(), info.Email, req.Password, req.PIN)
	if err != nil {
		return respondAuthError(c, err)
	}

	logger.Info("PIN changed", logger.String("email", info.Email))
	return utils.SuccessResponse(c, http.StatusOK, "PIN changed", nil)
}
