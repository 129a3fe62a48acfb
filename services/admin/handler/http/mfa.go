package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/utils"
)

// SetupMFA starts TOTP enrollment: generates and stores a secret and returns
// the otpauth URI for the authenticator app
func (h *AuthHandler) SetupMFA(c echo.Context) error {
	var req models.MFASetupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	setup, err := h.authUC.SetupMFA(c.Request().Context(), req.Email)
	if err != nil {
		return respondAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "MFA enrollment started", setup)
}

// ConfirmMFA verifies one code against the stored secret and enables MFA
func (h *AuthHandler) ConfirmMFA(c echo.Context) error {
	var req models.MFAConfirmRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Email and code are required")
	}

	if err := h.authUC.ConfirmMFA(c.Request().Context(), req.Email, req.Code); err != nil {
		return respondAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "MFA enabled", nil)
}
