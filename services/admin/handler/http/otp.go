package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/utils"
	"github.com/propline/adminauth/services/admin"
)

// OTPHandler handles HTTP requests for the mobile OTP login path
type OTPHandler struct {
	authUC admin.AdminUC
	cfg    *models.Config
}

// NewOTPHandler creates a new OTP handler
func NewOTPHandler(authUC admin.AdminUC, cfg *models.Config) *OTPHandler {
	return &OTPHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// SendOTP dispatches a one-time code to a whitelisted mobile number
func (h *OTPHandler) SendOTP(c echo.Context) error {
	var req models.OTPSendRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Mobile == "" {
		return utils.BadRequestResponse(c, "Mobile is required")
	}

	result, err := h.authUC.SendOTP(c.Request().Context(), req.Mobile, c.RealIP())
	if err != nil {
		return respondAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP dispatched", result)
}

// ResendOTP re-dispatches the code for an existing challenge
func (h *OTPHandler) ResendOTP(c echo.Context) error {
	var req models.OTPResendRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.ChallengeID == "" {
		return utils.BadRequestResponse(c, "Challenge id is required")
	}

	result, err := h.authUC.ResendOTP(c.Request().Context(), req.ChallengeID, c.RealIP())
	if err != nil {
		return respondAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP re-dispatched", result)
}

// VerifyOTP completes the mobile login path and sets the session cookie
func (h *OTPHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Mobile == "" || req.AssertionToken == "" {
		return utils.BadRequestResponse(c, "Mobile and assertion token are required")
	}

	result, err := h.authUC.VerifyOTP(c.Request().Context(), &req, c.RealIP())
	if err != nil {
		return respondAuthError(c, err)
	}

	setSessionCookie(c, h.cfg, result.Session)

	return utils.SuccessResponse(c, http.StatusOK, "Login processed", result)
}
