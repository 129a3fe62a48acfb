package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propline/adminauth/internal/pkg/logger"
	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/utils"
	"github.com/propline/adminauth/services/admin"
)

// respondAuthError maps usecase errors to HTTP responses. Credential-shaped
// failures all surface as 401 with a generic message.
func respondAuthError(c echo.Context, err error) error {
	var rateLimited *admin.RateLimitError
	if errors.As(err, &rateLimited) {
		return utils.RateLimitedResponse(c, "rate_limited", rateLimited.RetryAfter)
	}

	var cooldown *admin.CooldownError
	if errors.As(err, &cooldown) {
		return utils.RateLimitedResponse(c, "resend_cooldown", cooldown.Remaining)
	}

	switch {
	case errors.Is(err, admin.ErrInvalidCredentials):
		return utils.StatusErrorResponse(c, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
	case errors.Is(err, admin.ErrInvalidMFACode):
		return utils.StatusErrorResponse(c, http.StatusUnauthorized, "invalid_mfa_code", "Invalid authentication code")
	case errors.Is(err, admin.ErrMFANotEnrolled):
		return utils.StatusErrorResponse(c, http.StatusConflict, "mfa_not_enrolled", "MFA enrollment has not been started")
	case errors.Is(err, admin.ErrMFAAlreadyEnabled):
		return utils.StatusErrorResponse(c, http.StatusConflict, "mfa_already_enabled", "MFA is already enabled")
	case errors.Is(err, admin.ErrInvalidMobile):
		return utils.StatusErrorResponse(c, http.StatusBadRequest, "invalid_mobile", "Invalid mobile number")
	case errors.Is(err, admin.ErrNotWhitelisted):
		return utils.StatusErrorResponse(c, http.StatusForbidden, "not_whitelisted", "Mobile number is not authorized")
	case errors.Is(err, admin.ErrValidationToken):
		return utils.StatusErrorResponse(c, http.StatusUnauthorized, "invalid_validation_token", "Validation token invalid or already used")
	case errors.Is(err, admin.ErrChallengeNotFound):
		return utils.StatusErrorResponse(c, http.StatusNotFound, "challenge_not_found", "Challenge not found")
	case errors.Is(err, admin.ErrAssertionInvalid):
		return utils.StatusErrorResponse(c, http.StatusUnauthorized, "invalid_assertion", "Verification assertion invalid")
	case errors.Is(err, admin.ErrGatewayUnavailable):
		return utils.ServiceUnavailableResponse(c, "OTP delivery temporarily unavailable")
	case errors.Is(err, admin.ErrWeakPassword):
		return utils.StatusErrorResponse(c, http.StatusBadRequest, "weak_password", "New password must be at least 8 characters")
	case errors.Is(err, admin.ErrInvalidPIN):
		return utils.StatusErrorResponse(c, http.StatusBadRequest, "invalid_pin", "PIN must be 4 to 6 digits")
	case errors.Is(err, admin.ErrSessionNotFound):
		return utils.StatusErrorResponse(c, http.StatusUnauthorized, "session_invalid", "Session expired or invalid")
	default:
		logger.Error("Unhandled auth error", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}

// setSessionCookie attaches the session id as an HTTP-only cookie
func setSessionCookie(c echo.Context, cfg *models.Config, session *models.Session) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie
func clearSessionCookie(c echo.Context, cfg *models.Config) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionIDFromCookie extracts the session id, empty when absent
func sessionIDFromCookie(c echo.Context, cfg *models.Config) string {
	cookie, err := c.Cookie(cfg.Auth.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
