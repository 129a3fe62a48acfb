package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/propline/adminauth/internal/pkg/middleware"
	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/utils"
	"github.com/propline/adminauth/services/admin"
	"github.com/propline/adminauth/services/admin/handler/http"
)

// Handler coordinates the HTTP handlers for the admin auth service
type Handler struct {
	authHandler    *http.AuthHandler
	otpHandler     *http.OTPHandler
	sessionHandler *http.SessionHandler
	authUC         admin.AdminUC
	limiter        middleware.Limiter
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	otpHandler *http.OTPHandler,
	sessionHandler *http.SessionHandler,
	authUC admin.AdminUC,
	limiter middleware.Limiter,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		otpHandler:     otpHandler,
		sessionHandler: sessionHandler,
		authUC:         authUC,
		limiter:        limiter,
		cfg:            cfg,
	}
}

// SessionMiddleware resolves the session cookie and puts the admin on the
// request context. Requests without a valid session get a 401.
func (h *Handler) SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(h.cfg.Auth.CookieName)
			if err != nil || cookie.Value == "" {
				return utils.UnauthorizedResponse(c, "")
			}

			info, err := h.authUC.VerifySession(c.Request().Context(), cookie.Value)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Session expired or invalid")
			}

			c.Set("admin", info)
			return next(c)
		}
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")

	// credential login path
	authGroup.POST("/login", h.authHandler.Login)

	// TOTP enrollment. Confirm is throttled per email inside the usecase;
	// setup gets a coarse per-IP throttle here.
	mfaGroup := authGroup.Group("/mfa")
	mfaGroup.POST("/setup", h.authHandler.SetupMFA,
		middleware.RateLimiterMiddleware(h.limiter, admin.ActionMFAConfirm))
	mfaGroup.POST("/confirm", h.authHandler.ConfirmMFA)

	// mobile OTP login path
	otpGroup := authGroup.Group("/otp")
	otpGroup.POST("/send", h.otpHandler.SendOTP)
	otpGroup.POST("/resend", h.otpHandler.ResendOTP)
	otpGroup.POST("/verify", h.otpHandler.VerifyOTP)

	// session lifecycle
	authGroup.GET("/me", h.sessionHandler.Me)
	authGroup.POST("/logout", h.sessionHandler.Logout)

	// authenticated account maintenance
	accountGroup := e.Group("/account", h.SessionMiddleware())
	accountGroup.POST("/password", h.authHandler.ChangePassword)
	accountGroup.POST("/pin", h.authHandler.ChangePIN)
}
