package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/utils"
	"github.com/propline/adminauth/services/admin"
)

// SessionHandler handles session inspection and logout
type SessionHandler struct {
	authUC admin.AdminUC
	cfg    *models.Config
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(authUC admin.AdminUC, cfg *models.Config) *SessionHandler {
	return &SessionHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// Me reports whether the session cookie is still good and, when it is, the
// admin behind it. Always a 200; consumers branch on the authenticated flag.
func (h *SessionHandler) Me(c echo.Context) error {
	sessionID := sessionIDFromCookie(c, h.cfg)

	info, err := h.authUC.VerifySession(c.Request().Context(), sessionID)
	if err != nil {
		clearSessionCookie(c, h.cfg)
		return utils.SuccessResponse(c, http.StatusOK, "Session invalid", echo.Map{
			"authenticated": false,
		})
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session valid", echo.Map{
		"authenticated": true,
		"admin":         info,
	})
}

// Logout destroys the current session and clears the cookie. Logging out
// without a valid session still succeeds.
func (h *SessionHandler) Logout(c echo.Context) error {
	sessionID := sessionIDFromCookie(c, h.cfg)

	if err := h.authUC.Logout(c.Request().Context(), sessionID); err != nil {
		return respondAuthError(c, err)
	}

	clearSessionCookie(c, h.cfg)

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}
