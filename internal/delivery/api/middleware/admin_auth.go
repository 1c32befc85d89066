package middleware

import (
	"log/slog"

	"keygate/internal/delivery/api/response"
	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/constants"
	"keygate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminAuthMiddleware guards the management routes with the admin session cookie.
type AdminAuthMiddleware struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminAuthMiddleware creates a new AdminAuthMiddleware.
func NewAdminAuthMiddleware(adminUC usecase.AdminUsecase, logger *slog.Logger) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{adminUC: adminUC, logger: logger}
}

// RequireSession rejects requests without a valid admin session with 401 UNAUTHORIZED.
func (m *AdminAuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(constants.SessionCookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Admin session required")
		}

		if err := m.adminUC.Authenticate(c.Request().Context(), cookie.Value); err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected admin session",
				slog.Any("error", err),
			)

			return response.Unauthorized(c, "UNAUTHORIZED", "Admin session required")
		}

		return next(c)
	}
}
