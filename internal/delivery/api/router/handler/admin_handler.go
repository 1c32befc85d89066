package handler

import (
	"net/http"
	"time"

	"keygate/config"
	"keygate/internal/delivery/api/response"
	"keygate/internal/domain/constants"
	"keygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Config  *config.Config
}

// AdminHandler serves the admin session routes
type AdminHandler struct {
	adminUC      usecase.AdminUsecase
	secureCookie bool
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:      params.AdminUC,
		secureCookie: params.Config.Admin.SecureCookie,
	}
}

// LoginRequest is the body of POST /api/admin/login
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type sessionStatus struct {
	Authenticated bool `json:"authenticated"`
}

// Login exchanges the admin password for a session cookie
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	session, err := h.adminUC.Login(c.Request().Context(), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.sessionCookie(session.Token, session.ExpiresAt))

	return response.Success(c, http.StatusOK, sessionStatus{Authenticated: true})
}

// Session reports whether the caller holds a valid admin session
func (h *AdminHandler) Session(c echo.Context) error {
	authenticated := false
	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		authenticated = h.adminUC.Authenticate(c.Request().Context(), cookie.Value) == nil
	}

	return response.Success(c, http.StatusOK, sessionStatus{Authenticated: authenticated})
}

// Logout clears the session cookie
func (h *AdminHandler) Logout(c echo.Context) error {
	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return response.Success(c, http.StatusOK, sessionStatus{Authenticated: false})
}

func (h *AdminHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
