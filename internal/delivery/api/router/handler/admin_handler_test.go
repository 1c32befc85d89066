package handler

import (
	"net/http"
	"testing"
	"time"

	"keygate/config"
	"keygate/internal/domain/constants"
	domainerrors "keygate/internal/domain/errors"
	mockUsecase "keygate/internal/mocks/usecase"
	"keygate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminHandler(t *testing.T, secure bool) (*AdminHandler, *mockUsecase.MockAdminUsecase) {
	t.Helper()

	adminUC := mockUsecase.NewMockAdminUsecase(t)
	cfg := &config.Config{}
	cfg.Admin.SecureCookie = secure

	return NewAdminHandler(AdminHandlerParams{AdminUC: adminUC, Config: cfg}), adminUC
}

func sessionCookie(t *testing.T, header http.Header) *http.Cookie {
	t.Helper()

	for _, cookie := range (&http.Response{Header: header}).Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie set", constants.SessionCookieName)

	return nil
}

func TestAdminHandler_Login(t *testing.T) {
	t.Run("sets session cookie", func(t *testing.T) {
		h, adminUC := newAdminHandler(t, true)
		expiresAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		adminUC.EXPECT().Login(mock.Anything, "s3cret").
			Return(&usecase.AdminSession{Token: "jwt-token", ExpiresAt: expiresAt}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/admin/login", `{"password":"s3cret"}`, nil)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"authenticated":true}`, string(decodeEnvelope(t, rec).Data))

		cookie := sessionCookie(t, rec.Header())
		assert.Equal(t, "jwt-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, "/", cookie.Path)
		assert.True(t, expiresAt.Equal(cookie.Expires))
	})

	t.Run("wrong password", func(t *testing.T) {
		h, adminUC := newAdminHandler(t, false)
		adminUC.EXPECT().Login(mock.Anything, "guess").Return(nil, domainerrors.ErrInvalidCredentials)

		c, rec := newTestContext(http.MethodPost, "/api/admin/login", `{"password":"guess"}`, nil)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Header().Values("Set-Cookie"))
	})

	t.Run("missing password", func(t *testing.T) {
		h, _ := newAdminHandler(t, false)

		c, rec := newTestContext(http.MethodPost, "/api/admin/login", `{}`, nil)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "password", errorField(t, decodeEnvelope(t, rec)))
	})
}

func TestAdminHandler_Session(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		valid  bool
		want   string
	}{
		{name: "no cookie", want: `{"authenticated":false}`},
		{name: "valid cookie", cookie: "good", valid: true, want: `{"authenticated":true}`},
		{name: "stale cookie", cookie: "stale", want: `{"authenticated":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, adminUC := newAdminHandler(t, false)
			if tt.cookie != "" {
				var err error
				if !tt.valid {
					err = domainerrors.ErrUnauthorized
				}
				adminUC.EXPECT().Authenticate(mock.Anything, tt.cookie).Return(err)
			}

			c, rec := newTestContext(http.MethodGet, "/api/admin/session", "", nil)
			if tt.cookie != "" {
				c.Request().AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: tt.cookie})
			}

			require.NoError(t, h.Session(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, string(decodeEnvelope(t, rec).Data))
		})
	}
}

func TestAdminHandler_Logout(t *testing.T) {
	h, _ := newAdminHandler(t, false)

	c, rec := newTestContext(http.MethodPost, "/api/admin/logout", "", nil)

	require.NoError(t, h.Logout(c))
	cookie := sessionCookie(t, rec.Header())
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}
