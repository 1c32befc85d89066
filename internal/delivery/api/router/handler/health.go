package handler

import (
	"net/http"

	"keygate/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is the liveness check.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
