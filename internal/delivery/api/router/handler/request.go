package handler

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"keygate/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindRequest binds the body into req and validates it. On failure it writes the
// error response and returns ok=false together with the response error.
func bindRequest(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return false, response.ValidationError(c, typeErr.Field, typeErr.Field+": has the wrong type")
		}

		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.HandleAppError(c, err)
	}

	return true, nil
}

// parseLicenseID reads the :id path parameter.
func parseLicenseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func invalidLicenseID(c echo.Context) error {
	return response.ValidationError(c, "id", "id: must be a positive integer")
}

// trimmed returns nil for absent or blank values.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}

// optionalTime distinguishes an absent JSON field from an explicit null.
type optionalTime struct {
	Set   bool
	Value *time.Time
}

func (o *optionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil

		return nil
	}

	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return errors.WithStack(err)
	}
	o.Value = &t

	return nil
}
