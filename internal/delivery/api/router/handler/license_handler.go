package handler

import (
	"log/slog"
	"net/http"

	"keygate/internal/delivery/api/response"
	"keygate/internal/domain/entity"
	"keygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LicenseHandlerParams holds dependencies for LicenseHandler, injected by Fx.
type LicenseHandlerParams struct {
	fx.In

	LicenseUC usecase.LicenseUsecase
	Logger    *slog.Logger
}

// LicenseHandler serves the admin license management routes
type LicenseHandler struct {
	licenseUC usecase.LicenseUsecase
	logger    *slog.Logger
}

// NewLicenseHandler is the constructor for LicenseHandler
func NewLicenseHandler(params LicenseHandlerParams) *LicenseHandler {
	return &LicenseHandler{
		licenseUC: params.LicenseUC,
		logger:    params.Logger,
	}
}

// CreateLicenseRequest is the body of POST /api/licenses
type CreateLicenseRequest struct {
	ClientName    string  `json:"clientName" validate:"required,max=255"`
	Description   *string `json:"description"`
	Email         *string `json:"email" validate:"omitempty,email"`
	DiscordID     *string `json:"discordId"`
	ExpiresInDays int     `json:"expiresInDays" validate:"gte=0"`
}

// UpdateLicenseRequest is the body of PUT /api/licenses/:id. Absent fields are left
// unchanged; an explicit null expiresAt makes the license lifetime.
type UpdateLicenseRequest struct {
	ClientName  *string      `json:"clientName" validate:"omitempty,max=255"`
	Description *string      `json:"description"`
	Email       *string      `json:"email" validate:"omitempty,email"`
	DiscordID   *string      `json:"discordId"`
	IsActive    *bool        `json:"isActive"`
	ExpiresAt   optionalTime `json:"expiresAt"`
}

func (r *UpdateLicenseRequest) patch() *entity.LicensePatch {
	patch := &entity.LicensePatch{
		ClientName:  r.ClientName,
		Description: r.Description,
		Email:       r.Email,
		DiscordID:   r.DiscordID,
		IsActive:    r.IsActive,
	}
	if r.ExpiresAt.Set {
		if r.ExpiresAt.Value == nil {
			patch.ClearExpiresAt = true
		} else {
			patch.ExpiresAt = r.ExpiresAt.Value
		}
	}

	return patch
}

// List returns every license, newest first
func (h *LicenseHandler) List(c echo.Context) error {
	licenses, err := h.licenseUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, licenses)
}

// Get returns one license
func (h *LicenseHandler) Get(c echo.Context) error {
	id, ok := parseLicenseID(c)
	if !ok {
		return invalidLicenseID(c)
	}

	license, err := h.licenseUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, license)
}

// Create issues a new license
func (h *LicenseHandler) Create(c echo.Context) error {
	var req CreateLicenseRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	license, err := h.licenseUC.Issue(c.Request().Context(), &usecase.IssueLicenseInput{
		ClientName:    req.ClientName,
		Description:   trimmed(req.Description),
		Email:         trimmed(req.Email),
		DiscordID:     trimmed(req.DiscordID),
		ExpiresInDays: req.ExpiresInDays,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, license)
}

// Update applies a partial edit
func (h *LicenseHandler) Update(c echo.Context) error {
	id, ok := parseLicenseID(c)
	if !ok {
		return invalidLicenseID(c)
	}

	var req UpdateLicenseRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	license, err := h.licenseUC.UpdateFields(c.Request().Context(), id, req.patch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, license)
}

// Revoke deactivates a license
func (h *LicenseHandler) Revoke(c echo.Context) error {
	return h.setActive(c, false)
}

// Activate re-activates a revoked license
func (h *LicenseHandler) Activate(c echo.Context) error {
	return h.setActive(c, true)
}

func (h *LicenseHandler) setActive(c echo.Context, active bool) error {
	id, ok := parseLicenseID(c)
	if !ok {
		return invalidLicenseID(c)
	}

	license, err := h.licenseUC.SetActive(c.Request().Context(), id, active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, license)
}

// Delete removes a license
func (h *LicenseHandler) Delete(c echo.Context) error {
	id, ok := parseLicenseID(c)
	if !ok {
		return invalidLicenseID(c)
	}

	if err := h.licenseUC.Remove(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// QRCode renders the license key as a PNG image
func (h *LicenseHandler) QRCode(c echo.Context) error {
	id, ok := parseLicenseID(c)
	if !ok {
		return invalidLicenseID(c)
	}

	png, err := h.licenseUC.QRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Stats returns license counts by status
func (h *LicenseHandler) Stats(c echo.Context) error {
	stats, err := h.licenseUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
