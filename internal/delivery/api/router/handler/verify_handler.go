package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	messageInvalidRequest = "Invalid request format"
	messageUnavailable    = "License verification is temporarily unavailable"
)

// VerifyHandlerParams holds dependencies for VerifyHandler, injected by Fx.
type VerifyHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
	Logger         *slog.Logger
}

// VerifyHandler serves the public verification endpoint. Its body is the bare
// verification result so that client integrations stay simple.
type VerifyHandler struct {
	verificationUC usecase.VerificationUsecase
	logger         *slog.Logger
}

// NewVerifyHandler is the constructor for VerifyHandler
func NewVerifyHandler(params VerifyHandlerParams) *VerifyHandler {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &VerifyHandler{
		verificationUC: params.VerificationUC,
		logger:         logger,
	}
}

// VerifyLicenseRequest is the body of POST /api/verify-license
type VerifyLicenseRequest struct {
	Key string `json:"key"`
}

// Verify checks a license key. Unknown, revoked and expired keys are reported with 200,
// and so are storage failures; only a malformed body is answered with 400.
func (h *VerifyHandler) Verify(c echo.Context) error {
	var req VerifyLicenseRequest
	if err := c.Bind(&req); err != nil || req.Key == "" {
		return c.JSON(http.StatusBadRequest, &usecase.VerificationResult{
			Valid:   false,
			Message: messageInvalidRequest,
		})
	}

	result, err := h.verificationUC.Verify(c.Request().Context(), req.Key)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("License verification failed",
			slog.Any("error", err),
		)

		return c.JSON(http.StatusOK, &usecase.VerificationResult{
			Valid:   false,
			Message: messageUnavailable,
		})
	}

	return c.JSON(http.StatusOK, result)
}
