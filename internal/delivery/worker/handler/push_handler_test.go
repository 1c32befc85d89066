package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"
	mockUsecase "keygate/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	return &PushHandler{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationUC: notificationUC,
		validateToken:  idtoken.Validate,
	}, notificationUC
}

func pushBody(t *testing.T, event *service.LicenseEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func doPush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.LicenseEvent{
		Type:    entity.EventGenerated,
		License: entity.License{ID: 7, Key: "abcdef12-3456", ClientName: "Acme", IsActive: true},
	}

	t.Run("announces event with request id from attributes", func(t *testing.T) {
		h, notificationUC := newPushHandler(t)
		notificationUC.EXPECT().
			Announce(mock.Anything, mock.MatchedBy(func(l *entity.License) bool { return l.ID == 7 }), entity.EventGenerated).
			RunAndReturn(func(ctx context.Context, _ *entity.License, _ entity.NotificationEventType) error {
				assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))

				return nil
			})

		rec := doPush(h, pushBody(t, event, map[string]string{"request_id": "req-attr"}), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("settings failure is retried", func(t *testing.T) {
		h, notificationUC := newPushHandler(t)
		notificationUC.EXPECT().Announce(mock.Anything, mock.Anything, entity.EventGenerated).
			Return(errors.New("db down"))

		rec := doPush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unknown event type is acknowledged", func(t *testing.T) {
		h, _ := newPushHandler(t)
		unknown := *event
		unknown.Type = "Deleted"

		rec := doPush(h, pushBody(t, &unknown, nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad payload", func(t *testing.T) {
		h, _ := newPushHandler(t)

		rec := doPush(h, []byte(`{"message":{"data":"%%%"}}`), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing token when verification is on", func(t *testing.T) {
		h, _ := newPushHandler(t)
		h.verifyPushAuth = true

		rec := doPush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token when verification is on", func(t *testing.T) {
		h, notificationUC := newPushHandler(t)
		h.verifyPushAuth = true
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}
		notificationUC.EXPECT().Announce(mock.Anything, mock.Anything, entity.EventGenerated).Return(nil)

		rec := doPush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("foreign issuer rejected", func(t *testing.T) {
		h, _ := newPushHandler(t)
		h.verifyPushAuth = true
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := doPush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
