package validator

import (
	"testing"

	domainerrors "keygate/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ClientName    string  `json:"clientName" validate:"required"`
	Email         *string `json:"email" validate:"omitempty,email"`
	ExpiresInDays int     `json:"expiresInDays" validate:"gte=0"`
}

func TestValidator_Validate(t *testing.T) {
	badEmail := "not-an-email"
	goodEmail := "ops@acme.test"

	tests := []struct {
		name      string
		req       sampleRequest
		wantField string
		wantMsg   string
	}{
		{name: "valid", req: sampleRequest{ClientName: "Acme", Email: &goodEmail, ExpiresInDays: 30}},
		{name: "valid without email", req: sampleRequest{ClientName: "Acme"}},
		{name: "missing client name", req: sampleRequest{}, wantField: "clientName", wantMsg: "is required"},
		{name: "bad email", req: sampleRequest{ClientName: "Acme", Email: &badEmail}, wantField: "email", wantMsg: "must be a valid email address"},
		{name: "negative days", req: sampleRequest{ClientName: "Acme", ExpiresInDays: -1}, wantField: "expiresInDays", wantMsg: "must be at least 0"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			var fieldErr *domainerrors.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.wantField, fieldErr.Field())
			assert.Contains(t, fieldErr.Error(), tt.wantMsg)
		})
	}
}
