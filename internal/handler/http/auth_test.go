package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

func TestRegister(t *testing.T) {
	body := map[string]string{"name": "Ann", "email": "ann@example.com", "password": "pw1", "confirmPassword": "pw1"}

	tests := []struct {
		name        string
		body        any
		setup       func(m testMocks)
		wantStatus  int
		wantToken   string
		wantMessage string
		wantFields  map[string]string
	}{
		{
			name: "created",
			body: body,
			setup: func(m testMocks) {
				m.auth.EXPECT().Register(gomock.Any(), models.RegisterRequest{
					Name: "Ann", Email: "ann@example.com", Password: "pw1", ConfirmPassword: "pw1",
				}).Return(models.Token{SignedString: "T"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantToken:  "T",
		},
		{
			name:        "broken json",
			body:        `{"name":`,
			setup:       func(testMocks) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name: "passwords differ",
			body: body,
			setup: func(m testMocks) {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrPasswordsDoNotMatch)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Passwords do not match",
		},
		{
			name: "duplicate email",
			body: body,
			setup: func(m testMocks) {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Token{}, store.ErrEmailAlreadyExists)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "User already exists",
		},
		{
			name: "field errors",
			body: body,
			setup: func(m testMocks) {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(models.Token{}, validators.FieldErrors{"email": "must be a valid email"})
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
			wantFields:  map[string]string{"email": "must be a valid email"},
		},
		{
			name: "password too long",
			body: body,
			setup: func(m testMocks) {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(models.Token{}, validators.FieldErrors{"password": "must be at most 72 bytes long"})
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
			wantFields:  map[string]string{"password": "must be at most 72 bytes long"},
		},
		{
			name: "unexpected failure",
			body: body,
			setup: func(m testMocks) {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Token{}, errors.New("disk full"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			rec := serve(t, h, http.MethodPost, "/api/auth/register", tt.body, "")
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantToken != "" {
				var resp models.TokenResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantToken, resp.Token)
				return
			}

			msg := decodeMessage(t, rec)
			assert.Equal(t, tt.wantMessage, msg.Message)
			assert.Equal(t, tt.wantFields, msg.Errors)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ann@example.com", Password: "pw1"}).
			Return(models.Token{SignedString: "T2"}, nil)

		rec := serve(t, h, http.MethodPost, "/api/auth/login", map[string]string{"email": "ann@example.com", "password": "pw1"}, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"T2"}`, rec.Body.String())
		assert.Equal(t, "Bearer T2", rec.Header().Get("Authorization"))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrInvalidCredentials)

		rec := serve(t, h, http.MethodPost, "/api/auth/login", map[string]string{"email": "x@example.com", "password": "no"}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeMessage(t, rec).Message)
	})
}

func TestMe(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	user := models.User{ID: testUserID, Name: "Ann", Email: "ann@example.com", PasswordHash: "secret-hash", CreatedAt: created, UpdatedAt: created}

	t.Run("profile without hash", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuthenticated()
		m.auth.EXPECT().CurrentUser(gomock.Any(), testIdentity).Return(user, nil)

		rec := serve(t, h, http.MethodGet, "/api/auth/me", nil, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"id": "`+testUserID+`",
			"name": "Ann",
			"email": "ann@example.com",
			"createdAt": "2025-06-01T12:00:00Z",
			"updatedAt": "2025-06-01T12:00:00Z"
		}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "secret-hash")
	})

	t.Run("user vanished", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuthenticated()
		m.auth.EXPECT().CurrentUser(gomock.Any(), testIdentity).Return(models.User{}, store.ErrNoUserWasFound)

		rec := serve(t, h, http.MethodGet, "/api/auth/me", nil, testToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeMessage(t, rec).Message)
	})
}
