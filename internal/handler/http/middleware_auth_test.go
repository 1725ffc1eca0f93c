package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		setup       func(m testMocks)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no header",
			setup:       func(testMocks) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access denied. No token provided.",
		},
		{
			name:        "basic scheme",
			header:      "Basic dXNlcjpwYXNz",
			setup:       func(testMocks) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access denied. No token provided.",
		},
		{
			name:        "bearer without space",
			header:      "Bearer",
			setup:       func(testMocks) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access denied. No token provided.",
		},
		{
			name:        "bearer with empty token",
			header:      "Bearer ",
			setup:       func(testMocks) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access denied. Invalid token format.",
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(m testMocks) {
				m.auth.EXPECT().Authenticate(gomock.Any(), "old").Return(models.Identity{}, service.ErrTokenExpired)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Token expired. Please log in again.",
		},
		{
			name:   "malformed token",
			header: "Bearer junk",
			setup: func(m testMocks) {
				m.auth.EXPECT().Authenticate(gomock.Any(), "junk").Return(models.Identity{}, service.ErrTokenMalformed)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token.",
		},
		{
			name:   "user deleted",
			header: "Bearer orphan",
			setup: func(m testMocks) {
				m.auth.EXPECT().Authenticate(gomock.Any(), "orphan").Return(models.Identity{}, service.ErrUnknownTokenSubject)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "User not found. Token invalid.",
		},
		{
			name:   "store failure",
			header: "Bearer tok",
			setup: func(m testMocks) {
				m.auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(models.Identity{}, errors.New("db down"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.False(t, called, "downstream handler must not run")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec).Message)
		})
	}
}

func TestAuth_StoresIdentity(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthenticated()

	var got models.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		got = identity
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testIdentity, got)
}
