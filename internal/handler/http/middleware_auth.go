package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from "Authorization: Bearer <token>", resolves it via
// [service.AuthService.Authenticate] and stores the resulting identity in the
// request context under [utils.IdentityCtxKey] before delegating to the next
// handler. On any failure next is not invoked:
//   - no header or no "Bearer " prefix: 401 "Access denied. No token provided."
//   - empty token: 401 "Access denied. Invalid token format."
//   - expired, malformed or orphaned token: 401 with a matching message.
//   - store failure: 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Str("user_id", identity.UserID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
