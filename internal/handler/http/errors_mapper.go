package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

type httpError struct {
	status  int
	message string
}

// errorStatusMap lists every error the API reports to clients. The targets
// are disjoint, so iteration order does not matter.
var errorStatusMap = map[error]httpError{
	errInvalidJSON:                   {http.StatusBadRequest, msgInvalidJSON},
	errBodyTooLarge:                  {http.StatusBadRequest, msgBodyTooLarge},
	validators.ErrValidationFailed:   {http.StatusBadRequest, msgValidationFailed},
	service.ErrPasswordsDoNotMatch:   {http.StatusBadRequest, msgPasswordsDoNotMatch},
	service.ErrInvalidCredentials:    {http.StatusBadRequest, msgInvalidCredentials},
	service.ErrInvalidID:             {http.StatusBadRequest, msgInvalidJobID},
	service.ErrUnauthenticated:       {http.StatusUnauthorized, msgNoToken},
	service.ErrTokenExpired:          {http.StatusUnauthorized, msgTokenExpired},
	service.ErrTokenMalformed:        {http.StatusUnauthorized, msgInvalidToken},
	service.ErrUnknownTokenSubject:   {http.StatusUnauthorized, msgUnknownTokenUser},
	utils.ErrNoBearerToken:           {http.StatusUnauthorized, msgNoToken},
	utils.ErrEmptyBearerToken:        {http.StatusUnauthorized, msgInvalidTokenFormat},
	store.ErrEmailAlreadyExists:      {http.StatusBadRequest, msgUserAlreadyExists},
	store.ErrNoUserWasFound:          {http.StatusNotFound, msgUserNotFound},
	store.ErrJobNotFound:             {http.StatusNotFound, msgJobNotFound},
}

func httpErrorFrom(err error) httpError {
	for target, httpErr := range errorStatusMap {
		if errors.Is(err, target) {
			return httpErr
		}
	}
	return httpError{http.StatusInternalServerError, msgInternalError}
}

// writeError maps err to a status and a client message. Field validation
// failures also carry the per-field messages. Unmapped errors are logged and
// answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	httpErr := httpErrorFrom(err)

	if httpErr.status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", httpErr.status).Msg("request rejected")
	}

	body := models.MessageResponse{
		Message: httpErr.message,
		Errors:  validators.Fields(err),
	}
	if _, writeErr := utils.WriteJSON(w, body, httpErr.status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}

func writeMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteMessage(w, message, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
