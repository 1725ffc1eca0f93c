package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

// decodeJSON reads the request body into v. A date that cannot be parsed is
// reported as a field error, an oversized body as errBodyTooLarge and anything
// else unreadable as errInvalidJSON.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit %d bytes", errBodyTooLarge, maxBytesErr.Limit)
	}

	if errors.Is(err, models.ErrInvalidDate) {
		return validators.FieldErrors{"applicationDate": "must be a valid date"}
	}

	return fmt.Errorf("%w: %w", errInvalidJSON, err)
}
