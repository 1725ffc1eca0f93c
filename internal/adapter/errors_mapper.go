package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-job-tracker/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := describeBody(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

// describeBody renders a {"message","errors"} body as one line with the
// field errors sorted by name. Other bodies are returned trimmed.
func describeBody(raw []byte) string {
	var msg models.MessageResponse
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Message == "" {
		return strings.TrimSpace(string(raw))
	}
	if len(msg.Errors) == 0 {
		return msg.Message
	}

	fields := make([]string, 0, len(msg.Errors))
	for field := range msg.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+" "+msg.Errors[field])
	}
	return msg.Message + " (" + strings.Join(parts, "; ") + ")"
}
