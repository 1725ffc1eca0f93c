package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-job-tracker/models"
)

// toFieldErrors converts validator.v10 errors into [FieldErrors] keyed by the
// JSON name of the offending field.
func toFieldErrors(verrs validator.ValidationErrors) FieldErrors {
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = formatFieldError(fe)
	}
	return out
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + param + " characters long"
	case "max":
		return "must be at most " + param + " characters long"
	case "uuid":
		return "must be a valid UUID"
	case tagNotFuture:
		return "cannot be in the future"
	case tagBcryptLen:
		return fmt.Sprintf("must be at most %d bytes long", maxPasswordBytes)
	case tagJobStatus:
		return "must be one of: " + strings.Join(statusNames(), ", ")
	default:
		if param != "" {
			return "failed on '" + fe.Tag() + "' with parameter '" + param + "'"
		}
		return "failed on '" + fe.Tag() + "'"
	}
}

func statusNames() []string {
	names := make([]string, 0, len(models.JobStatuses))
	for _, s := range models.JobStatuses {
		names = append(names, string(s))
	}
	return names
}
