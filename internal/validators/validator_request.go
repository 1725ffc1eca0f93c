package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	tagNotFuture = "notfuture"
	tagJobStatus = "jobstatus"
	tagBcryptLen = "bcryptlen"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// RequestValidator validates the request DTOs of the API with the rules
// declared in their `validate` struct tags.
//
// Dates are validated as "2006-01-02" strings; "notfuture" compares them with
// the current UTC day reported by now.
type RequestValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewRequestValidator builds a validator. A nil now uses time.Now.
func NewRequestValidator(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}

	v := &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.validate.RegisterCustomTypeFunc(dateAsString, models.Date{})

	// registration only fails for empty tags or nil funcs
	_ = v.validate.RegisterValidation(tagNotFuture, v.notFuture)
	_ = v.validate.RegisterValidation(tagJobStatus, isJobStatus)
	_ = v.validate.RegisterValidation(tagBcryptLen, fitsBcrypt)

	return v
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields (Go names, e.g. "CompanyName") are checked.
//
// Supported types:
//   - models.JobRequest / *models.JobRequest
//   - models.RegisterRequest / *models.RegisterRequest
//
// Returns [FieldErrors] (matching [ErrValidationFailed]) for rule violations
// and [ErrUnsupportedType] for anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.JobRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.JobRequest:
		return v.validateStruct(ctx, value, fields...)
	case models.RegisterRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.RegisterRequest:
		return v.validateStruct(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return toFieldErrors(verrs)
	}

	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

// notFuture accepts a date string that is not after today in UTC.
// Unparsable input is rejected too.
func (v *RequestValidator) notFuture(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}

	date, err := models.ParseDate(raw)
	if err != nil {
		return false
	}

	return !date.After(models.Today(v.now()))
}

func isJobStatus(fl validator.FieldLevel) bool {
	return models.JobStatus(fl.Field().String()).IsValid()
}

// fitsBcrypt limits the password by bytes, not runes as "max" would.
func fitsBcrypt(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= maxPasswordBytes
}

func dateAsString(field reflect.Value) any {
	date, ok := field.Interface().(models.Date)
	if !ok {
		return nil
	}
	return date.String()
}
