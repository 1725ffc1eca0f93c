package store

import (
	"context"

	"github.com/MKhiriev/go-job-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks up a user by normalized email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID looks up a user by id.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// JobRepository persists job applications. Every method is scoped by the
// owner's user id; rows of other users behave as absent.
type JobRepository interface {
	CreateJob(ctx context.Context, job models.JobApplication) (models.JobApplication, error)
	ListJobs(ctx context.Context, userID string) ([]models.JobApplication, error)
	GetJob(ctx context.Context, userID, id string) (models.JobApplication, error)
	// UpdateJob overwrites the editable fields and UpdatedAt of an owned job.
	UpdateJob(ctx context.Context, job models.JobApplication) (models.JobApplication, error)
	DeleteJob(ctx context.Context, userID, id string) error
}

// ErrorClassificator inspects driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err was raised by a unique constraint.
	IsUniqueViolation(err error) bool
}
