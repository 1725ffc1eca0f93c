package service

import (
	"context"

	"github.com/MKhiriev/go-job-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, userID string) (models.Token, error)
	// Verify returns the user id carried by tokenString, or
	// [ErrTokenExpired] / [ErrTokenMalformed].
	Verify(ctx context.Context, tokenString string) (string, error)
}

// AuthService handles accounts and resolves tokens into identities.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	CurrentUser(ctx context.Context, owner models.Identity) (models.User, error)
	// Authenticate verifies tokenString and loads the user it names.
	Authenticate(ctx context.Context, tokenString string) (models.Identity, error)
}

// JobService manages the job applications of one owner at a time.
type JobService interface {
	Create(ctx context.Context, owner models.Identity, req models.JobRequest) (models.JobApplication, error)
	List(ctx context.Context, owner models.Identity) ([]models.JobApplication, error)
	Get(ctx context.Context, owner models.Identity, id string) (models.JobApplication, error)
	Update(ctx context.Context, owner models.Identity, id string, req models.JobRequest) (models.JobApplication, error)
	Delete(ctx context.Context, owner models.Identity, id string) error
}

// JobServiceWrapper defines middleware composition for JobService.
// Implementations wrap an existing JobService to add behavior such as
// validation.
type JobServiceWrapper interface {
	Wrap(JobService) JobService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
