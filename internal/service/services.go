package service

import (
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	JobService     JobService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. A nil now uses time.Now.
func NewServices(storages *store.Storages, cfg config.App, build models.AppBuildInfo, logger *logger.Logger, now func() time.Time) (*Services, error) {
	if now == nil {
		now = time.Now
	}

	appInfoService, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator(now)
	ids := utils.NewUUIDGenerator()
	tokenService := NewTokenService(cfg, now)

	jobService := NewJobValidationService(validator).
		Wrap(NewJobService(storages.JobRepository, ids, now, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, tokenService, validator, ids, cfg, now, logger),
		TokenService:   tokenService,
		JobService:     jobService,
		AppInfoService: appInfoService,
	}, nil
}

// timestamp returns the current instant in UTC at the precision every
// supported database keeps.
func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}
