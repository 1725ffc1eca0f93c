package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

// jobService implements JobService on top of a JobRepository. The owner is
// always taken from the identity argument, never from request data.
type jobService struct {
	jobRepository store.JobRepository
	ids           IDGenerator
	now           func() time.Time
	logger        *logger.Logger
}

// NewJobService builds the undecorated JobService. Request validation is
// added by wrapping it with NewJobValidationService.
func NewJobService(jobRepository store.JobRepository, ids IDGenerator, now func() time.Time, logger *logger.Logger) JobService {
	if now == nil {
		now = time.Now
	}
	return &jobService{
		jobRepository: jobRepository,
		ids:           ids,
		now:           now,
		logger:        logger,
	}
}

func (s *jobService) Create(ctx context.Context, owner models.Identity, req models.JobRequest) (models.JobApplication, error) {
	if owner.IsZero() {
		return models.JobApplication{}, ErrUnauthenticated
	}

	now := timestamp(s.now)
	job := models.JobApplication{
		ID:        s.ids.Generate(),
		UserID:    owner.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.Apply(req)

	created, err := s.jobRepository.CreateJob(ctx, job)
	if err != nil {
		return models.JobApplication{}, fmt.Errorf("job creation failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*jobService.Create").Str("job_id", created.ID).Msg("job application created")
	return created, nil
}

func (s *jobService) List(ctx context.Context, owner models.Identity) ([]models.JobApplication, error) {
	if owner.IsZero() {
		return nil, ErrUnauthenticated
	}

	jobs, err := s.jobRepository.ListJobs(ctx, owner.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing jobs failed: %w", err)
	}
	if jobs == nil {
		jobs = []models.JobApplication{}
	}

	return jobs, nil
}

func (s *jobService) Get(ctx context.Context, owner models.Identity, id string) (models.JobApplication, error) {
	id, err := checkOwnerAndID(owner, id)
	if err != nil {
		return models.JobApplication{}, err
	}

	job, err := s.jobRepository.GetJob(ctx, owner.UserID, id)
	if err != nil {
		return models.JobApplication{}, fmt.Errorf("getting job failed: %w", err)
	}

	return job, nil
}

// Update replaces every editable field of the job with req. An omitted
// status resets the job to Applied.
func (s *jobService) Update(ctx context.Context, owner models.Identity, id string, req models.JobRequest) (models.JobApplication, error) {
	id, err := checkOwnerAndID(owner, id)
	if err != nil {
		return models.JobApplication{}, err
	}

	job := models.JobApplication{
		ID:        id,
		UserID:    owner.UserID,
		UpdatedAt: timestamp(s.now),
	}
	job.Apply(req)

	updated, err := s.jobRepository.UpdateJob(ctx, job)
	if err != nil {
		return models.JobApplication{}, fmt.Errorf("updating job failed: %w", err)
	}

	return updated, nil
}

func (s *jobService) Delete(ctx context.Context, owner models.Identity, id string) error {
	id, err := checkOwnerAndID(owner, id)
	if err != nil {
		return err
	}

	if err = s.jobRepository.DeleteJob(ctx, owner.UserID, id); err != nil {
		return fmt.Errorf("deleting job failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*jobService.Delete").Str("job_id", id).Msg("job application deleted")
	return nil
}

// checkOwnerAndID returns id in the canonical form the store keeps.
func checkOwnerAndID(owner models.Identity, id string) (string, error) {
	if owner.IsZero() {
		return "", ErrUnauthenticated
	}
	canonical, ok := utils.NormalizeUUID(id)
	if !ok {
		return "", ErrInvalidID
	}
	return canonical, nil
}
