package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

// jobRepository is the SQL implementation of [JobRepository] over the
// "job_applications" table. Every statement filters on user_id, so a job of
// another user is indistinguishable from a missing one.
type jobRepository struct {
	*DB
	logger *logger.Logger
}

// NewJobRepository constructs a [JobRepository] backed by the provided
// database connection and logger.
func NewJobRepository(db *DB, logger *logger.Logger) JobRepository {
	logger.Debug().Msg("creating job repository")
	return &jobRepository{
		DB:     db,
		logger: logger,
	}
}

func (j *jobRepository) CreateJob(ctx context.Context, job models.JobApplication) (models.JobApplication, error) {
	log := logger.FromContext(ctx)

	query, args, err := j.insertJobQuery(job)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.CreateJob").Msg("failed to build query")
		return models.JobApplication{}, err
	}

	result, err := j.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*jobRepository.CreateJob").
			Str("user_id", job.UserID).
			Bool("retryable", j.retryable(err)).
			Msg("failed to insert job application")
		return models.JobApplication{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Error().Str("func", "*jobRepository.CreateJob").Str("user_id", job.UserID).Msg("no rows were inserted")
		return models.JobApplication{}, ErrJobNotSaved
	}

	return job, nil
}

// ListJobs returns every job of userID. An empty result is a non-nil slice.
func (j *jobRepository) ListJobs(ctx context.Context, userID string) ([]models.JobApplication, error) {
	log := logger.FromContext(ctx)

	query, args, err := j.selectJobsQuery(squirrel.Eq{"user_id": userID})
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.ListJobs").Msg("failed to build query")
		return nil, err
	}

	rows, err := j.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*jobRepository.ListJobs").
			Str("user_id", userID).
			Bool("retryable", j.retryable(err)).
			Msg("failed to select job applications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	jobs := make([]models.JobApplication, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			log.Err(err).Str("func", "*jobRepository.ListJobs").Str("user_id", userID).Msg("failed to scan job application")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*jobRepository.ListJobs").Str("user_id", userID).Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return jobs, nil
}

func (j *jobRepository) GetJob(ctx context.Context, userID, id string) (models.JobApplication, error) {
	log := logger.FromContext(ctx)

	query, args, err := j.selectJobsQuery(squirrel.Eq{"id": id, "user_id": userID})
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.GetJob").Msg("failed to build query")
		return models.JobApplication{}, err
	}

	job, err := scanJob(j.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.JobApplication{}, ErrJobNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*jobRepository.GetJob").
			Str("user_id", userID).
			Str("job_id", id).
			Bool("retryable", j.retryable(err)).
			Msg("failed to get job application")
		return models.JobApplication{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return job, nil
}

// UpdateJob replaces the editable fields of the job identified by job.ID
// and job.UserID, then reads the row back.
func (j *jobRepository) UpdateJob(ctx context.Context, job models.JobApplication) (models.JobApplication, error) {
	log := logger.FromContext(ctx)

	query, args, err := j.updateJobQuery(job)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.UpdateJob").Msg("failed to build query")
		return models.JobApplication{}, err
	}

	result, err := j.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*jobRepository.UpdateJob").
			Str("user_id", job.UserID).
			Str("job_id", job.ID).
			Bool("retryable", j.retryable(err)).
			Msg("failed to update job application")
		return models.JobApplication{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = requireAffected(result); err != nil {
		return models.JobApplication{}, err
	}

	return j.GetJob(ctx, job.UserID, job.ID)
}

func (j *jobRepository) DeleteJob(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := j.deleteJobQuery(userID, id)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.DeleteJob").Msg("failed to build query")
		return err
	}

	result, err := j.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*jobRepository.DeleteJob").
			Str("user_id", userID).
			Str("job_id", id).
			Bool("retryable", j.retryable(err)).
			Msg("failed to delete job application")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

// requireAffected maps a statement that touched no row to [ErrJobNotFound].
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}
