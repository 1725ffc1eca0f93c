package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	ownerID = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"
	jobID   = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a60"
)

var jobRowColumns = []string{"id", "user_id", "company_name", "job_title", "application_date", "status", "created_at", "updated_at"}

func newTestJobRepo(t *testing.T) (JobRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewJobRepository(db, logger.Nop()), mock
}

func testJob() models.JobApplication {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	return models.JobApplication{
		ID:              jobID,
		UserID:          ownerID,
		CompanyName:     "Acme",
		JobTitle:        "Backend Engineer",
		ApplicationDate: models.NewDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		Status:          models.StatusApplied,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func jobRow(rows *sqlmock.Rows, job models.JobApplication) *sqlmock.Rows {
	return rows.AddRow(job.ID, job.UserID, job.CompanyName, job.JobTitle, job.ApplicationDate.String(), string(job.Status), job.CreatedAt, job.UpdatedAt)
}

func TestCreateJob(t *testing.T) {
	job := testJob()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "inserted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO job_applications \(id,user_id,company_name,job_title,application_date,status,created_at,updated_at\)`).
					WithArgs(job.ID, job.UserID, job.CompanyName, job.JobTitle, "2025-06-01", "Applied", job.CreatedAt, job.UpdatedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "nothing inserted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO job_applications").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrJobNotSaved,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO job_applications").WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestJobRepo(t)
			tt.setup(mock)

			got, err := repo.CreateJob(context.Background(), job)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, job, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListJobs(t *testing.T) {
	t.Run("returns owned jobs", func(t *testing.T) {
		repo, mock := newTestJobRepo(t)
		first := testJob()
		second := testJob()
		second.ID = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a61"
		second.Status = models.StatusOffer

		mock.ExpectQuery(`SELECT (.+) FROM job_applications WHERE user_id = \$1 ORDER BY created_at, id`).
			WithArgs(ownerID).
			WillReturnRows(jobRow(jobRow(sqlmock.NewRows(jobRowColumns), first), second))

		jobs, err := repo.ListJobs(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Equal(t, []models.JobApplication{first, second}, jobs)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		repo, mock := newTestJobRepo(t)
		mock.ExpectQuery("FROM job_applications").WillReturnRows(sqlmock.NewRows(jobRowColumns))

		jobs, err := repo.ListJobs(context.Background(), ownerID)
		require.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock := newTestJobRepo(t)
		rows := jobRow(sqlmock.NewRows(jobRowColumns), testJob()).RowError(0, errors.New("broken row"))
		mock.ExpectQuery("FROM job_applications").WillReturnRows(rows)

		_, err := repo.ListJobs(context.Background(), ownerID)
		assert.ErrorIs(t, err, ErrScanningRows)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestJobRepo(t)
		mock.ExpectQuery("FROM job_applications").WillReturnError(errors.New("boom"))

		_, err := repo.ListJobs(context.Background(), ownerID)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestGetJob(t *testing.T) {
	job := testJob()

	t.Run("owned", func(t *testing.T) {
		repo, mock := newTestJobRepo(t)
		mock.ExpectQuery(`FROM job_applications WHERE id = \$1 AND user_id = \$2`).
			WithArgs(jobID, ownerID).
			WillReturnRows(jobRow(sqlmock.NewRows(jobRowColumns), job))

		got, err := repo.GetJob(context.Background(), ownerID, jobID)
		require.NoError(t, err)
		assert.Equal(t, job, got)
	})

	t.Run("absent or foreign", func(t *testing.T) {
		repo, mock := newTestJobRepo(t)
		mock.ExpectQuery("FROM job_applications").
			WithArgs(jobID, "someone-else").
			WillReturnRows(sqlmock.NewRows(jobRowColumns))

		_, err := repo.GetJob(context.Background(), "someone-else", jobID)
		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestUpdateJob(t *testing.T) {
	job := testJob()
	job.Status = models.StatusInterview
	job.UpdatedAt = job.UpdatedAt.Add(time.Hour)

	t.Run("updated and read back", func(t *testing.T) {
		repo, mock := newTestJobRepo(t)
		mock.ExpectExec(`UPDATE job_applications SET company_name = \$1, job_title = \$2, application_date = \$3, status = \$4, updated_at = \$5 WHERE id = \$6 AND user_id = \$7`).
			WithArgs(job.CompanyName, job.JobTitle, "2025-06-01", "Interview", job.UpdatedAt, jobID, ownerID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("FROM job_applications").
			WithArgs(jobID, ownerID).
			WillReturnRows(jobRow(sqlmock.NewRows(jobRowColumns), job))

		got, err := repo.UpdateJob(context.Background(), job)
		require.NoError(t, err)
		assert.Equal(t, job, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not owned", func(t *testing.T) {
		repo, mock := newTestJobRepo(t)
		mock.ExpectExec("UPDATE job_applications").WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateJob(context.Background(), job)
		assert.ErrorIs(t, err, ErrJobNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteJob(t *testing.T) {
	tests := []struct {
		name    string
		result  func(e *sqlmock.ExpectedExec)
		wantErr error
	}{
		{name: "deleted", result: func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 1)) }},
		{name: "already gone", result: func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 0)) }, wantErr: ErrJobNotFound},
		{name: "driver error", result: func(e *sqlmock.ExpectedExec) { e.WillReturnError(errors.New("boom")) }, wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestJobRepo(t)
			tt.result(mock.ExpectExec(`DELETE FROM job_applications WHERE id = \$1 AND user_id = \$2`).WithArgs(jobID, ownerID))

			err := repo.DeleteJob(context.Background(), ownerID, jobID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
