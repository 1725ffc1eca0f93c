package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-job-tracker/models"
)

var (
	userColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}
	jobColumns  = []string{"id", "user_id", "company_name", "job_title", "application_date", "status", "created_at", "updated_at"}
)

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		ToSql()
	return wrapBuildError(query, args, err)
}

func (db *DB) selectUserQuery(where squirrel.Eq) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	return wrapBuildError(query, args, err)
}

func (db *DB) insertJobQuery(job models.JobApplication) (string, []any, error) {
	query, args, err := db.builder.
		Insert(job.TableName()).
		Columns(jobColumns...).
		Values(job.ID, job.UserID, job.CompanyName, job.JobTitle, job.ApplicationDate, job.Status, job.CreatedAt, job.UpdatedAt).
		ToSql()
	return wrapBuildError(query, args, err)
}

func (db *DB) selectJobsQuery(where squirrel.Eq) (string, []any, error) {
	query, args, err := db.builder.
		Select(jobColumns...).
		From(models.JobApplication{}.TableName()).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	return wrapBuildError(query, args, err)
}

func (db *DB) updateJobQuery(job models.JobApplication) (string, []any, error) {
	query, args, err := db.builder.
		Update(job.TableName()).
		Set("company_name", job.CompanyName).
		Set("job_title", job.JobTitle).
		Set("application_date", job.ApplicationDate).
		Set("status", job.Status).
		Set("updated_at", job.UpdatedAt).
		Where(squirrel.Eq{"id": job.ID, "user_id": job.UserID}).
		ToSql()
	return wrapBuildError(query, args, err)
}

func (db *DB) deleteJobQuery(userID, id string) (string, []any, error) {
	query, args, err := db.builder.
		Delete(models.JobApplication{}.TableName()).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	return wrapBuildError(query, args, err)
}

func wrapBuildError(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}

func scanJob(row rowScanner) (models.JobApplication, error) {
	var job models.JobApplication
	err := row.Scan(&job.ID, &job.UserID, &job.CompanyName, &job.JobTitle, &job.ApplicationDate, &job.Status, &job.CreatedAt, &job.UpdatedAt)
	return job, err
}
