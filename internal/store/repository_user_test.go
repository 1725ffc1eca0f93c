package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/migrations"
	"github.com/MKhiriev/go-job-tracker/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, migrations.DialectPostgres, squirrel.Dollar, NewPostgresErrorClassifier(), logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

func testUser() models.User {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return models.User{
		ID:           "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b",
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	mock.ExpectExec(`INSERT INTO users \(id,name,email,password_hash,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\)`).
		WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "unique violation", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrEmailAlreadyExists},
		{name: "other constraint", dbErr: pgError(pgerrcode.NotNullViolation), wantErr: ErrExecutingStatement},
		{name: "network error", dbErr: errors.New("db network error"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectExec("INSERT INTO users").WillReturnError(tt.dbErr)

			_, err := repo.CreateUser(context.Background(), testUser())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFindUserByEmail(t *testing.T) {
	user := testUser()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    models.User
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE email = \$1 LIMIT 1`).
					WithArgs(user.Email).
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt))
			},
			want: user,
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM users WHERE email").WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM users WHERE email").WillReturnError(pgError(pgerrcode.ConnectionFailure))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			got, err := repo.FindUserByEmail(context.Background(), user.Email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindUserByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(user.ID).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt))

	got, err := repo.FindUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Identity(), got.Identity())

	mock.ExpectQuery(`FROM users WHERE id = \$1`).WillReturnError(sql.ErrNoRows)
	_, err = repo.FindUserByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
