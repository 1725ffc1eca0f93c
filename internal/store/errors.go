package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert into "users" violates
	// the unique email index.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup produces an empty
	// result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrJobNotFound is returned when a job application does not exist or is
	// owned by another user. The two cases are not distinguished.
	ErrJobNotFound = errors.New("job application was not found")

	// ErrJobNotSaved is returned when an INSERT completes without error but
	// no row was affected.
	ErrJobNotSaved = errors.New("job application was not saved")

	// ErrUnsupportedDSN is returned when the configured DSN names neither a
	// PostgreSQL nor a SQLite database.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	ErrScanningRow  = errors.New("failed to scan row")
	ErrScanningRows = errors.New("failed to scan rows")
)
