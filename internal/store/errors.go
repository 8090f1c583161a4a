package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the requested id or
	// identity.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when an insert violates the unique
	// constraint on users.username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when an insert or update violates the unique
	// constraint on users.email.
	ErrEmailTaken = errors.New("email already taken")

	// ErrPostNotFound is returned when no post matches the requested id.
	ErrPostNotFound = errors.New("post not found")

	// ErrNothingToUpdate is returned when a partial update carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrKeyNotFound is returned by the client session store for a missing key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrObjectNotFound is returned by object storage for a missing object.
	ErrObjectNotFound = errors.New("object not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
