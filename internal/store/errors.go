package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTodoNotFound is returned when no todo has the requested id.
	ErrTodoNotFound = errors.New("todo was not found")

	// ErrNodeAlreadyExists is returned when a node id is registered twice.
	ErrNodeAlreadyExists = errors.New("node already exists")

	// ErrNodeNotFound is returned when no node has the requested id.
	ErrNodeNotFound = errors.New("node was not found")

	// ErrCredentialsNotFound is returned by the client credentials repository
	// before the client has registered with a server.
	ErrCredentialsNotFound = errors.New("no saved credentials")

	// ErrUnknownShadowBackend is returned for a shadow backend name the
	// storage layer cannot build.
	ErrUnknownShadowBackend = errors.New("unknown shadow store backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
