package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContentFileNotFound is returned when a cached source file is not
	// present in the local store.
	ErrContentFileNotFound = errors.New("content file not found")

	// ErrBlobNotFound is returned by [FileBlobStore] when the named blob does
	// not exist.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrInvalidBlobName is returned when a blob or content file name is
	// empty or would escape its directory.
	ErrInvalidBlobName = errors.New("invalid blob name")

	// ErrLoginAlreadyExists is returned by [UserRepository.CreateUser] when
	// the account is already registered.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned by [UserRepository.FindUser] for an
	// unknown account.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingValue is returned when a state value cannot be encoded to or
	// decoded from JSON.
	ErrEncodingValue = errors.New("failed to encode state value")
)
