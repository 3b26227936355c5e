package schema

import "errors"

var (
	// ErrUnsupportedSchema is returned when the stored version is greater
	// than CurrentStorageVersion.
	ErrUnsupportedSchema = errors.New("unsupported schema version")

	// ErrInvalidVersion is returned when the stored version is not a
	// positive integer.
	ErrInvalidVersion = errors.New("invalid schema version")
)
