package etlerrors

import "errors"

// Input errors
var (
	ErrNoInputFiles = errors.New("no input files supplied")
	ErrMissingItems = errors.New("document has no Items array")
	ErrMissingField = errors.New("required field missing")
	ErrInvalidField = errors.New("field has unsupported JSON type")
)

// Directory and batch errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrBatchInProgress = errors.New("a batch is already running")
)
