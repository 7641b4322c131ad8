package lifecycle

import "errors"

var (
	// ErrRepositoryRequired indicates that a repository dependency is missing.
	ErrRepositoryRequired = errors.New("lifecycle: content repository is required")

	// ErrEngineRequired indicates that the analysis engine dependency is missing.
	ErrEngineRequired = errors.New("lifecycle: analysis engine is required")

	// ErrInvalidMaxAttempts indicates maxAttempts was not positive.
	ErrInvalidMaxAttempts = errors.New("lifecycle: maxAttempts must be greater than 0")
)
