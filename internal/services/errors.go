package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no portfolio matches the requested id or slug.
	ErrNotFound = errors.New("portfolio not found")
	// ErrTitleTaken indicates a create would duplicate an existing title.
	ErrTitleTaken = errors.New("Title already exists")
	// ErrSlugTaken indicates a create or update would duplicate a slug.
	ErrSlugTaken = errors.New("Slug already exists")
	// ErrMissingUpload indicates a new-status image intent arrived without
	// an attached file.
	ErrMissingUpload = errors.New("file not found")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
