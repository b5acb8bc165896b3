package apperr

import "fmt"

// ValidationError covers missing required identifiers and out-of-enum values.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError covers lookups of resources that must exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// DuplicateError covers create-only operations hitting an existing uniqueness key.
type DuplicateError struct {
	Resource string
	ID       string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.ID)
}

func Duplicate(resource, id string) *DuplicateError {
	return &DuplicateError{Resource: resource, ID: id}
}
